package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/FxStar/devinfo/devprop"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

func validFormat(format string) error {
	switch format {
	case formatTable, formatYAML:
		return nil
	}
	return errors.Errorf("unknown output format %q (want %s or %s)", format, formatTable, formatYAML)
}

// record is one output line. columns matches the header passed to render.
type record interface {
	columns() []string
}

type nameRecord struct {
	Name string `yaml:"name"`
}

func (r nameRecord) columns() []string { return []string{r.Name} }

type classRecord struct {
	GUID      string `yaml:"guid"`
	Name      string `yaml:"name,omitempty"`
	ClassName string `yaml:"className,omitempty"`
}

func (r classRecord) columns() []string { return []string{r.GUID, r.ClassName, r.Name} }

type deviceRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (r deviceRecord) columns() []string { return []string{r.ID, r.Name, r.Description} }

type propertyRecord struct {
	Key   string `yaml:"key"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

func (r propertyRecord) columns() []string { return []string{r.Key, r.Type, r.Value} }

func newPropertyRecord(p devprop.Property) propertyRecord {
	return propertyRecord{Key: p.Key.String(), Type: p.Type.String(), Value: formatValue(p)}
}

// formatValue renders a property value on a single line.
func formatValue(p devprop.Property) string {
	if l, ok := p.Strings(); ok {
		return strings.Join(l, ", ")
	}
	v, err := p.Value()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return formatScalar(v)
}

func formatScalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return hex.EncodeToString(v)
	case guid.GUID:
		return devprop.FormatGUID(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case []any:
		s := make([]string, len(v))
		for i, e := range v {
			s[i] = formatScalar(e)
		}
		return "[" + strings.Join(s, " ") + "]"
	}
	return fmt.Sprint(v)
}

// render writes records to w, as an aligned table under header or as a
// YAML sequence.
func render[T record](w io.Writer, format string, header []string, records []T) error {
	if format == formatYAML {
		if records == nil {
			records = []T{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range records {
		fmt.Fprintln(tw, strings.Join(r.columns(), "\t"))
	}
	return tw.Flush()
}
