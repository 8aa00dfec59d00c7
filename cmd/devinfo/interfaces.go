package main

import (
	"strconv"
	"strings"

	"github.com/FxStar/devinfo/devprop"
	"github.com/FxStar/devinfo/setupapi"
	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var interfaceClassAliases = map[string]guid.GUID{
	"printer": setupapi.GUID_DEVINTERFACE_PRINTER,
	"battery": setupapi.GUID_DEVICE_BATTERY,
}

type interfaceRecord struct {
	Path    string `yaml:"path"`
	DevInst uint32 `yaml:"devinst"`
}

func (r interfaceRecord) columns() []string {
	return []string{strconv.FormatUint(uint64(r.DevInst), 10), r.Path}
}

type interfacesOptions struct {
	all bool
}

func newInterfacesCommand(c *devinfoCli) *cobra.Command {
	var opts interfacesOptions

	cmd := &cobra.Command{
		Use:   "interfaces [OPTIONS] CLASS",
		Short: "List the device interfaces of an interface class",
		Long:  "List the device interfaces of an interface class. CLASS is a GUID or one of: printer, battery.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterfaces(c, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "Include interfaces of devices that are not present")
	return cmd
}

func parseInterfaceClass(s string) (guid.GUID, error) {
	if g, ok := interfaceClassAliases[strings.ToLower(s)]; ok {
		return g, nil
	}
	g, err := devprop.ParseGUID(s)
	if err != nil {
		return guid.GUID{}, errors.Wrapf(err, "interface class %q", s)
	}
	return g, nil
}

func runInterfaces(c *devinfoCli, class string, opts interfacesOptions) error {
	g, err := parseInterfaceClass(class)
	if err != nil {
		return err
	}

	var records []interfaceRecord
	for di, err := range setupapi.Interfaces(g, !opts.all) {
		if err != nil {
			return err
		}
		records = append(records, interfaceRecord{Path: di.Path, DevInst: uint32(di.DevInst)})
	}
	return render(c.out, c.opts.output, []string{"DEVINST", "PATH"}, records)
}
