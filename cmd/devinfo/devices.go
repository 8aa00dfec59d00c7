package main

import (
	"iter"

	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/FxStar/devinfo/devprop"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type devicesOptions struct {
	enumerator string
	class      string
	present    bool
	matchCase  bool
}

func newDevicesCommand(c *devinfoCli) *cobra.Command {
	var opts devicesOptions

	cmd := &cobra.Command{
		Use:   "devices [OPTIONS]",
		Short: "List device nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevices(c, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.enumerator, "enumerator", "e", "", "Only list devices created by this enumerator (e.g. USB)")
	flags.StringVarP(&opts.class, "class", "c", "", "Only list devices of this setup class (e.g. Battery)")
	flags.BoolVarP(&opts.present, "present", "p", false, "Only list devices that are present")
	flags.BoolVar(&opts.matchCase, "match-case", false, "Compare --class case-sensitively")
	return cmd
}

func (c *devinfoCli) deviceSeq(opts devicesOptions) (iter.Seq2[*cfgmgr.Device, error], error) {
	switch {
	case opts.enumerator != "" && opts.class != "":
		return nil, errors.New("--enumerator and --class cannot be combined")
	case opts.enumerator != "":
		return c.manager.DevicesByEnumerator(opts.enumerator, opts.present), nil
	case opts.class != "":
		return c.manager.DevicesByClassName(opts.class, opts.present, !opts.matchCase), nil
	}
	return c.manager.AllDevices(opts.present), nil
}

func runDevices(c *devinfoCli, opts devicesOptions) error {
	devices, err := c.deviceSeq(opts)
	if err != nil {
		return err
	}

	var records []deviceRecord
	for d, err := range devices {
		if err != nil {
			return err
		}
		records = append(records, deviceRecord{
			ID:          d.ID(),
			Name:        optText(d, devprop.KeyName),
			Description: optText(d, devprop.KeyDeviceDesc),
		})
	}
	return render(c.out, c.opts.output, []string{"ID", "NAME", "DESCRIPTION"}, records)
}

// optText reads a string property, treating any failure as empty.
func optText(d *cfgmgr.Device, key devprop.Key) string {
	p, ok := d.PropertyOrNone(key)
	if !ok {
		return ""
	}
	s, _ := p.Text()
	return s
}
