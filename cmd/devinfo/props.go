package main

import (
	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/spf13/cobra"
)

type propsOptions struct {
	phantom bool
}

func newPropsCommand(c *devinfoCli) *cobra.Command {
	var opts propsOptions

	cmd := &cobra.Command{
		Use:   "props [OPTIONS] DEVICE-ID",
		Short: "Show every property of a device node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(c, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.phantom, "phantom", false, "Also find devices that are not present")
	return cmd
}

func runProps(c *devinfoCli, id string, opts propsOptions) error {
	flags := cfgmgr.LocateNormal
	if opts.phantom {
		flags = cfgmgr.LocatePhantom
	}
	d, err := c.manager.Locate(id, flags)
	if err != nil {
		return err
	}

	props, err := d.PropertyMap()
	if err != nil {
		return err
	}
	records := make([]propertyRecord, 0, props.Len())
	for _, p := range props.All() {
		records = append(records, newPropertyRecord(p))
	}
	return render(c.out, c.opts.output, []string{"KEY", "TYPE", "VALUE"}, records)
}
