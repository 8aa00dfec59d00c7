package main

import (
	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type classesOptions struct {
	iface bool
}

func newClassesCommand(c *devinfoCli) *cobra.Command {
	var opts classesOptions

	cmd := &cobra.Command{
		Use:   "classes [OPTIONS]",
		Short: "List device setup or interface classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(c, opts)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.iface, "interface", false, "List device interface classes instead of setup classes")
	return cmd
}

func runClasses(c *devinfoCli, opts classesOptions) error {
	flavor := cfgmgr.SetupClass
	if opts.iface {
		flavor = cfgmgr.InterfaceClass
	}

	var records []classRecord
	for class, err := range c.manager.Classes(flavor) {
		if err != nil {
			return err
		}
		r := classRecord{GUID: class.String()}
		r.Name, _ = class.Name()
		r.ClassName, _ = class.ClassName()
		records = append(records, r)
	}
	return render(c.out, c.opts.output, []string{"GUID", "CLASS", "NAME"}, records)
}

func newClassPropsCommand(c *devinfoCli) *cobra.Command {
	return &cobra.Command{
		Use:   "class-props CLASS",
		Short: "Show the properties of a device setup class",
		Long:  "Show the properties of the device setup class whose class name is CLASS, compared without regard to case.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassProps(c, args[0])
		},
	}
}

func runClassProps(c *devinfoCli, name string) error {
	class, ok, err := c.manager.FindSetupClass(name, true)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(cfgmgr.ErrClassNotFound, "class %q", name)
	}

	props, err := class.Properties()
	if err != nil {
		return err
	}
	records := make([]propertyRecord, 0, len(props))
	for _, p := range props {
		records = append(records, newPropertyRecord(p))
	}
	return render(c.out, c.opts.output, []string{"KEY", "TYPE", "VALUE"}, records)
}
