package main

import (
	"io"
	"os"

	"github.com/FxStar/devinfo/cfgmgr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envOutput supplies the default of --output.
const envOutput = "DEVINFO_OUTPUT"

type globalOptions struct {
	debug  bool
	output string
}

// devinfoCli is the state shared by all commands.
type devinfoCli struct {
	out        io.Writer
	opts       globalOptions
	manager    *cfgmgr.Manager
	newManager func() *cfgmgr.Manager // called once the global flags are parsed
}

func newDevinfoCli(out io.Writer) *devinfoCli {
	return &devinfoCli{
		out: out,
		newManager: func() *cfgmgr.Manager {
			return cfgmgr.Local(cfgmgr.WithLogger(logrus.WithField("component", "cfgmgr")))
		},
	}
}

func installGlobalFlags(flags *pflag.FlagSet, opts *globalOptions) {
	defaultOutput := os.Getenv(envOutput)
	if defaultOutput == "" {
		defaultOutput = formatTable
	}
	flags.BoolVarP(&opts.debug, "debug", "D", false, "Enable debug logging")
	flags.StringVarP(&opts.output, "output", "o", defaultOutput, "Output format: table or yaml (env "+envOutput+")")
}

func newRootCommand(c *devinfoCli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "devinfo COMMAND",
		Short:         "Inspect device enumerators, classes and device nodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(c.opts.output); err != nil {
				return err
			}
			if c.opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if c.manager == nil {
				c.manager = c.newManager()
			}
			return nil
		},
	}
	installGlobalFlags(cmd.PersistentFlags(), &c.opts)

	cmd.SetOut(c.out)
	cmd.AddCommand(
		newEnumeratorsCommand(c),
		newClassesCommand(c),
		newDevicesCommand(c),
		newPropsCommand(c),
		newClassPropsCommand(c),
		newInterfacesCommand(c),
	)
	return cmd
}
