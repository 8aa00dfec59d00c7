package main

import (
	"github.com/spf13/cobra"
)

func newEnumeratorsCommand(c *devinfoCli) *cobra.Command {
	return &cobra.Command{
		Use:   "enumerators",
		Short: "List device enumerators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerators(c)
		},
	}
}

func runEnumerators(c *devinfoCli) error {
	var records []nameRecord
	for name, err := range c.manager.Enumerators() {
		if err != nil {
			return err
		}
		records = append(records, nameRecord{Name: name})
	}
	return render(c.out, c.opts.output, []string{"ENUMERATOR"}, records)
}
