// Command devinfo lists device enumerators, device classes and device nodes
// and prints their properties.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)

	cmd := newRootCommand(newDevinfoCli(os.Stdout))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
