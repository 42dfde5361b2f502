package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func missingArgError(cmd *cobra.Command, arg string) error {
	_ = cmd.Help()
	return fmt.Errorf("required argument <%s> not set", arg)
}

// requireArgs is a cobra.PositionalArgs that prints help and names the first
// missing argument.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return missingArgError(cmd, names[len(args)])
		}
		if len(args) > len(names) {
			return fmt.Errorf("accepts %d arg(s), received %d", len(names), len(args))
		}
		return nil
	}
}
