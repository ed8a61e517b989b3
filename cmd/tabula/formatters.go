package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormattersCmd(rootFlags *rootFlags) *cobra.Command {
	source := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "formatters",
		Short: "List the formatters available to field callbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := loadTableContext("formatters", source, false, rootFlags.appLogger)
			if err != nil {
				return err
			}
			for _, name := range tc.Formatters.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	source.register(cmd, false)

	return cmd
}
