package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/logger"
)

type rootFlags struct {
	verbose   bool
	jsonLogs  bool
	logLevel  string
	appLogger *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tabula",
		Short:         "Tabula renders tables from declarative field definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := flags.logLevel
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: !flags.jsonLogs,
				Writer:        cmd.ErrOrStderr(),
				Component:     "tabula",
			})
			if err != nil {
				return newCommandError(cmd.Name(), "configuring logging", err, "Use one of: debug, info, warn, error.")
			}
			flags.appLogger = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "log-json", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Minimum log level")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFieldsCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newFormattersCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
