package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tabula/internal/theme"
	"github.com/alexisbeaulieu97/tabula/pkg/diff"
)

type themeOptions struct {
	source     sourceOptions
	jsonOutput bool
	list       bool
	diff       bool
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the resolved theme",
		Long:  "Print the theme obtained by applying the configuration's overrides to its preset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, opts, rootFlags)
		},
	}

	opts.source.register(cmd, false)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List the built-in presets")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show what the configuration changes relative to its preset")

	return cmd
}

func runTheme(cmd *cobra.Command, opts *themeOptions, rootFlags *rootFlags) error {
	out := cmd.OutOrStdout()
	if opts.list {
		for _, name := range theme.PresetNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	tc, err := loadTableContext("theme", &opts.source, false, rootFlags.appLogger)
	if err != nil {
		return err
	}

	if opts.diff {
		return writeThemeDiff(cmd, tc)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tc.Theme)
	}

	doc, err := themeYAML(tc.Theme)
	if err != nil {
		return newCommandError("theme", "encoding theme", err, "Report this as a bug.")
	}
	_, err = out.Write(doc)
	return err
}

func writeThemeDiff(cmd *cobra.Command, tc *tableContext) error {
	presetName := tc.Config.Preset
	if presetName == "" {
		presetName = theme.PresetBootstrap
	}
	base, _ := theme.Preset(presetName)

	before, err := themeYAML(base)
	if err != nil {
		return newCommandError("theme", "encoding preset", err, "Report this as a bug.")
	}
	after, err := themeYAML(tc.Theme)
	if err != nil {
		return newCommandError("theme", "encoding theme", err, "Report this as a bug.")
	}

	unified := diff.Lines(before, after, "preset "+presetName, "resolved")
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No overrides: theme matches preset %s\n", presetName)
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), unified)
	return err
}

func themeYAML(th theme.Theme) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(th); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
