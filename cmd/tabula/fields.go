package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

type fieldsOptions struct {
	source     sourceOptions
	jsonOutput bool
}

func newFieldsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show how each field definition is interpreted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, opts, rootFlags)
		},
	}

	opts.source.register(cmd, false)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type fieldJSON struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Target     string   `json:"target,omitempty"`
	Title      string   `json:"title"`
	SortField  string   `json:"sortField,omitempty"`
	TitleClass string   `json:"titleClass,omitempty"`
	DataClass  string   `json:"dataClass,omitempty"`
	Callback   string   `json:"callback,omitempty"`
	Args       []string `json:"args,omitempty"`
	Issues     []string `json:"issues,omitempty"`
}

func runFields(cmd *cobra.Command, opts *fieldsOptions, rootFlags *rootFlags) error {
	tc, err := loadTableContext("fields", &opts.source, false, rootFlags.appLogger)
	if err != nil {
		return err
	}

	issues := make(map[int][]string)
	for _, issue := range field.Lint(tc.Config.Fields) {
		if idx, ok := issueIndex(issue); ok {
			issues[idx] = append(issues[idx], issue.Error())
		}
	}

	if opts.jsonOutput {
		out := make([]fieldJSON, len(tc.Descriptors))
		for i, d := range tc.Descriptors {
			out[i] = fieldJSON{
				Name:       d.Name,
				Kind:       d.Kind.String(),
				Target:     d.Target,
				Title:      d.Title,
				SortField:  d.SortField,
				TitleClass: d.TitleClass,
				DataClass:  d.DataClass,
				Issues:     issues[i],
			}
			if d.Callback != nil {
				out[i].Callback = d.Callback.Name
				out[i].Args = d.Callback.Args
			}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tNAME\tKIND\tTITLE\tSORT\tCALLBACK")
	for i, d := range tc.Descriptors {
		callback := "-"
		if d.Callback != nil {
			callback = d.Callback.String()
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i,
			d.Name,
			d.Kind,
			valueOrFallback(d.Title, "(none)"),
			valueOrFallback(d.SortField, "-"),
			callback,
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	for i := range tc.Descriptors {
		for _, msg := range issues[i] {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", msg)
		}
	}
	return nil
}

func issueIndex(err error) (int, bool) {
	var malformed *tabulaerrors.MalformedFieldNameError
	if errors.As(err, &malformed) {
		return malformed.Index, true
	}
	var dup *tabulaerrors.DuplicateFieldNameError
	if errors.As(err, &dup) {
		return dup.Index, true
	}
	return 0, false
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
