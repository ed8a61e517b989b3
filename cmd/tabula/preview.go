package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/render"
	"github.com/alexisbeaulieu97/tabula/internal/tui"
)

type previewOptions struct {
	source  sourceOptions
	perPage int
	sort    string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the table interactively",
		Long:  `Launch an interactive preview that pages through rows and cycles column sorting.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := newPreviewModel(cmd, opts, rootFlags)
			if err != nil {
				return err
			}
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := program.Run(); err != nil {
				return newCommandError("preview", "running the interactive preview", err, "Run in an interactive terminal or use 'tabula render'.")
			}
			return nil
		},
	}

	opts.source.register(cmd, true)
	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "Rows per page (defaults to the configuration)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Initial sort as field[:asc|desc]")

	return cmd
}

func newPreviewModel(cmd *cobra.Command, opts *previewOptions, rootFlags *rootFlags) (tui.Model, error) {
	sort, err := render.ParseSort(opts.sort)
	if err != nil {
		return tui.Model{}, newCommandError("preview", "parsing sort", err, "Use field, field:asc or field:desc.")
	}

	tc, err := loadTableContext("preview", &opts.source, true, rootFlags.appLogger)
	if err != nil {
		return tui.Model{}, err
	}
	tc.useTerminalIcons(cmd.OutOrStdout())
	// Log lines would tear the alternate screen; the model reports a warning count instead.
	tc.Renderer = render.New(tc.Formatters, nil)

	perPage := opts.perPage
	if perPage <= 0 {
		perPage = tc.Config.PerPage()
	}
	pagination := tc.Config.Pagination

	return tui.NewModel(tui.Options{
		Title:        tc.Config.Name,
		Descriptors:  tc.Descriptors,
		Theme:        tc.Theme,
		Renderer:     tc.Renderer,
		Data:         tc.Data,
		PerPage:      perPage,
		OnEachSide:   tc.Config.OnEachSide(),
		InfoTemplate: pagination.InfoTemplate,
		NoDataText:   pagination.NoDataText,
		Sort:         sort,
	}), nil
}
