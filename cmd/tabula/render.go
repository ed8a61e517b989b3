package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/render"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatHTML  = "html"
)

type renderOptions struct {
	source  sourceOptions
	page    int
	perPage int
	sort    string
	format  string
	strict  bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page of rows",
		Long: `Render one page of rows through the configured fields and theme.

The table format prints a terminal table; json prints the rendered cells,
headers and pagination; html prints markup carrying the theme classes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, rootFlags)
		},
	}

	opts.source.register(cmd, true)
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page to render (1-based)")
	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "Rows per page (defaults to the configuration)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort as field[:asc|desc]")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "Output format: table, json or html")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any cell renders with a fallback value")

	return cmd
}

// renderedPage is one fully rendered page, shared by every output format.
type renderedPage struct {
	Name     string
	Wrappers render.WrapperClasses
	Header   []render.HeaderCell
	Result   render.Result
	State    render.PageState
	Links    []render.PageLink
	Info     string
}

func runRender(cmd *cobra.Command, opts *renderOptions, rootFlags *rootFlags) error {
	format := strings.ToLower(opts.format)
	switch format {
	case formatTable, formatJSON, formatHTML:
	default:
		return newCommandError("render", "selecting output format", fmt.Errorf("unknown format %q", opts.format), "Use one of: table, json, html.")
	}
	if opts.perPage < 0 || opts.perPage > 1000 {
		return newCommandError("render", "checking page size", fmt.Errorf("--per-page %d is out of range", opts.perPage), "Use a value between 1 and 1000.")
	}

	sort, err := render.ParseSort(opts.sort)
	if err != nil {
		return newCommandError("render", "parsing sort", err, "Use field, field:asc or field:desc.")
	}

	tc, err := loadTableContext("render", &opts.source, true, rootFlags.appLogger)
	if err != nil {
		return err
	}
	if format == formatTable {
		tc.useTerminalIcons(cmd.OutOrStdout())
	}

	page := buildPage(tc, sort, opts.page, opts.perPage)

	if opts.strict && len(page.Result.Warnings) > 0 {
		return newCommandError("render", "rendering rows", page.Result.Warnings[0], fmt.Sprintf("%d cell(s) used fallback values; rerun with --verbose to see each one.", len(page.Result.Warnings)))
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(out, page)
	case formatHTML:
		return writeHTML(out, page)
	default:
		return writeTable(out, page, terminalWidth(out))
	}
}

func buildPage(tc *tableContext, sort render.SortState, current, perPage int) renderedPage {
	if perPage <= 0 {
		perPage = tc.Config.PerPage()
	}
	state := render.PageState{Total: tc.Data.Total, PerPage: perPage, CurrentPage: current}
	state.CurrentPage = state.Current()

	rows := tc.Data.PageRows(sort, state)
	pagination := tc.Config.Pagination

	return renderedPage{
		Name:     tc.Config.Name,
		Wrappers: render.Wrappers(tc.Theme),
		Header:   tc.Renderer.Header(tc.Descriptors, tc.Theme, sort),
		Result:   tc.Renderer.Render(rows, tc.Descriptors, tc.Theme, state.Offset()),
		State:    state,
		Links:    render.Paginate(state, tc.Theme, tc.Config.OnEachSide()),
		Info:     render.Info(state, pagination.InfoTemplate, pagination.NoDataText),
	}
}
