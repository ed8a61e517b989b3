package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tabula/internal/config"
	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/render"
	"github.com/alexisbeaulieu97/tabula/internal/theme"
)

const maxColumnWidth = 32

// Options configures a preview session.
type Options struct {
	Title        string
	Descriptors  []field.Descriptor
	Theme        theme.Theme
	Renderer     *render.Renderer
	Data         *config.Dataset
	PerPage      int
	OnEachSide   int
	InfoTemplate string
	NoDataText   string
	Sort         render.SortState
}

// Model is the Bubbletea state for the interactive table preview. The model
// owns sort and page state; rendering is delegated to render.Renderer.
type Model struct {
	opts Options

	sort     render.SortState
	page     int
	sortable []int
	selected int

	table    table.Model
	keys     keyMap
	help     help.Model
	header   []render.HeaderCell
	links    []render.PageLink
	info     string
	warnings int
	quitting bool
}

// NewModel constructs a preview model and renders the first page.
func NewModel(opts Options) Model {
	if opts.Data == nil {
		opts.Data = &config.Dataset{}
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(nil, nil)
	}
	if opts.PerPage <= 0 {
		opts.PerPage = config.DefaultPerPage
	}

	m := Model{
		opts: opts,
		sort: opts.Sort,
		page: 1,
		keys: defaultKeyMap(),
		help: help.New(),
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(opts.PerPage+1),
		),
	}

	for i, d := range opts.Descriptors {
		if d.Sortable() {
			m.sortable = append(m.sortable, i)
			if d.SortField == opts.Sort.Field {
				m.selected = len(m.sortable) - 1
			}
		}
	}

	m.table.SetStyles(tableStyles())
	m.refresh()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the current 1-based page.
func (m Model) Page() int {
	return m.page
}

// Sort returns the current sort state.
func (m Model) Sort() render.SortState {
	return m.sort
}

// SelectedColumn returns the descriptor index of the column that sort keys act on, or -1.
func (m Model) SelectedColumn() int {
	if len(m.sortable) == 0 {
		return -1
	}
	return m.sortable[m.selected]
}

// Rows returns the plain-text cells currently shown.
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

// Warnings returns the number of cells on the current page that used a fallback value.
func (m Model) Warnings() int {
	return m.warnings
}

func (m Model) pageState() render.PageState {
	return render.PageState{
		Total:       m.opts.Data.Total,
		PerPage:     m.opts.PerPage,
		CurrentPage: m.page,
	}
}

func (m *Model) setPage(page int) {
	state := m.pageState()
	state.CurrentPage = page
	m.page = state.Current()
	m.refresh()
}

// refresh re-renders the visible page from the dataset and current state.
func (m *Model) refresh() {
	state := m.pageState()
	rows := m.opts.Data.PageRows(m.sort, state)

	r := m.opts.Renderer
	m.header = r.Header(m.opts.Descriptors, m.opts.Theme, m.sort)
	res := r.Render(rows, m.opts.Descriptors, m.opts.Theme, state.Offset())
	m.warnings = len(res.Warnings)

	body := make([]table.Row, len(res.Rows))
	for i, cells := range res.Rows {
		row := make(table.Row, len(cells))
		for j, c := range cells {
			row[j] = c.Text()
		}
		body[i] = row
	}

	columns := make([]table.Column, len(m.header))
	for j, h := range m.header {
		title := h.Title
		if h.SortIcon != "" {
			title += " " + h.SortIcon
		}
		if j == m.SelectedColumn() {
			title = "*" + title
		}
		width := lipgloss.Width(title)
		for _, row := range body {
			width = max(width, lipgloss.Width(row[j]))
		}
		columns[j] = table.Column{Title: title, Width: min(max(width, 1), maxColumnWidth)}
	}

	// Columns first so that rows are never laid out against a stale column count.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(body)

	m.links = render.Paginate(state, m.opts.Theme, m.opts.OnEachSide)
	m.info = render.Info(state, m.opts.InfoTemplate, m.opts.NoDataText)
}
