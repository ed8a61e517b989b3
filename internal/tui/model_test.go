package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tabula/internal/config"
	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/formatter"
	"github.com/alexisbeaulieu97/tabula/internal/render"
	"github.com/alexisbeaulieu97/tabula/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	th := theme.Default()
	th.Table.RenderIcon = theme.NewGlyphRenderer(false)

	return NewModel(Options{
		Title:       "employees",
		Descriptors: field.Parse(config.ExampleFields()),
		Theme:       th,
		Renderer:    render.New(formatter.NewDefaultRegistry(formatter.BuiltinOptions{}, nil), nil),
		Data:        config.ExampleData(),
		PerPage:     5,
		OnEachSide:  -1,
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNewModelRendersFirstPage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, 1, m.Page())
	require.Nil(t, m.Init())
	require.Equal(t, 3, m.SelectedColumn(), "first sortable column is name")

	rows := m.Rows()
	require.Len(t, rows, 5)
	require.Len(t, rows[0], 10)
	require.Equal(t, "=", rows[0][0])
	require.Equal(t, "1", rows[0][1])
	require.Equal(t, "[ ]", rows[0][2])
	require.Equal(t, "Alice Martin", rows[0][3])
	require.Equal(t, "09-03-1984", rows[0][5])
	require.Equal(t, "ALLY", rows[0][6])
	require.Equal(t, "Female", rows[0][7])
	require.Equal(t, "1,234,567", rows[0][8])
	require.Equal(t, "<actions>", rows[0][9])
	require.Zero(t, m.Warnings())
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	require.Equal(t, -1, m.SelectedColumn())
	require.Empty(t, m.Rows())
	require.Contains(t, m.View(), "Preview")
	require.Contains(t, m.View(), render.DefaultNoDataText)
}

func TestUpdatePaging(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = send(t, m, runes("p"))
	require.Equal(t, 1, m.Page(), "cannot page before the first page")

	m = send(t, m, runes("n"))
	require.Equal(t, 2, m.Page())
	require.Equal(t, "6", m.Rows()[0][1])

	m = send(t, m, runes(">"))
	require.Equal(t, 3, m.Page())
	require.Len(t, m.Rows(), 2)
	require.Equal(t, "11", m.Rows()[0][1])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 3, m.Page(), "cannot page past the last page")

	m = send(t, m, runes("<"))
	require.Equal(t, 1, m.Page())
}

func TestUpdateSorting(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, runes("n"), runes("s"))
	require.Equal(t, render.SortState{Field: "name", Direction: render.DirectionAsc}, m.Sort())
	require.Equal(t, 1, m.Page(), "sorting returns to the first page")
	require.Equal(t, "Alice Martin", m.Rows()[0][3])
	require.Contains(t, m.View(), "Name ^")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, render.DirectionDesc, m.Sort().Direction)
	require.Equal(t, "Lena Fischer", m.Rows()[0][3])
	require.Equal(t, "1", m.Rows()[0][1], "sequence numbers follow the displayed order")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 8, m.SelectedColumn())
	m = send(t, m, runes("s"))
	require.Equal(t, render.SortState{Field: "salary", Direction: render.DirectionAsc}, m.Sort())
	require.Equal(t, "59,000", m.Rows()[0][8])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 3, m.SelectedColumn(), "selection wraps around")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 8, m.SelectedColumn())
}

func TestInitialSortSelectsColumn(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{
		Descriptors: field.Parse(config.ExampleFields()),
		Data:        config.ExampleData(),
		Sort:        render.SortState{Field: "email", Direction: render.DirectionDesc},
	})
	require.Equal(t, 4, m.SelectedColumn())
	require.Equal(t, "Lena Fischer", m.Rows()[0][3])
}

func TestUpdateQuitAndHelp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, runes("?"))
	require.True(t, m.help.ShowAll)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, "", updated.(Model).View())
}

func TestViewShowsPaginationAndInfo(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})

	view := m.View()
	require.Contains(t, view, "employees")
	require.Contains(t, view, "Displaying 1 to 5 of 12 items")
	require.Contains(t, view, "[1]")
	require.Contains(t, view, "*Name")
	require.Contains(t, view, ">>")
}

func TestViewReportsWarnings(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{
		Descriptors: field.Parse([]field.Definition{{Name: "missing"}}),
		Data:        &config.Dataset{Rows: []render.Row{{"name": "x"}}, Total: 1},
	})
	require.Equal(t, 1, m.Warnings())
	require.Contains(t, m.View(), "1 cell(s) rendered with fallback values")
}
