package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setPage(m.page + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setPage(m.page - 1)
			return m, nil
		case key.Matches(msg, m.keys.First):
			m.setPage(1)
			return m, nil
		case key.Matches(msg, m.keys.Last):
			m.setPage(m.pageState().LastPage())
			return m, nil
		case key.Matches(msg, m.keys.NextColumn):
			m.moveSelection(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevColumn):
			m.moveSelection(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			if col := m.SelectedColumn(); col >= 0 {
				m.sort = m.sort.Toggle(m.opts.Descriptors[col])
				m.page = 1
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) moveSelection(delta int) {
	n := len(m.sortable)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.refresh()
}
