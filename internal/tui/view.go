package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tabula/internal/render"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(m.title()),
		m.table.View(),
		footerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			renderLinks(m.links), "  ", infoStyle.Render(m.info))),
	}
	if m.warnings > 0 {
		sections = append(sections, warningStyle.Render(
			fmt.Sprintf("%d cell(s) rendered with fallback values, run with --verbose for details", m.warnings)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	if strings.TrimSpace(m.opts.Title) != "" {
		return m.opts.Title
	}
	return "Preview"
}

// renderLinks lays pagination links out on one line. Navigation links show
// their icon and fall back to a textual label when the theme renders none.
func renderLinks(links []render.PageLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		text := linkText(l)
		switch {
		case l.Active:
			parts = append(parts, activeStyle.Render("["+text+"]"))
		case l.Disabled:
			parts = append(parts, disabledStyle.Render(text))
		default:
			parts = append(parts, linkStyle.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func linkText(l render.PageLink) string {
	if l.Kind == render.LinkPage {
		return l.Label
	}
	if l.Icon != "" {
		return l.Icon
	}
	switch l.Kind {
	case render.LinkFirst:
		return "<<"
	case render.LinkPrev:
		return "<"
	case render.LinkNext:
		return ">"
	default:
		return ">>"
	}
}
