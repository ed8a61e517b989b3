package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/tabula/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	rightStyle  = cellStyle.Align(lipgloss.Right)
	centerStyle = cellStyle.Align(lipgloss.Center)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func writeTable(w io.Writer, page renderedPage, width int) error {
	headers := make([]string, len(page.Header))
	for i, h := range page.Header {
		headers[i] = strings.TrimSpace(h.Title + " " + h.SortIcon)
	}

	rows := make([][]string, len(page.Result.Rows))
	for i, cells := range page.Result.Rows {
		rows[i] = make([]string, len(cells))
		for j, c := range cells {
			rows[i][j] = c.Text()
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(page.Result.Rows) || col >= len(page.Result.Rows[row]) {
				return cellStyle
			}
			return alignFor(page.Result.Rows[row][col].Classes)
		})
	if width > 0 {
		t = t.Width(width)
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s  %s\n", pagerLine(page.Links), mutedStyle.Render(page.Info))
	return err
}

// alignFor maps the usual alignment classes onto terminal alignment.
func alignFor(classes string) lipgloss.Style {
	for _, class := range strings.Fields(classes) {
		switch class {
		case "right", "text-right":
			return rightStyle
		case "center", "text-center":
			return centerStyle
		}
	}
	return cellStyle
}

func pagerLine(links []render.PageLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		text := l.Label
		if l.Kind != render.LinkPage {
			text = l.Icon
		}
		if text == "" {
			continue
		}
		if l.Active {
			text = "[" + text + "]"
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

type jsonPagination struct {
	Total       int               `json:"total"`
	PerPage     int               `json:"perPage"`
	CurrentPage int               `json:"currentPage"`
	LastPage    int               `json:"lastPage"`
	From        int               `json:"from"`
	To          int               `json:"to"`
	Links       []render.PageLink `json:"links"`
	Info        string            `json:"info"`
}

type jsonWarning struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type jsonPayload struct {
	Version    string                `json:"version"`
	Name       string                `json:"name"`
	Wrappers   render.WrapperClasses `json:"wrappers"`
	Header     []render.HeaderCell   `json:"header"`
	Rows       [][]render.Cell       `json:"rows"`
	Pagination jsonPagination        `json:"pagination"`
	Warnings   []jsonWarning         `json:"warnings"`
}

func writeJSON(w io.Writer, page renderedPage) error {
	payload := jsonPayload{
		Version:  "1.0",
		Name:     page.Name,
		Wrappers: page.Wrappers,
		Header:   page.Header,
		Rows:     page.Result.Rows,
		Pagination: jsonPagination{
			Total:       page.State.Total,
			PerPage:     page.State.PerPage,
			CurrentPage: page.State.Current(),
			LastPage:    page.State.LastPage(),
			From:        page.State.From(),
			To:          page.State.To(),
			Links:       page.Links,
			Info:        page.Info,
		},
		Warnings: make([]jsonWarning, 0, len(page.Result.Warnings)),
	}
	if payload.Rows == nil {
		payload.Rows = [][]render.Cell{}
	}
	for _, warn := range page.Result.Warnings {
		payload.Warnings = append(payload.Warnings, jsonWarning{Row: warn.Row, Field: warn.Field, Message: warn.Err.Error()})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

var htmlTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	// Icon markup is produced by the theme renderer, which escapes its input.
	"markup": func(s string) template.HTML { return template.HTML(s) },
}).Parse(`<table class="{{.Wrappers.Table}}">
  <thead>
    <tr>
{{- range .Header}}
      <th class="{{.Classes}}"{{if .Sortable}} data-sort-direction="{{.Direction}}"{{end}}>{{.Title}}{{if .SortIcon}} {{markup .SortIcon}}{{end}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Result.Rows}}
    <tr>
{{- range .}}
      <td class="{{.Classes}}"{{if .Slot}} data-kind="{{.Slot.Kind}}" data-slot="{{.Slot.Name}}"{{end}}>
{{- if .Icon}}{{markup .Icon}}{{else if eq .Kind.String "checkbox"}}<input type="checkbox">{{else}}{{.Value}}{{end -}}
      </td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>
<div class="{{.Wrappers.PaginationInfo}}">{{.Info}}</div>
<div class="{{.Wrappers.Pagination}}">
{{- range .Links}}
  <a class="{{.Classes}}" data-page="{{.Page}}">{{if .Label}}{{.Label}}{{else}}{{markup .Icon}}{{end}}</a>
{{- end}}
</div>
`))

func writeHTML(w io.Writer, page renderedPage) error {
	return htmlTemplate.Execute(w, page)
}
