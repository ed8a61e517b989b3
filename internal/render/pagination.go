package render

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tabula/internal/theme"
)

// Default pagination info texts.
const (
	DefaultInfoTemplate = "Displaying {from} to {to} of {total} items"
	DefaultNoDataText   = "No relevant data"
	DefaultOnEachSide   = 2
)

// PageState describes the host's pagination position. CurrentPage is 1-based.
type PageState struct {
	Total       int
	PerPage     int
	CurrentPage int
}

// LastPage is the number of pages, at least 1.
func (p PageState) LastPage() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Current is CurrentPage clamped to [1, LastPage].
func (p PageState) Current() int {
	switch {
	case p.CurrentPage < 1:
		return 1
	case p.CurrentPage > p.LastPage():
		return p.LastPage()
	default:
		return p.CurrentPage
	}
}

// Offset is the absolute index of the first row on the current page.
func (p PageState) Offset() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.Current() - 1) * p.PerPage
}

// From is the 1-based position of the first row on the page, 0 when empty.
func (p PageState) From() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Offset() + 1
}

// To is the 1-based position of the last row on the page.
func (p PageState) To() int {
	if p.Total <= 0 {
		return 0
	}
	if p.PerPage <= 0 {
		return p.Total
	}
	return min(p.Offset()+p.PerPage, p.Total)
}

// LinkKind identifies a pagination control.
type LinkKind int

const (
	LinkFirst LinkKind = iota
	LinkPrev
	LinkPage
	LinkNext
	LinkLast
)

// PageLink is one rendered pagination control.
type PageLink struct {
	Kind     LinkKind `json:"kind"`
	Page     int      `json:"page"`
	Label    string   `json:"label,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Classes  string   `json:"classes"`
	Active   bool     `json:"active,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
}

// Paginate renders first/prev, a window of page numbers around the current
// page (onEachSide pages either side) and next/last.
func Paginate(p PageState, th theme.Theme, onEachSide int) []PageLink {
	if onEachSide < 0 {
		onEachSide = DefaultOnEachSide
	}
	current, last := p.Current(), p.LastPage()
	pager := th.Pagination

	nav := func(kind LinkKind, page int, iconClass, title string, disabled bool) PageLink {
		classes := pager.LinkClass
		if disabled {
			classes = theme.JoinClasses(classes, pager.DisabledClass)
		}
		return PageLink{
			Kind:     kind,
			Page:     page,
			Icon:     th.Icon(theme.IconOptions{Title: title}, iconClass),
			Classes:  classes,
			Disabled: disabled,
		}
	}

	links := []PageLink{
		nav(LinkFirst, 1, pager.Icons.First, "first", current == 1),
		nav(LinkPrev, max(current-1, 1), pager.Icons.Prev, "previous", current == 1),
	}

	start, end := pageWindow(current, last, onEachSide)
	for page := start; page <= end; page++ {
		active := page == current
		classes := pager.PageClass
		if active {
			classes = theme.JoinClasses(classes, pager.ActiveClass)
		}
		links = append(links, PageLink{
			Kind:    LinkPage,
			Page:    page,
			Label:   strconv.Itoa(page),
			Classes: classes,
			Active:  active,
		})
	}

	links = append(links,
		nav(LinkNext, min(current+1, last), pager.Icons.Next, "next", current == last),
		nav(LinkLast, last, pager.Icons.Last, "last", current == last),
	)
	return links
}

func pageWindow(current, last, onEachSide int) (int, int) {
	size := onEachSide*2 + 1
	if last <= size {
		return 1, last
	}
	start := current - onEachSide
	switch {
	case start < 1:
		start = 1
	case start+size-1 > last:
		start = last - size + 1
	}
	return start, start + size - 1
}

// Info renders the pagination info text. template may use {from}, {to} and
// {total}; empty template and noData select the defaults.
func Info(p PageState, template, noData string) string {
	if template == "" {
		template = DefaultInfoTemplate
	}
	if noData == "" {
		noData = DefaultNoDataText
	}
	if p.Total <= 0 {
		return noData
	}
	return strings.NewReplacer(
		"{from}", strconv.Itoa(p.From()),
		"{to}", strconv.Itoa(p.To()),
		"{total}", strconv.Itoa(p.Total),
	).Replace(template)
}
