package theme

import "strings"

// Theme is the full set of class strings and icon rendering used by a table.
// Themes are plain values: copying one yields an independent theme.
type Theme struct {
	Table          Table          `yaml:"table" json:"table"`
	Pagination     Pagination     `yaml:"pagination" json:"pagination"`
	PaginationInfo PaginationInfo `yaml:"paginationInfo" json:"paginationInfo"`
}

// Table holds table-level classes and icons.
type Table struct {
	TableClass     string `yaml:"tableClass" json:"tableClass"`
	AscendingIcon  string `yaml:"ascendingIcon" json:"ascendingIcon"`
	DescendingIcon string `yaml:"descendingIcon" json:"descendingIcon"`
	SortableIcon   string `yaml:"sortableIcon" json:"sortableIcon"`
	HandleIcon     string `yaml:"handleIcon" json:"handleIcon"`
	HandleClass    string `yaml:"handleClass" json:"handleClass"`
	CheckboxClass  string `yaml:"checkboxClass" json:"checkboxClass"`

	// RenderIcon turns icon classes into markup. When nil, icons render as their class string.
	RenderIcon IconRenderer `yaml:"-" json:"-"`
}

// Pagination holds classes for the pagination control.
type Pagination struct {
	WrapperClass  string          `yaml:"wrapperClass" json:"wrapperClass"`
	ActiveClass   string          `yaml:"activeClass" json:"activeClass"`
	DisabledClass string          `yaml:"disabledClass" json:"disabledClass"`
	PageClass     string          `yaml:"pageClass" json:"pageClass"`
	LinkClass     string          `yaml:"linkClass" json:"linkClass"`
	Icons         PaginationIcons `yaml:"icons" json:"icons"`
}

// PaginationIcons are the icon classes for the navigation links.
type PaginationIcons struct {
	First string `yaml:"first" json:"first"`
	Prev  string `yaml:"prev" json:"prev"`
	Next  string `yaml:"next" json:"next"`
	Last  string `yaml:"last" json:"last"`
}

// PaginationInfo holds classes for the "Displaying x to y" element.
type PaginationInfo struct {
	InfoClass string `yaml:"infoClass" json:"infoClass"`
}

// Icon renders icon classes through the theme's IconRenderer. Without a
// renderer the non-empty classes are joined with spaces.
func (t Theme) Icon(opts IconOptions, classes ...string) string {
	kept := nonEmpty(classes)
	if len(kept) == 0 {
		return ""
	}
	if t.Table.RenderIcon != nil {
		return t.Table.RenderIcon.RenderIcon(kept, opts)
	}
	return strings.Join(kept, " ")
}

// JoinClasses joins non-empty class strings with single spaces.
func JoinClasses(parts ...string) string {
	return strings.Join(nonEmpty(parts), " ")
}

func nonEmpty(parts []string) []string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
