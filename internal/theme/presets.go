package theme

import (
	"sort"
	"strings"
)

// Preset names accepted by Preset.
const (
	PresetBootstrap = "bootstrap"
	PresetSemantic  = "semantic"
)

// Default returns the built-in bootstrap theme.
func Default() Theme {
	return Bootstrap()
}

// Bootstrap returns a theme for Bootstrap 3 tables with glyphicon icons.
func Bootstrap() Theme {
	return Theme{
		Table: Table{
			TableClass:     "table table-striped table-bordered",
			AscendingIcon:  "glyphicon glyphicon-chevron-up",
			DescendingIcon: "glyphicon glyphicon-chevron-down",
			HandleIcon:     "glyphicon glyphicon-menu-hamburger",
			HandleClass:    "vuetable-handle",
			CheckboxClass:  "vuetable-checkboxes",
			RenderIcon:     SpanRenderer{},
		},
		Pagination: Pagination{
			WrapperClass:  "pagination pull-right",
			ActiveClass:   "btn-primary",
			DisabledClass: "disabled",
			PageClass:     "btn btn-border",
			LinkClass:     "btn btn-border",
			Icons: PaginationIcons{
				First: "glyphicon glyphicon-step-backward",
				Prev:  "glyphicon glyphicon-chevron-left",
				Next:  "glyphicon glyphicon-chevron-right",
				Last:  "glyphicon glyphicon-step-forward",
			},
		},
		PaginationInfo: PaginationInfo{
			InfoClass: "pull-left",
		},
	}
}

// Semantic returns a theme for Semantic UI tables.
func Semantic() Theme {
	return Theme{
		Table: Table{
			TableClass:     "ui blue selectable celled stackable attached table",
			AscendingIcon:  "blue chevron up icon",
			DescendingIcon: "blue chevron down icon",
			HandleIcon:     "grey sidebar icon",
			HandleClass:    "vuetable-handle",
			CheckboxClass:  "vuetable-checkboxes",
			RenderIcon:     ElementRenderer{Tag: "i"},
		},
		Pagination: Pagination{
			WrapperClass:  "ui right floated pagination menu",
			ActiveClass:   "active large",
			DisabledClass: "disabled",
			PageClass:     "item",
			LinkClass:     "icon item",
			Icons: PaginationIcons{
				First: "angle double left icon",
				Prev:  "left chevron icon",
				Next:  "right chevron icon",
				Last:  "angle double right icon",
			},
		},
		PaginationInfo: PaginationInfo{
			InfoClass: "left floated left aligned six wide column",
		},
	}
}

var presets = map[string]func() Theme{
	PresetBootstrap: Bootstrap,
	PresetSemantic:  Semantic,
}

// Preset returns a named built-in theme. The empty name selects Default.
func Preset(name string) (Theme, bool) {
	if name == "" {
		return Default(), true
	}
	build, ok := presets[strings.ToLower(name)]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// PresetNames lists the built-in theme names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
