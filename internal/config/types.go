package config

import (
	"time"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/formatter"
	"github.com/alexisbeaulieu97/tabula/internal/theme"
)

// DefaultPerPage is the page size used when the configuration sets none.
const DefaultPerPage = 10

// Config represents a table configuration document.
type Config struct {
	Name       string             `yaml:"name" validate:"required,min=1,max=100"`
	Fields     []field.Definition `yaml:"fields" validate:"required,min=1,dive"`
	Preset     string             `yaml:"preset,omitempty" validate:"omitempty,theme_preset"`
	Theme      *theme.Override    `yaml:"theme,omitempty"`
	Formatters Formatters         `yaml:"formatters,omitempty"`
	Pagination Pagination         `yaml:"pagination,omitempty"`
}

// Formatters holds settings for the built-in formatters.
type Formatters struct {
	GenderLabels  map[string]string `yaml:"genderLabels,omitempty"`
	GenderUnknown string            `yaml:"genderUnknown,omitempty"`
	Locale        string            `yaml:"locale,omitempty" validate:"omitempty,bcp47"`
	Timezone      string            `yaml:"timezone,omitempty" validate:"omitempty,timezone"`
}

// Pagination holds paging settings for hosts that page through rows.
type Pagination struct {
	PerPage      int    `yaml:"perPage,omitempty" validate:"omitempty,min=1,max=1000"`
	OnEachSide   *int   `yaml:"onEachSide,omitempty" validate:"omitempty,min=0,max=10"`
	InfoTemplate string `yaml:"infoTemplate,omitempty"`
	NoDataText   string `yaml:"noDataText,omitempty"`
}

// ResolvedTheme returns the preset named by the configuration with the theme override applied.
func (c *Config) ResolvedTheme() theme.Theme {
	base, ok := theme.Preset(c.Preset)
	if !ok {
		base = theme.Default()
	}
	return theme.Resolve(base, c.Theme)
}

// BuiltinOptions converts the formatter settings for formatter.NewDefaultRegistry.
// Values were checked by ValidateConfig; anything unparseable falls back to the default.
func (c *Config) BuiltinOptions() formatter.BuiltinOptions {
	opts := formatter.BuiltinOptions{
		GenderLabels:  c.Formatters.GenderLabels,
		GenderUnknown: c.Formatters.GenderUnknown,
	}
	if tag, err := language.Parse(c.Formatters.Locale); err == nil {
		opts.Language = tag
	}
	if c.Formatters.Timezone != "" {
		if loc, err := time.LoadLocation(c.Formatters.Timezone); err == nil {
			opts.Location = loc
		}
	}
	return opts
}

// PerPage returns the configured page size or DefaultPerPage.
func (c *Config) PerPage() int {
	if c.Pagination.PerPage > 0 {
		return c.Pagination.PerPage
	}
	return DefaultPerPage
}

// OnEachSide returns the configured pagination window or -1 for the default.
func (c *Config) OnEachSide() int {
	if c.Pagination.OnEachSide != nil {
		return *c.Pagination.OnEachSide
	}
	return -1
}

// Descriptors parses the configured field list.
func (c *Config) Descriptors() []field.Descriptor {
	return field.Parse(c.Fields)
}
