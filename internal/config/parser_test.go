package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `name: employees
fields:
  - name: __sequence
    title: "#"
    dataClass: right aligned
  - name: name
    sortField: name
  - name: salary
    callback: formatNumber|2
preset: semantic
theme:
  pagination:
    activeClass: active
formatters:
  genderLabels: {M: Homme, F: Femme}
  locale: fr
  timezone: UTC
pagination:
  perPage: 25
`

	invalidYAML := `name: [employees
fields:
  - name: x
`

	unknownKey := `name: employees
fields:
  - name: x
theme:
  table:
    tableClas: oops
`

	missingFields := `name: employees
`

	emptyName := `name: employees
fields:
  - name: "  "
`

	duplicate := `name: employees
fields:
  - name: email
  - name: email
`

	badPerPage := `name: employees
fields:
  - name: email
pagination:
  perPage: 5000
`

	badPreset := `name: employees
preset: material
fields:
  - name: email
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "employees", cfg.Name)
				require.Len(t, cfg.Fields, 3)
				require.Equal(t, "#", *cfg.Fields[0].Title)
				require.Nil(t, cfg.Fields[1].Title)
				require.Equal(t, 25, cfg.PerPage())

				th := cfg.ResolvedTheme()
				require.Equal(t, "active", th.Pagination.ActiveClass)
				require.Equal(t, "ui blue selectable celled stackable attached table", th.Table.TableClass)

				opts := cfg.BuiltinOptions()
				require.Equal(t, "Homme", opts.GenderLabels["M"])
				require.Equal(t, "fr", opts.Language.String())
				require.NotNil(t, opts.Location)
				require.Equal(t, "UTC", opts.Location.String())
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tabulaerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
				require.Nil(t, cfg)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tabulaerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "tableClas")
				require.Equal(t, 6, parseErr.Line)
			},
		},
		{
			name:     "missing fields returns validation error",
			contents: missingFields,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tabulaerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "fields", validationErr.Field)
			},
		},
		{
			name:     "blank field name is rejected",
			contents: emptyName,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tabulaerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "fields[0].name", validationErr.Field)
				require.Contains(t, validationErr.Message, "field_name")
			},
		},
		{
			name:     "duplicate field names are rejected",
			contents: duplicate,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tabulaerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "fields[1].name", validationErr.Field)

				var dup *tabulaerrors.DuplicateFieldNameError
				require.ErrorAs(t, err, &dup)
				require.Equal(t, "email", dup.Name)
			},
		},
		{
			name:     "page size is bounded",
			contents: badPerPage,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tabulaerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "pagination.perPage", validationErr.Field)
			},
		},
		{
			name:     "unknown preset is rejected",
			contents: badPreset,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tabulaerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "theme_preset")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "table.yaml", tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *tabulaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestParseConfigEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseConfigBytes("empty.yaml", nil)
	var parseErr *tabulaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Message, "empty")
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Name: "t", Fields: []field.Definition{{Name: "a"}}}
	require.Equal(t, DefaultPerPage, cfg.PerPage())
	require.Equal(t, -1, cfg.OnEachSide())
	require.Equal(t, "table table-striped table-bordered", cfg.ResolvedTheme().Table.TableClass)

	opts := cfg.BuiltinOptions()
	require.Nil(t, opts.GenderLabels)
	require.Nil(t, opts.Location)

	side := 0
	cfg.Pagination.OnEachSide = &side
	require.Equal(t, 0, cfg.OnEachSide())
}

func TestExampleIsValid(t *testing.T) {
	t.Parallel()

	cfg := Example()
	require.NoError(t, ValidateConfig(cfg))
	require.Empty(t, field.Lint(cfg.Fields))

	descs := cfg.Descriptors()
	require.Len(t, descs, 10)
	require.Equal(t, field.KindHandle, descs[0].Kind)
	require.Equal(t, "#", descs[1].Title)
	require.Equal(t, "Slot Actions", descs[9].Title)
	require.Equal(t, "DD-MM-YYYY", descs[5].Callback.Args[0])
}

func TestLintConfigLogsFindings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	cfg := &Config{Name: "t", Fields: []field.Definition{{Name: "__bogus"}, {Name: "name"}}}
	require.NoError(t, ValidateConfig(cfg))

	issues := LintConfig(cfg, log)
	require.Len(t, issues, 1)
	require.Contains(t, buf.String(), "__bogus")
	require.Contains(t, buf.String(), `"level":"warn"`)

	require.Nil(t, LintConfig(nil, log))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *tabulaerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestShippedEmployeesExample(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("..", "..", "examples", "employees")

	cfg, err := ParseConfig(filepath.Join(dir, "table.yaml"))
	require.NoError(t, err)
	require.Empty(t, field.Lint(cfg.Fields))
	require.Equal(t, 3, cfg.PerPage())
	require.Equal(t, 1, cfg.OnEachSide())
	require.Equal(t, "glyphicon glyphicon-sort", cfg.ResolvedTheme().Table.SortableIcon)

	data, err := LoadData(filepath.Join(dir, "rows.yaml"))
	require.NoError(t, err)
	require.Len(t, data.Rows, 5)
	require.Equal(t, 5, data.Total)
}
