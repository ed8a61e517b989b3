package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const scenarioConfig = `name: payroll
fields:
  - name: __sequence
  - name: name
    sortField: name
  - name: salary
    callback: formatNumber
pagination:
  perPage: 2
`

const scenarioRows = `[
  {"name": "Alice", "salary": 1234567},
  {"name": "Bob", "salary": 900},
  {"name": "Carol", "salary": 42000}
]`

func TestRenderCommandTableWithExample(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "render")
	require.NoError(t, err)
	require.Contains(t, stdout, "Alice Martin")
	require.Contains(t, stdout, "1,234,567")
	require.Contains(t, stdout, "Slot Actions")
	require.Contains(t, stdout, "<actions>")
	require.Contains(t, stdout, "Displaying 1 to 10 of 12 items")
	require.Contains(t, stdout, "[1]")
}

func TestRenderCommandJSON(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", scenarioConfig)
	data := writeTempFile(t, "rows.json", scenarioRows)

	stdout, _, err := executeCommand(t, "render", "--config", cfg, "--data", data, "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Name string `json:"name"`
		Rows [][]struct {
			Value string `json:"value"`
		} `json:"rows"`
		Pagination struct {
			LastPage int    `json:"lastPage"`
			Info     string `json:"info"`
		} `json:"pagination"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "payroll", payload.Name)
	require.Len(t, payload.Rows, 2)
	require.Equal(t, "1", payload.Rows[0][0].Value)
	require.Equal(t, "Alice", payload.Rows[0][1].Value)
	require.Equal(t, "1,234,567", payload.Rows[0][2].Value)
	require.Equal(t, 2, payload.Pagination.LastPage)
	require.Equal(t, "Displaying 1 to 2 of 3 items", payload.Pagination.Info)
	require.Empty(t, payload.Warnings)
}

func TestRenderCommandSecondPageSequenceContinues(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", scenarioConfig)
	data := writeTempFile(t, "rows.json", scenarioRows)

	stdout, _, err := executeCommand(t, "render", "-c", cfg, "-d", data, "--page", "2", "--sort", "name:desc", "-f", "json")
	require.NoError(t, err)

	var payload struct {
		Rows [][]struct {
			Value string `json:"value"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload.Rows, 1)
	require.Equal(t, "3", payload.Rows[0][0].Value)
	require.Equal(t, "Alice", payload.Rows[0][1].Value)
}

func TestRenderCommandServerPagedRows(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", scenarioConfig)
	data := writeTempFile(t, "rows.yaml", `total: 40
data:
  - name: Dora
    salary: 51000
  - name: Ed
`)

	stdout, _, err := executeCommand(t, "render", "-c", cfg, "-d", data, "--page", "3", "-f", "json")
	require.NoError(t, err)

	var payload struct {
		Rows [][]struct {
			Value string `json:"value"`
		} `json:"rows"`
		Pagination struct {
			LastPage int    `json:"lastPage"`
			Info     string `json:"info"`
		} `json:"pagination"`
		Warnings []struct {
			Row   int    `json:"row"`
			Field string `json:"field"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload.Rows, 2)
	require.Equal(t, "5", payload.Rows[0][0].Value)
	require.Equal(t, "Dora", payload.Rows[0][1].Value)
	require.Equal(t, "6", payload.Rows[1][0].Value)
	require.Equal(t, 20, payload.Pagination.LastPage)
	require.Equal(t, "Displaying 5 to 6 of 40 items", payload.Pagination.Info)
	require.Len(t, payload.Warnings, 1)
	require.Equal(t, 5, payload.Warnings[0].Row)
	require.Equal(t, "salary", payload.Warnings[0].Field)
}

func TestRenderCommandHTML(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "render", "--format", "html", "--per-page", "3", "--sort", "salary:desc")
	require.NoError(t, err)
	require.Contains(t, stdout, `<table class="table table-striped table-bordered">`)
	require.Contains(t, stdout, `<span class="handle-icon glyphicon glyphicon-menu-hamburger"></span>`)
	require.Contains(t, stdout, `<span class="sort-icon glyphicon glyphicon-chevron-down" title="Salary"></span>`)
	require.Contains(t, stdout, `data-kind="slot" data-slot="actions"`)
	require.Contains(t, stdout, `<input type="checkbox">`)
	require.Contains(t, stdout, `<div class="pull-left">Displaying 1 to 3 of 12 items</div>`)
	require.Contains(t, stdout, `class="btn btn-border btn-primary"`)
}

func TestRenderCommandHTMLEscapesValues(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: name\n")
	data := writeTempFile(t, "rows.yaml", "- name: \"<b>bold</b>\"\n")

	stdout, _, err := executeCommand(t, "render", "-c", cfg, "-d", data, "-f", "html")
	require.NoError(t, err)
	require.Contains(t, stdout, "&lt;b&gt;bold&lt;/b&gt;")
	require.NotContains(t, stdout, "<b>bold</b>")
}

func TestRenderCommandStrict(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: name\n    callback: shout\n")
	data := writeTempFile(t, "rows.yaml", "- name: ada\n")

	stdout, stderr, err := executeCommand(t, "render", "-c", cfg, "-d", data)
	require.NoError(t, err)
	require.Contains(t, stdout, "ada")
	require.Contains(t, stderr, "shout")

	_, _, err = executeCommand(t, "render", "-c", cfg, "-d", data, "--strict")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to render")
	require.Contains(t, err.Error(), `formatter "shout" is not registered`)
}

func TestRenderCommandErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown format", args: []string{"render", "--format", "xml"}, want: `unknown format "xml"`},
		{name: "bad sort", args: []string{"render", "--sort", "name:up"}, want: "parsing sort"},
		{name: "page size", args: []string{"render", "--per-page", "5000"}, want: "out of range"},
		{name: "missing config", args: []string{"render", "--config", "/nonexistent/table.yaml"}, want: "config file does not exist"},
		{name: "unknown preset", args: []string{"render", "--preset", "material"}, want: `unknown preset "material"`},
		{name: "bad log level", args: []string{"render", "--log-level", "loud"}, want: "configuring logging"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRenderCommandInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: a\n  - name: a\n")
	_, _, err := executeCommand(t, "render", "-c", cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate field name")
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestFieldsCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "fields")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "__slot:actions")
	require.Contains(t, stdout, "Slot Actions")
	require.Contains(t, stdout, "formatDate|DD-MM-YYYY")
	require.Contains(t, stdout, "(none)")
}

func TestFieldsCommandJSONReportsIssues(t *testing.T) {
	t.Parallel()

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: __weird\n  - name: __component:badge\n")
	stdout, _, err := executeCommand(t, "fields", "-c", cfg, "--json")
	require.NoError(t, err)

	var fields []fieldJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &fields))
	require.Len(t, fields, 2)
	require.Equal(t, "data", fields[0].Kind)
	require.Len(t, fields[0].Issues, 1)
	require.Equal(t, "component", fields[1].Kind)
	require.Equal(t, "badge", fields[1].Target)
	require.Equal(t, "Badge", fields[1].Title)
}

func TestThemeCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "theme", "--preset", "semantic")
	require.NoError(t, err)
	require.Contains(t, stdout, "tableClass: ui blue selectable celled stackable attached table")
	require.NotContains(t, stdout, "renderIcon")

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: a\ntheme:\n  table:\n    handleIcon: \"\"\n")
	stdout, _, err = executeCommand(t, "theme", "-c", cfg, "--json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"handleIcon": ""`)
	require.Contains(t, stdout, `"tableClass": "table table-striped table-bordered"`)

	stdout, _, err = executeCommand(t, "theme", "--list")
	require.NoError(t, err)
	require.Equal(t, "bootstrap\nsemantic\n", stdout)
}

func TestFormattersCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "formatters")
	require.NoError(t, err)
	require.Equal(t, "allcap\nformatDate\nformatNumber\ngenderLabel\n", stdout)
}

func TestPreviewModelFromFlags(t *testing.T) {
	t.Parallel()

	flags := &rootFlags{}
	cmd := newPreviewCmd(flags)
	cmd.SetOut(&bytes.Buffer{})

	model, err := newPreviewModel(cmd, &previewOptions{perPage: 4, sort: "salary:desc"}, flags)
	require.NoError(t, err)
	require.Len(t, model.Rows(), 4)
	require.Equal(t, "1,234,567", model.Rows()[0][8])

	_, err = newPreviewModel(cmd, &previewOptions{sort: "salary:sideways"}, flags)
	require.Error(t, err)
}

func TestThemeCommandDiff(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "theme", "--diff")
	require.NoError(t, err)
	require.Equal(t, "No overrides: theme matches preset bootstrap\n", stdout)

	cfg := writeTempFile(t, "table.yaml", "name: t\nfields:\n  - name: a\ntheme:\n  pagination:\n    activeClass: active\n")
	stdout, _, err = executeCommand(t, "theme", "-c", cfg, "--diff")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- preset bootstrap")
	require.Contains(t, stdout, "-  activeClass: btn-primary")
	require.Contains(t, stdout, "+  activeClass: active")
}
