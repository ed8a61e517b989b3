package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tabula/internal/formatter"
	"github.com/alexisbeaulieu97/tabula/internal/render"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// Dataset is a set of rows loaded from a data file. Total is the number of
// rows the source reports; it defaults to len(Rows). When Total exceeds
// len(Rows) the rows are one page of a server-paged source.
type Dataset struct {
	Rows  []render.Row
	Total int
}

type envelope struct {
	Data  []render.Row `yaml:"data"`
	Total *int         `yaml:"total"`
}

// LoadData reads a YAML or JSON data file. The document is either a sequence
// of mappings or a mapping with a "data" sequence and an optional "total".
func LoadData(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tabulaerrors.NewParseError(path, 0, err)
	}
	return ParseData(path, data)
}

// ParseData parses data file content. path is only used in errors.
func ParseData(path string, data []byte) (*Dataset, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{}, nil
		}
		return nil, tabulaerrors.NewParseError(path, extractLine(err), err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var rows []render.Row
		if err := root.Decode(&rows); err != nil {
			return nil, tabulaerrors.NewParseError(path, extractLine(err), err)
		}
		return &Dataset{Rows: rows, Total: len(rows)}, nil
	case yaml.MappingNode:
		var env envelope
		if err := root.Decode(&env); err != nil {
			return nil, tabulaerrors.NewParseError(path, extractLine(err), err)
		}
		ds := &Dataset{Rows: env.Data, Total: len(env.Data)}
		if env.Total != nil {
			if *env.Total < len(env.Data) {
				return nil, tabulaerrors.NewParseError(path, root.Line, fmt.Errorf("total %d is smaller than the %d rows present", *env.Total, len(env.Data)))
			}
			ds.Total = *env.Total
		}
		return ds, nil
	default:
		return nil, tabulaerrors.NewParseError(path, root.Line, fmt.Errorf("expected a list of rows or a mapping with a data key"))
	}
}

// Sorted returns the rows ordered by sort. The receiver is not modified and
// equal rows keep their file order. Missing values sort last in both directions.
func (d *Dataset) Sorted(sort render.SortState) []render.Row {
	rows := slices.Clone(d.Rows)
	if sort.Field == "" || sort.Direction == render.DirectionNone {
		return rows
	}

	col := collate.New(language.English, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(rows, func(a, b render.Row) int {
		av, aok := render.Lookup(a, sort.Field)
		bv, bok := render.Lookup(b, sort.Field)
		aok, bok = aok && av != nil, bok && bv != nil
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}
		c := compareValues(col, av, bv)
		if sort.Direction == render.DirectionDesc {
			return -c
		}
		return c
	})
	return rows
}

// ServerPaged reports whether the rows are only the current page of a larger source.
func (d *Dataset) ServerPaged() bool {
	return d.Total > len(d.Rows)
}

// PageRows returns the sorted rows shown on the page described by p. A
// server-paged dataset already holds exactly the current page, so its rows are
// returned whole and p only drives numbering and links.
func (d *Dataset) PageRows(sort render.SortState, p render.PageState) []render.Row {
	rows := d.Sorted(sort)
	if d.ServerPaged() {
		return rows
	}
	return Page(rows, p)
}

// Page returns the slice of rows shown on the page described by p.
func Page(rows []render.Row, p render.PageState) []render.Row {
	if p.PerPage <= 0 {
		return rows
	}
	start := min(p.Offset(), len(rows))
	end := min(start+p.PerPage, len(rows))
	return rows[start:end]
}

func compareValues(col *collate.Collator, a, b any) int {
	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	return col.CompareString(formatter.Stringify(a), formatter.Stringify(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
