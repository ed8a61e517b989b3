package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tabula/internal/field"
)

// Row is one host data record. The renderer only reads it.
type Row = map[string]any

// SlotRef marks a cell whose content the host renders from a named template
// (KindSlot) or component (KindComponent).
type SlotRef struct {
	Kind field.Kind `json:"kind"`
	Name string     `json:"name"`
	Row  Row        `json:"-"`
}

// Cell is the rendered output for one (row, field) pair.
type Cell struct {
	Kind    field.Kind `json:"kind"`
	Field   string     `json:"field"`
	Value   string     `json:"value"`
	Classes string     `json:"classes"`
	// Icon holds rendered icon markup for handle cells.
	Icon string   `json:"icon,omitempty"`
	Slot *SlotRef `json:"slot,omitempty"`
}

// HeaderCell is the rendered header for one column.
type HeaderCell struct {
	Field     string    `json:"field"`
	Title     string    `json:"title"`
	Classes   string    `json:"classes"`
	Sortable  bool      `json:"sortable"`
	Direction Direction `json:"direction"`
	SortIcon  string    `json:"sortIcon,omitempty"`
}

// Warning records a cell that rendered with a fallback value. Row is the
// absolute row index, offset included.
type Warning struct {
	Row   int
	Field string
	Err   error
}

func (w Warning) Error() string {
	return fmt.Sprintf("row %d, field %q: %v", w.Row, w.Field, w.Err)
}

// Unwrap exposes the underlying error.
func (w Warning) Unwrap() error {
	return w.Err
}

// Result is the body of a render pass: exactly one cell slice per input row,
// each with exactly one cell per descriptor.
type Result struct {
	Rows     [][]Cell
	Warnings []Warning
}

// Direction is the sort direction of a column as supplied by the host.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionAsc
	DirectionDesc
)

func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	default:
		return "none"
	}
}

// MarshalText renders the direction as asc, desc or none.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection accepts asc/ascending, desc/descending and none/empty.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirectionNone, nil
	case "asc", "ascending":
		return DirectionAsc, nil
	case "desc", "descending":
		return DirectionDesc, nil
	}
	return DirectionNone, fmt.Errorf("unknown sort direction %q", s)
}

// SortState is the host's current sort, keyed by a descriptor's SortField.
type SortState struct {
	Field     string
	Direction Direction
}

// ParseSort parses "field", "field:asc" or "field:desc". The empty string means unsorted.
func ParseSort(s string) (SortState, error) {
	if strings.TrimSpace(s) == "" {
		return SortState{}, nil
	}
	name, dir, found := strings.Cut(s, ":")
	if !found {
		return SortState{Field: name, Direction: DirectionAsc}, nil
	}
	direction, err := ParseDirection(dir)
	if err != nil {
		return SortState{}, err
	}
	return SortState{Field: name, Direction: direction}, nil
}

// For returns the direction that applies to d.
func (s SortState) For(d field.Descriptor) Direction {
	if !d.Sortable() || s.Field != d.SortField {
		return DirectionNone
	}
	return s.Direction
}

// Toggle returns the sort state after the host clicks d's header:
// a new column starts ascending, the current column flips direction.
func (s SortState) Toggle(d field.Descriptor) SortState {
	if !d.Sortable() {
		return s
	}
	if s.Field == d.SortField && s.Direction == DirectionAsc {
		return SortState{Field: d.SortField, Direction: DirectionDesc}
	}
	return SortState{Field: d.SortField, Direction: DirectionAsc}
}

// Text is the cell as plain text for hosts without markup: handle cells show
// their icon, checkboxes an empty box and slots their name in angle brackets.
func (c Cell) Text() string {
	switch c.Kind {
	case field.KindSlot, field.KindComponent:
		if c.Slot != nil {
			return "<" + c.Slot.Name + ">"
		}
	case field.KindHandle:
		return c.Icon
	case field.KindCheckbox:
		return "[ ]"
	}
	return c.Value
}
