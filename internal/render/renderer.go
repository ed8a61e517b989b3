package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/formatter"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	"github.com/alexisbeaulieu97/tabula/internal/theme"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// Renderer turns rows and descriptors into cells. It holds no per-render
// state, so one Renderer can serve concurrent render passes.
type Renderer struct {
	formatters *formatter.Registry
	logger     *logger.Logger
}

// New returns a Renderer. A nil registry means no callbacks resolve.
func New(formatters *formatter.Registry, log *logger.Logger) *Renderer {
	if formatters == nil {
		formatters = formatter.NewRegistry(log)
	}
	return &Renderer{formatters: formatters, logger: log}
}

// Render produces the body cells. offset is the absolute position of rows[0]
// and drives sequence numbering; negative values are treated as zero.
func (r *Renderer) Render(rows []Row, descs []field.Descriptor, th theme.Theme, offset int) Result {
	if offset < 0 {
		offset = 0
	}

	res := Result{Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		cells := make([]Cell, len(descs))
		for j, d := range descs {
			cell, err := r.renderCell(row, i, offset, d, th)
			cells[j] = cell
			if err != nil {
				res.Warnings = append(res.Warnings, r.warn(offset+i, d, err))
			}
		}
		res.Rows[i] = cells
	}
	return res
}

func (r *Renderer) renderCell(row Row, i, offset int, d field.Descriptor, th theme.Theme) (cell Cell, err error) {
	cell = Cell{Kind: d.Kind, Field: d.Name, Classes: d.DataClass}

	defer func() {
		if rec := recover(); rec != nil {
			raw, _ := lookup(row, d)
			cell.Value = formatter.Stringify(raw)
			cell.Icon = ""
			err = fmt.Errorf("render panic: %v", rec)
		}
	}()

	switch d.Kind {
	case field.KindHandle:
		cell.Classes = theme.JoinClasses(th.Table.HandleClass, d.DataClass)
		cell.Icon = th.Icon(theme.IconOptions{}, "handle-icon", th.Table.HandleIcon)
	case field.KindCheckbox:
		cell.Classes = theme.JoinClasses(th.Table.CheckboxClass, d.DataClass)
	case field.KindSequence:
		cell.Value = strconv.Itoa(offset + i + 1)
	case field.KindSlot, field.KindComponent:
		cell.Slot = &SlotRef{Kind: d.Kind, Name: d.Target, Row: row}
	default:
		raw, ok := lookup(row, d)
		if !ok {
			err = &tabulaerrors.MissingDataKeyError{Field: d.Name}
		}
		value, applyErr := r.formatters.Apply(d.Callback, raw)
		cell.Value = value
		if applyErr != nil {
			err = applyErr
		}
	}
	return cell, err
}

func (r *Renderer) warn(row int, d field.Descriptor, err error) Warning {
	w := Warning{Row: row, Field: d.Name, Err: err}

	log := r.logger.WithFields(map[string]any{"row": row, "field": d.Name})
	if d.Callback != nil {
		log = log.WithFields(map[string]any{"formatter": d.Callback.Name})
	}
	if _, missing := err.(*tabulaerrors.MissingDataKeyError); missing {
		log.Debug(err.Error())
		return w
	}
	log.Warn(err, "cell rendered with fallback value")
	return w
}

// Lookup reads name from row. A name present as a key wins; otherwise a
// dotted name walks nested mappings.
func Lookup(row Row, name string) (any, bool) {
	var path []string
	if strings.Contains(name, ".") {
		path = strings.Split(name, ".")
	}
	return lookupPath(row, name, path)
}

func lookup(row Row, d field.Descriptor) (any, bool) {
	return lookupPath(row, d.Name, d.Path())
}

func lookupPath(row Row, name string, path []string) (any, bool) {
	if row == nil {
		return nil, false
	}
	if v, ok := row[name]; ok {
		return v, true
	}
	if len(path) == 0 {
		return nil, false
	}

	var cur any = row
	for _, seg := range path {
		switch m := cur.(type) {
		case map[string]any:
			v, ok := m[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case map[any]any:
			v, ok := m[seg]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// Header renders one header cell per descriptor. The sort state only selects
// which icon class is attached; the renderer keeps no sort state of its own.
func (r *Renderer) Header(descs []field.Descriptor, th theme.Theme, sort SortState) []HeaderCell {
	out := make([]HeaderCell, len(descs))
	for i, d := range descs {
		h := HeaderCell{Field: d.Name, Title: d.Title}

		switch d.Kind {
		case field.KindHandle:
			h.Classes = theme.JoinClasses(th.Table.HandleClass, d.TitleClass)
		case field.KindCheckbox:
			h.Classes = theme.JoinClasses(th.Table.CheckboxClass, d.TitleClass)
		default:
			h.Classes = d.TitleClass
		}

		if d.Sortable() {
			h.Sortable = true
			h.Direction = sort.For(d)
			h.Classes = theme.JoinClasses(h.Classes, "sortable")
			h.SortIcon = sortIcon(th, h.Direction, d.Title)
		}
		out[i] = h
	}
	return out
}

func sortIcon(th theme.Theme, dir Direction, title string) string {
	var class string
	switch dir {
	case DirectionAsc:
		class = th.Table.AscendingIcon
	case DirectionDesc:
		class = th.Table.DescendingIcon
	default:
		class = th.Table.SortableIcon
	}
	if class == "" {
		return ""
	}
	return th.Icon(theme.IconOptions{Title: title}, "sort-icon", class)
}

// WrapperClasses are the resolved classes for the elements around the table body.
type WrapperClasses struct {
	Table          string `json:"table"`
	Pagination     string `json:"pagination"`
	PaginationInfo string `json:"paginationInfo"`
}

// Wrappers returns the wrapper element classes of th.
func Wrappers(th theme.Theme) WrapperClasses {
	return WrapperClasses{
		Table:          th.Table.TableClass,
		Pagination:     th.Pagination.WrapperClass,
		PaginationInfo: th.PaginationInfo.InfoClass,
	}
}
