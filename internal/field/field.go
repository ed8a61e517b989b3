package field

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// Definition is a host-authored column definition. List order is column order.
type Definition struct {
	Name       string  `yaml:"name" json:"name" validate:"field_name"`
	Title      *string `yaml:"title,omitempty" json:"title,omitempty"`
	SortField  string  `yaml:"sortField,omitempty" json:"sortField,omitempty"`
	TitleClass string  `yaml:"titleClass,omitempty" json:"titleClass,omitempty"`
	DataClass  string  `yaml:"dataClass,omitempty" json:"dataClass,omitempty"`
	Callback   string  `yaml:"callback,omitempty" json:"callback,omitempty"`
}

// Descriptor is the parsed, typed form of a Definition. Descriptors are never
// mutated after Parse; a new field list produces a new descriptor slice.
type Descriptor struct {
	Kind Kind
	Name string
	// Target is the slot or component name for KindSlot and KindComponent columns.
	Target     string
	Title      string
	SortField  string
	TitleClass string
	DataClass  string
	Callback   *CallbackSpec

	path []string
}

// Sortable reports whether the column carries a sort key.
func (d Descriptor) Sortable() bool {
	return d.SortField != ""
}

// Path returns the dotted segments of a data field name.
func (d Descriptor) Path() []string {
	return d.path
}

// Parse converts definitions into descriptors, one per definition, in order.
// It never fails: unrecognised names become data fields bound to the literal name.
func Parse(defs []Definition) []Descriptor {
	out := make([]Descriptor, 0, len(defs))
	for _, def := range defs {
		out = append(out, parseOne(def))
	}
	return out
}

func parseOne(def Definition) Descriptor {
	kind, target := Classify(def.Name)

	desc := Descriptor{
		Kind:       kind,
		Name:       def.Name,
		Target:     target,
		TitleClass: def.TitleClass,
		DataClass:  def.DataClass,
		Callback:   ParseCallback(def.Callback),
	}

	if def.Title != nil {
		desc.Title = *def.Title
	} else {
		desc.Title = defaultTitle(kind, def.Name, target)
	}

	// Only data and sequence columns can be sorted.
	if kind == KindData || kind == KindSequence {
		desc.SortField = def.SortField
	}

	if kind == KindData && strings.Contains(def.Name, ".") {
		desc.path = strings.Split(def.Name, ".")
	}

	return desc
}

func defaultTitle(kind Kind, name, target string) string {
	switch kind {
	case KindHandle, KindCheckbox:
		return ""
	case KindSlot, KindComponent:
		// An empty target gives an empty title.
		return Titleize(target)
	default:
		return Titleize(name)
	}
}

var titleReplacer = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// Titleize turns an identifier into a column title: leading underscores are
// dropped, '_', '-' and '.' separate words, and the first letter of each word
// is upper-cased. The rest of each word is kept as written.
func Titleize(name string) string {
	trimmed := strings.TrimLeft(name, "_")
	words := strings.Fields(titleReplacer.Replace(trimmed))
	if len(words) == 0 {
		return ""
	}
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(strings.Join(words, " "))
}

// Lint reports non-fatal problems with a definition list: reserved-looking names
// that match no known form, and repeated names. Parse accepts the same input regardless.
func Lint(defs []Definition) []error {
	var issues []error
	seen := make(map[string]struct{}, len(defs))
	for i, def := range defs {
		if isMalformed(def.Name) {
			issues = append(issues, &tabulaerrors.MalformedFieldNameError{Index: i, Name: def.Name})
		}
		if _, dup := seen[def.Name]; dup {
			issues = append(issues, &tabulaerrors.DuplicateFieldNameError{Index: i, Name: def.Name})
			continue
		}
		seen[def.Name] = struct{}{}
	}
	return issues
}
