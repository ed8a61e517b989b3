package field

import "strings"

// Kind is the closed set of column kinds a field name can denote.
type Kind int

const (
	KindData Kind = iota
	KindHandle
	KindSequence
	KindCheckbox
	KindSlot
	KindComponent
)

// Reserved pseudo-field names and prefixes. Matching is case-sensitive.
const (
	HandleName      = "__handle"
	SequenceName    = "__sequence"
	CheckboxName    = "__checkbox"
	SlotPrefix      = "__slot"
	ComponentPrefix = "__component"

	reservedPrefix = "__"
)

func (k Kind) String() string {
	switch k {
	case KindHandle:
		return "handle"
	case KindSequence:
		return "sequence"
	case KindCheckbox:
		return "checkbox"
	case KindSlot:
		return "slot"
	case KindComponent:
		return "component"
	default:
		return "data"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsPseudo reports whether the kind is a structural column rather than a data binding.
func (k Kind) IsPseudo() bool {
	return k != KindData
}

// Classify maps a field name to its kind. For slot and component columns the
// second return value is the text after the first colon ("" when there is none).
// Any name that is not a reserved form is a data field bound to the literal name.
func Classify(name string) (Kind, string) {
	switch name {
	case HandleName:
		return KindHandle, ""
	case SequenceName:
		return KindSequence, ""
	case CheckboxName:
		return KindCheckbox, ""
	}

	head, target, _ := strings.Cut(name, ":")
	switch head {
	case SlotPrefix:
		return KindSlot, target
	case ComponentPrefix:
		return KindComponent, target
	}

	return KindData, ""
}

// isMalformed reports names that look reserved but match no known form.
func isMalformed(name string) bool {
	if strings.TrimSpace(name) == "" {
		return true
	}
	kind, _ := Classify(name)
	return kind == KindData && strings.HasPrefix(name, reservedPrefix)
}
