package field

import "strings"

// CallbackSeparator splits a callback into formatter name and arguments.
// There is no escape sequence: every separator splits, and all tokens are kept verbatim.
const CallbackSeparator = "|"

// CallbackSpec names a formatter and its positional arguments.
type CallbackSpec struct {
	Name string
	Args []string
}

// ParseCallback parses "name" or "name|arg1|arg2". An empty string yields nil.
// Tokens are not trimmed, so "formatDate| DD" keeps the leading space in its argument.
func ParseCallback(raw string) *CallbackSpec {
	if raw == "" {
		return nil
	}

	tokens := strings.Split(raw, CallbackSeparator)
	return &CallbackSpec{
		Name: tokens[0],
		Args: tokens[1:],
	}
}

// Arg returns the positional argument at i, or fallback when absent.
func (c *CallbackSpec) Arg(i int, fallback string) string {
	if c == nil || i < 0 || i >= len(c.Args) {
		return fallback
	}
	return c.Args[i]
}

// String renders the spec back into its callback form.
func (c *CallbackSpec) String() string {
	if c == nil {
		return ""
	}
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + CallbackSeparator + strings.Join(c.Args, CallbackSeparator)
}
