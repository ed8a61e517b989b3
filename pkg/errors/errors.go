package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MalformedFieldNameError flags a reserved "__" name whose prefix is not recognised.
// The field is still rendered as a data column bound to the literal name.
type MalformedFieldNameError struct {
	Index int
	Name  string
}

func (e *MalformedFieldNameError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fields[%d]: unrecognised special field name %q, treating as data field", e.Index, e.Name)
}

// DuplicateFieldNameError flags a field name that already appeared earlier in the list.
type DuplicateFieldNameError struct {
	Index int
	Name  string
}

func (e *DuplicateFieldNameError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fields[%d]: duplicate field name %q", e.Index, e.Name)
}

// UnknownFormatterError is reported when a callback names a formatter that is not registered.
type UnknownFormatterError struct {
	Name string
}

func (e *UnknownFormatterError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("formatter %q is not registered", e.Name)
}

// FormatterRuntimeError wraps a failure raised while a formatter was transforming a value.
type FormatterRuntimeError struct {
	Formatter string
	Err       error
}

// NewFormatterRuntimeError constructs a FormatterRuntimeError.
func NewFormatterRuntimeError(formatter string, err error) error {
	return &FormatterRuntimeError{Formatter: formatter, Err: err}
}

func (e *FormatterRuntimeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("formatter %q failed: %v", e.Formatter, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FormatterRuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingDataKeyError is reported when a row has no value for a data field.
type MissingDataKeyError struct {
	Field string
}

func (e *MissingDataKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("row has no value for field %q", e.Field)
}

// FormatterExistsError is returned when a name is registered twice without an explicit replace.
type FormatterExistsError struct {
	Name string
}

func (e *FormatterExistsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("formatter '%s' already registered\nHint: use Replace to swap an existing formatter", e.Name)
}
