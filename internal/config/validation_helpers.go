package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// convertValidationError normalizes validator errors into tabula validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tabulaerrors.NewValidationError(field, msg, err)
	}

	return tabulaerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Fields[2].Name" into "fields[2].name" and
// "Config.Pagination.PerPage" into "pagination.perPage".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = lowerFirst(part)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}
	return s
}

func fieldForDefinition(index int, field string) string {
	return fmt.Sprintf("fields[%d].%s", index, field)
}
