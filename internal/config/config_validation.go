package config

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tabulaerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for _, issue := range field.Lint(cfg.Fields) {
		var dup *tabulaerrors.DuplicateFieldNameError
		if errors.As(issue, &dup) {
			return tabulaerrors.NewValidationError(
				fieldForDefinition(dup.Index, "name"),
				fmt.Sprintf("duplicate field name %q", dup.Name),
				issue,
			)
		}
	}

	return nil
}

// LintConfig logs non-fatal field list findings and returns them.
func LintConfig(cfg *Config, log *logger.Logger) []error {
	if cfg == nil {
		return nil
	}

	issues := field.Lint(cfg.Fields)
	for _, issue := range issues {
		log.Warn(issue, "field definition")
	}
	return issues
}
