package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a LintConfig for structural and semantic errors.
// It returns a slice of all validation errors found (empty if valid).
// Duplicate files are allowed; each occurrence is linted.
func Validate(cfg *LintConfig) []ValidationError {
	var errs []ValidationError
	l := cfg.Lint

	if strings.TrimSpace(l.Tool) == "" {
		errs = append(errs, ValidationError{Field: "lint.tool", Message: "is required"})
	}
	if len(l.Files) == 0 {
		errs = append(errs, ValidationError{Field: "lint.files", Message: "at least one file is required"})
	}
	if len(l.Checks) == 0 {
		errs = append(errs, ValidationError{Field: "lint.checks", Message: "at least one check is required"})
	}

	for i, f := range l.Files {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("lint.files[%d]", i),
				Message: "is empty",
			})
		}
	}

	// Checks are comma-joined into a single --checks argument.
	for i, c := range l.Checks {
		field := fmt.Sprintf("lint.checks[%d]", i)
		switch {
		case strings.TrimSpace(c) == "":
			errs = append(errs, ValidationError{Field: field, Message: "is empty"})
		case strings.ContainsAny(c, ", \t\n"):
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("check %q must not contain commas or whitespace", c),
			})
		}
	}

	if d, err := l.TimeoutDuration(); err != nil {
		errs = append(errs, ValidationError{Field: "lint.timeout", Message: err.Error()})
	} else if d < 0 {
		errs = append(errs, ValidationError{Field: "lint.timeout", Message: "must not be negative"})
	}

	return errs
}
