// Package validation implements the validation oracle on top of
// github.com/go-playground/validator. Rule sets live here as struct-tag
// expressions keyed by entity type; the core only ever sees the verdict and
// the per-field error list.
package validation

import (
	"fmt"
	"sort"

	"workorders/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RuleSet maps a field name to its validation tag expression.
type RuleSet map[string]string

// PlaygroundValidator validates entity fields against per-entity rule sets.
type PlaygroundValidator struct {
	validate *validator.Validate
	rules    map[string]RuleSet
}

// NewPlaygroundValidator creates the oracle with the built-in rule sets.
func NewPlaygroundValidator() *PlaygroundValidator {
	return &PlaygroundValidator{
		validate: validator.New(),
		rules: map[string]RuleSet{
			"work_order": {
				"title":       "required,min=3,max=200",
				"description": "max=2000",
				"category":    "required",
				"workType":    "required",
				"priority":    "required",
				"urgency":     "required",
			},
		},
	}
}

// Validate checks the named entity's fields against its rule set. Fields
// without a rule pass; an entity type without a rule set passes wholesale.
func (v *PlaygroundValidator) Validate(entityType string, fields map[string]any) (bool, []errs.FieldError) {
	ruleSet, found := v.rules[entityType]
	if !found {
		return true, nil
	}

	// Sorted iteration keeps the error list deterministic.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var fieldErrors []errs.FieldError
	for _, name := range names {
		tag, hasRule := ruleSet[name]
		if !hasRule {
			continue
		}

		if err := v.validate.Var(fields[name], tag); err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:   name,
				Message: describe(err),
			})
		}
	}

	return len(fieldErrors) == 0, fieldErrors
}

func describe(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors) //nolint:errorlint //library returns the slice directly
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	if fe.Param() != "" {
		return fmt.Sprintf("failed rule %q with parameter %q", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed rule %q", fe.Tag())
}
