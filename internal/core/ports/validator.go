package ports

import (
	"workorders/internal/pkg/errs"
)

// Validator is the validation oracle consulted by command handlers before a
// work order is created or submitted. The rule set behind the oracle is
// infrastructure (struct tags, external config); the core only sees the
// verdict.
type Validator interface {
	// Validate checks the named entity's fields against the configured rule
	// set. ok reports the verdict; fieldErrors carries one entry per failed
	// field and is empty when ok is true.
	Validate(entityType string, fields map[string]any) (ok bool, fieldErrors []errs.FieldError)
}
