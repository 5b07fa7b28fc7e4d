package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a numeric value lies outside its allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrInvalidStateTransition indicates a status or phase transition not present
	// in the corresponding transition table.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrQuantityConstraintViolated indicates an allocation, use, return, or waste
	// operation that would exceed the available quantity.
	ErrQuantityConstraintViolated = errors.New("quantity constraint violated")

	// ErrApprovalRequired indicates an action that needs an approval state
	// the work order has not yet reached.
	ErrApprovalRequired = errors.New("approval required")

	// ErrValidationFailed indicates the validation oracle rejected the entity.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConcurrentModification indicates an optimistic-lock conflict. Callers
	// are expected to reload and retry the operation.
	ErrConcurrentModification = errors.New("concurrent modification")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an object referenced by ID cannot be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateTransitionError is returned when a state machine is asked to follow an
// edge absent from its transition table. Machine names the state machine
// (work order status, work phase, material status, ...), From and To carry the
// string representations of the attempted transition.
type StateTransitionError struct {
	Machine string
	From    string
	To      string
}

// NewStateTransitionError creates a StateTransitionError for the given machine and edge.
func NewStateTransitionError(machine, from, to string) *StateTransitionError {
	return &StateTransitionError{Machine: machine, From: from, To: to}
}

func (e *StateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidStateTransition, e.Machine, e.From, e.To))
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// QuantityConstraintError is returned when a quantity operation would exceed
// the available amount. Operation names the attempted operation (allocate,
// use, return, waste), Requested the amount asked for, and Available the
// amount that was actually left.
type QuantityConstraintError struct {
	Operation string
	Requested string
	Available string
}

// NewQuantityConstraintError creates a QuantityConstraintError for the given operation.
func NewQuantityConstraintError(operation, requested, available string) *QuantityConstraintError {
	return &QuantityConstraintError{Operation: operation, Requested: requested, Available: available}
}

func (e *QuantityConstraintError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s of %s exceeds available %s",
		ErrQuantityConstraintViolated, e.Operation, e.Requested, e.Available))
}

func (e *QuantityConstraintError) Unwrap() error {
	return ErrQuantityConstraintViolated
}

// ApprovalRequiredError is returned when an action needs an approval state the
// work order has not reached yet.
type ApprovalRequiredError struct {
	Action        string
	CurrentStatus string
}

// NewApprovalRequiredError creates an ApprovalRequiredError for the given action.
func NewApprovalRequiredError(action, currentStatus string) *ApprovalRequiredError {
	return &ApprovalRequiredError{Action: action, CurrentStatus: currentStatus}
}

func (e *ApprovalRequiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed while approval status is %s",
		ErrApprovalRequired, e.Action, e.CurrentStatus))
}

func (e *ApprovalRequiredError) Unwrap() error {
	return ErrApprovalRequired
}

// FieldError describes a single field rejected by the validation oracle.
type FieldError struct {
	Field   string
	Message string
}

// ValidationFailedError is returned when the validation oracle rejects an
// entity. It carries the oracle's error list untouched; the core does not
// interpret rule semantics.
type ValidationFailedError struct {
	EntityType string
	Errors     []FieldError
}

// NewValidationFailedError creates a ValidationFailedError with the oracle's error list.
func NewValidationFailedError(entityType string, fieldErrors []FieldError) *ValidationFailedError {
	return &ValidationFailedError{EntityType: entityType, Errors: fieldErrors}
}

func (e *ValidationFailedError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return sanitize(fmt.Sprintf("%s: %s [%s]", ErrValidationFailed, e.EntityType, strings.Join(parts, "; ")))
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}

// ConcurrentModificationError is returned when an optimistic-lock update loses
// a race on the same aggregate. The losing writer should reload and retry.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the given aggregate.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was changed by another writer",
		ErrConcurrentModification, e.ParamName, e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
