package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// MaterialStatus is the per-line state of a material on a work order. The
// happy path is a forward chain:
//
//	REQUIRED -> REQUESTED -> ORDERED -> DELIVERED -> ALLOCATED -> USED -> RETURNED
//
// Forward jumps are allowed (on-hand stock is allocated straight from
// REQUIRED), USED may repeat as consumption continues, and CANCELLED is
// reachable from every non-terminal status. RETURNED and CANCELLED are
// terminal.
type MaterialStatus int

const (
	// MaterialStatusUnknown represents an invalid or undefined status.
	MaterialStatusUnknown MaterialStatus = iota

	// MaterialRequired means the line exists but nothing has been requested.
	MaterialRequired

	// MaterialRequested means procurement of the material was requested.
	MaterialRequested

	// MaterialOrdered means the material was ordered.
	MaterialOrdered

	// MaterialDelivered means the material arrived on site.
	MaterialDelivered

	// MaterialAllocated means stock was reserved for the work order.
	MaterialAllocated

	// MaterialUsed means at least part of the allocation was consumed.
	MaterialUsed

	// MaterialReturned means unused allocation was handed back. Terminal.
	MaterialReturned

	// MaterialCancelled means the line was cancelled. Terminal.
	MaterialCancelled
)

func getMaterialStatusStrings() map[MaterialStatus]string {
	return map[MaterialStatus]string{
		MaterialStatusUnknown: "UNKNOWN",
		MaterialRequired:      "REQUIRED",
		MaterialRequested:     "REQUESTED",
		MaterialOrdered:       "ORDERED",
		MaterialDelivered:     "DELIVERED",
		MaterialAllocated:     "ALLOCATED",
		MaterialUsed:          "USED",
		MaterialReturned:      "RETURNED",
		MaterialCancelled:     "CANCELLED",
	}
}

// materialChainRank orders the forward chain. CANCELLED is off-chain.
func materialChainRank(s MaterialStatus) (int, bool) {
	switch s {
	case MaterialRequired:
		return 0, true
	case MaterialRequested:
		return 1, true
	case MaterialOrdered:
		return 2, true
	case MaterialDelivered:
		return 3, true
	case MaterialAllocated:
		return 4, true
	case MaterialUsed:
		return 5, true
	case MaterialReturned:
		return 6, true
	default:
		return 0, false
	}
}

// MaterialStatusFromString parses the persisted string form.
func MaterialStatusFromString(s string) (MaterialStatus, error) {
	for status, str := range getMaterialStatusStrings() {
		if str == s && status != MaterialStatusUnknown {
			return status, nil
		}
	}
	return MaterialStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"materialStatus", fmt.Errorf("%q is not a valid material status", s))
}

// Validate checks if the MaterialStatus value is valid.
func (s MaterialStatus) Validate() error {
	if _, ok := getMaterialStatusStrings()[s]; !ok || s == MaterialStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"materialStatus", fmt.Errorf("%d is not a valid material status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s MaterialStatus) String() string {
	if str, ok := getMaterialStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status allows no further transitions.
func (s MaterialStatus) IsTerminal() bool {
	return s == MaterialReturned || s == MaterialCancelled
}

// CanTransitionTo reports whether the edge s -> to is allowed.
func (s MaterialStatus) CanTransitionTo(to MaterialStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == MaterialCancelled {
		return true
	}
	from, ok := materialChainRank(s)
	if !ok {
		return false
	}
	target, ok := materialChainRank(to)
	if !ok {
		return false
	}
	if s == MaterialUsed && to == MaterialUsed {
		return true
	}
	return target > from
}

// Transition returns the target status if the edge s -> to is allowed,
// or a StateTransitionError otherwise.
func (s MaterialStatus) Transition(to MaterialStatus) (MaterialStatus, error) {
	if err := to.Validate(); err != nil {
		return MaterialStatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return MaterialStatusUnknown, errs.NewStateTransitionError("material status", s.String(), to.String())
	}
	return to, nil
}

// ProcurementStatus tracks procurement of a material line independently of
// its usage status:
//
//	PENDING -> REQUESTED -> APPROVED -> ORDERED -> DELIVERED -> RECEIVED
//
// REJECTED is reachable from REQUESTED and APPROVED and may return to
// REQUESTED for resubmission. CANCELLED is reachable from every non-terminal
// status. RECEIVED and CANCELLED are terminal.
type ProcurementStatus int

const (
	// ProcurementStatusUnknown represents an invalid or undefined status.
	ProcurementStatusUnknown ProcurementStatus = iota

	// ProcurementPending means procurement has not started.
	ProcurementPending

	// ProcurementRequested means procurement was requested.
	ProcurementRequested

	// ProcurementApproved means the procurement request was approved.
	ProcurementApproved

	// ProcurementOrdered means the order was placed.
	ProcurementOrdered

	// ProcurementDelivered means the order was delivered.
	ProcurementDelivered

	// ProcurementReceived means the delivery was checked in. Terminal.
	ProcurementReceived

	// ProcurementRejected means the request was rejected. It may return to
	// ProcurementRequested for resubmission.
	ProcurementRejected

	// ProcurementCancelled means procurement was cancelled. Terminal.
	ProcurementCancelled
)

func getProcurementStatusStrings() map[ProcurementStatus]string {
	return map[ProcurementStatus]string{
		ProcurementStatusUnknown: "UNKNOWN",
		ProcurementPending:       "PENDING",
		ProcurementRequested:     "REQUESTED",
		ProcurementApproved:      "APPROVED",
		ProcurementOrdered:       "ORDERED",
		ProcurementDelivered:     "DELIVERED",
		ProcurementReceived:      "RECEIVED",
		ProcurementRejected:      "REJECTED",
		ProcurementCancelled:     "CANCELLED",
	}
}

func procurementStatusTransitions() map[ProcurementStatus][]ProcurementStatus {
	return map[ProcurementStatus][]ProcurementStatus{
		ProcurementPending:   {ProcurementRequested, ProcurementCancelled},
		ProcurementRequested: {ProcurementApproved, ProcurementRejected, ProcurementCancelled},
		ProcurementApproved:  {ProcurementOrdered, ProcurementRejected, ProcurementCancelled},
		ProcurementOrdered:   {ProcurementDelivered, ProcurementCancelled},
		ProcurementDelivered: {ProcurementReceived, ProcurementCancelled},
		ProcurementRejected:  {ProcurementRequested, ProcurementCancelled},
	}
}

// ProcurementStatusFromString parses the persisted string form.
func ProcurementStatusFromString(s string) (ProcurementStatus, error) {
	for status, str := range getProcurementStatusStrings() {
		if str == s && status != ProcurementStatusUnknown {
			return status, nil
		}
	}
	return ProcurementStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"procurementStatus", fmt.Errorf("%q is not a valid procurement status", s))
}

// Validate checks if the ProcurementStatus value is valid.
func (s ProcurementStatus) Validate() error {
	if _, ok := getProcurementStatusStrings()[s]; !ok || s == ProcurementStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"procurementStatus", fmt.Errorf("%d is not a valid procurement status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s ProcurementStatus) String() string {
	if str, ok := getProcurementStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status allows no further transitions.
func (s ProcurementStatus) IsTerminal() bool {
	return s == ProcurementReceived || s == ProcurementCancelled
}

// CanTransitionTo reports whether the edge s -> to is allowed.
func (s ProcurementStatus) CanTransitionTo(to ProcurementStatus) bool {
	for _, allowed := range procurementStatusTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition returns the target status if the edge s -> to is allowed,
// or a StateTransitionError otherwise.
func (s ProcurementStatus) Transition(to ProcurementStatus) (ProcurementStatus, error) {
	if err := to.Validate(); err != nil {
		return ProcurementStatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return ProcurementStatusUnknown, errs.NewStateTransitionError("procurement status", s.String(), to.String())
	}
	return to, nil
}
