package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// WorkStatus represents the lifecycle state of a work order.
// It implements a state machine with defined transitions to ensure work
// orders follow the correct business workflow.
//
// State transitions:
//
//	DRAFT ──> PENDING ──┬──> SCHEDULED ──┬──> APPROVED ──> IN_PROGRESS ──┬──> COMPLETED
//	             ▲      ├──> APPROVED ───┘        ▲              │       │
//	             │      ├──> REJECTED ────────────┘       PAUSED ◄┴──────┤
//	             └──────┘                                                └──> CANCELLED
//
// COMPLETED and CANCELLED are terminal; CANCELLED is reachable from every
// non-terminal status. REJECTED can only move to PENDING for resubmission
// or be cancelled.
//
// WorkStatus is a value object that validates state transitions and provides
// string representations for persistence and display.
type WorkStatus int

const (
	// WorkStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized WorkStatus values.
	WorkStatusUnknown WorkStatus = iota

	// Draft is the initial status of a work order being authored and not yet
	// submitted for processing.
	Draft

	// Pending indicates the work order has been submitted and is waiting for
	// scheduling or approval.
	Pending

	// Scheduled indicates a worker has been assigned and the work is waiting
	// to start.
	Scheduled

	// Approved indicates the work order passed approval and may start.
	Approved

	// Rejected indicates the work order was rejected during approval.
	// It can only return to Pending for resubmission.
	Rejected

	// InProgress indicates work is actively being performed.
	InProgress

	// Paused indicates work was temporarily suspended and can resume.
	Paused

	// WorkStatusCompleted indicates the work finished. Terminal.
	WorkStatusCompleted

	// WorkStatusCancelled indicates the work order was cancelled. Terminal.
	WorkStatusCancelled
)

func getWorkStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		WorkStatusUnknown:   "UNKNOWN",
		Draft:               "DRAFT",
		Pending:             "PENDING",
		Scheduled:           "SCHEDULED",
		Approved:            "APPROVED",
		Rejected:            "REJECTED",
		InProgress:          "IN_PROGRESS",
		Paused:              "PAUSED",
		WorkStatusCompleted: "COMPLETED",
		WorkStatusCancelled: "CANCELLED",
	}
}

// workStatusTransitions is the single source of truth for allowed status
// edges. An absent entry means no outgoing edges (terminal status).
func workStatusTransitions() map[WorkStatus][]WorkStatus {
	return map[WorkStatus][]WorkStatus{
		Draft:      {Pending, WorkStatusCancelled},
		Pending:    {Scheduled, Approved, Rejected, WorkStatusCancelled},
		Scheduled:  {Approved, InProgress, WorkStatusCancelled},
		Approved:   {InProgress, WorkStatusCancelled},
		InProgress: {Paused, WorkStatusCompleted, WorkStatusCancelled},
		Paused:     {InProgress, WorkStatusCancelled},
		Rejected:   {Pending, WorkStatusCancelled},
	}
}

// WorkStatusFromString parses the persisted string form of a status.
func WorkStatusFromString(s string) (WorkStatus, error) {
	for status, str := range getWorkStatusStrings() {
		if str == s && status != WorkStatusUnknown {
			return status, nil
		}
	}
	return WorkStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workStatus", fmt.Errorf("%q is not a valid work status", s))
}

// Validate checks if the WorkStatus value is valid.
// WorkStatusUnknown (0) and any out-of-range values are invalid.
func (s WorkStatus) Validate() error {
	if _, ok := getWorkStatusStrings()[s]; !ok || s == WorkStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"workStatus", fmt.Errorf("%d is not a valid work status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// It implements fmt.Stringer and is safe to call on any value.
func (s WorkStatus) String() string {
	if str, ok := getWorkStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s WorkStatus) IsTerminal() bool {
	return s == WorkStatusCompleted || s == WorkStatusCancelled
}

// CanTransitionTo reports whether the edge s -> to exists in the transition
// table, without performing the transition.
func (s WorkStatus) CanTransitionTo(to WorkStatus) bool {
	for _, allowed := range workStatusTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition returns the target status if the edge s -> to is allowed.
//
// Returns:
//   - (to, nil) on a valid transition
//   - (WorkStatusUnknown, *errs.StateTransitionError) if the edge is absent
//
// This is the only guard for work-order status changes; the aggregate never
// mutates its status without going through it.
func (s WorkStatus) Transition(to WorkStatus) (WorkStatus, error) {
	if err := to.Validate(); err != nil {
		return WorkStatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return WorkStatusUnknown, errs.NewStateTransitionError("work order status", s.String(), to.String())
	}
	return to, nil
}

// NextPossible returns the statuses reachable from s in one transition.
func (s WorkStatus) NextPossible() []WorkStatus {
	edges := workStatusTransitions()[s]
	out := make([]WorkStatus, len(edges))
	copy(out, edges)
	return out
}
