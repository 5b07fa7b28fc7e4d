package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// AssignmentRole is the role a worker plays on a work order.
type AssignmentRole int

const (
	// AssignmentRoleUnknown represents an invalid or undefined role.
	AssignmentRoleUnknown AssignmentRole = iota

	// RolePrimaryTechnician is the technician responsible for the work.
	RolePrimaryTechnician

	// RoleAssistantTechnician assists the primary technician.
	RoleAssistantTechnician

	// RoleSupervisor supervises and manages the work.
	RoleSupervisor

	// RoleSpecialist contributes specialized skills.
	RoleSpecialist

	// RoleContractor is an external contracting company.
	RoleContractor

	// RoleInspector inspects and signs off the work.
	RoleInspector

	// RoleCoordinator coordinates the work across parties.
	RoleCoordinator
)

func getAssignmentRoleStrings() map[AssignmentRole]string {
	return map[AssignmentRole]string{
		AssignmentRoleUnknown:   "UNKNOWN",
		RolePrimaryTechnician:   "PRIMARY_TECHNICIAN",
		RoleAssistantTechnician: "ASSISTANT_TECHNICIAN",
		RoleSupervisor:          "SUPERVISOR",
		RoleSpecialist:          "SPECIALIST",
		RoleContractor:          "CONTRACTOR",
		RoleInspector:           "INSPECTOR",
		RoleCoordinator:         "COORDINATOR",
	}
}

// AssignmentRoleFromString parses the persisted string form.
func AssignmentRoleFromString(s string) (AssignmentRole, error) {
	for role, str := range getAssignmentRoleStrings() {
		if str == s && role != AssignmentRoleUnknown {
			return role, nil
		}
	}
	return AssignmentRoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"assignmentRole", fmt.Errorf("%q is not a valid assignment role", s))
}

// Validate checks if the AssignmentRole value is valid.
func (r AssignmentRole) Validate() error {
	if _, ok := getAssignmentRoleStrings()[r]; !ok || r == AssignmentRoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentRole", fmt.Errorf("%d is not a valid assignment role", r))
	}
	return nil
}

// String returns the persisted name of the role.
func (r AssignmentRole) String() string {
	if str, ok := getAssignmentRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// AssignmentType classifies where the assigned worker comes from.
type AssignmentType int

const (
	// AssignmentTypeUnknown represents an invalid or undefined type.
	AssignmentTypeUnknown AssignmentType = iota

	// AssignmentInternal is in-house staff.
	AssignmentInternal

	// AssignmentExternal is external personnel.
	AssignmentExternal

	// AssignmentContractor is a contracted company.
	AssignmentContractor

	// AssignmentConsultant is an external consultant.
	AssignmentConsultant
)

func getAssignmentTypeStrings() map[AssignmentType]string {
	return map[AssignmentType]string{
		AssignmentTypeUnknown: "UNKNOWN",
		AssignmentInternal:    "INTERNAL",
		AssignmentExternal:    "EXTERNAL",
		AssignmentContractor:  "CONTRACTOR",
		AssignmentConsultant:  "CONSULTANT",
	}
}

// AssignmentTypeFromString parses the persisted string form.
func AssignmentTypeFromString(s string) (AssignmentType, error) {
	for assignmentType, str := range getAssignmentTypeStrings() {
		if str == s && assignmentType != AssignmentTypeUnknown {
			return assignmentType, nil
		}
	}
	return AssignmentTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"assignmentType", fmt.Errorf("%q is not a valid assignment type", s))
}

// Validate checks if the AssignmentType value is valid.
func (t AssignmentType) Validate() error {
	if _, ok := getAssignmentTypeStrings()[t]; !ok || t == AssignmentTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentType", fmt.Errorf("%d is not a valid assignment type", t))
	}
	return nil
}

// String returns the persisted name of the type.
func (t AssignmentType) String() string {
	if str, ok := getAssignmentTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// AssignmentStatus is the lifecycle state of a worker assignment.
//
// State transitions:
//
//	ASSIGNED ──> ACCEPTED ──> IN_PROGRESS ──> COMPLETED
//	    │            │
//	    ├────────────┴──> CANCELLED | REASSIGNED
//
// COMPLETED, CANCELLED, and REASSIGNED are terminal.
type AssignmentStatus int

const (
	// AssignmentStatusUnknown represents an invalid or undefined status.
	AssignmentStatusUnknown AssignmentStatus = iota

	// AssignmentAssigned means the worker was assigned and has not responded.
	AssignmentAssigned

	// AssignmentAccepted means the worker accepted the assignment.
	AssignmentAccepted

	// AssignmentInProgress means the worker started the work.
	AssignmentInProgress

	// AssignmentCompleted means the worker finished the work. Terminal.
	AssignmentCompleted

	// AssignmentCancelled means the assignment was cancelled. Terminal.
	AssignmentCancelled

	// AssignmentReassigned means the work moved to another worker. Terminal.
	AssignmentReassigned
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentStatusUnknown: "UNKNOWN",
		AssignmentAssigned:      "ASSIGNED",
		AssignmentAccepted:      "ACCEPTED",
		AssignmentInProgress:    "IN_PROGRESS",
		AssignmentCompleted:     "COMPLETED",
		AssignmentCancelled:     "CANCELLED",
		AssignmentReassigned:    "REASSIGNED",
	}
}

func assignmentStatusTransitions() map[AssignmentStatus][]AssignmentStatus {
	return map[AssignmentStatus][]AssignmentStatus{
		AssignmentAssigned:   {AssignmentAccepted, AssignmentCancelled, AssignmentReassigned},
		AssignmentAccepted:   {AssignmentInProgress, AssignmentCancelled, AssignmentReassigned},
		AssignmentInProgress: {AssignmentCompleted},
	}
}

// AssignmentStatusFromString parses the persisted string form.
func AssignmentStatusFromString(s string) (AssignmentStatus, error) {
	for status, str := range getAssignmentStatusStrings() {
		if str == s && status != AssignmentStatusUnknown {
			return status, nil
		}
	}
	return AssignmentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"assignmentStatus", fmt.Errorf("%q is not a valid assignment status", s))
}

// Validate checks if the AssignmentStatus value is valid.
func (s AssignmentStatus) Validate() error {
	if _, ok := getAssignmentStatusStrings()[s]; !ok || s == AssignmentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentStatus", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentCompleted || s == AssignmentCancelled || s == AssignmentReassigned
}

// CanTransitionTo reports whether the edge s -> to is allowed.
func (s AssignmentStatus) CanTransitionTo(to AssignmentStatus) bool {
	for _, allowed := range assignmentStatusTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition returns the target status if the edge s -> to is allowed,
// or a StateTransitionError otherwise.
func (s AssignmentStatus) Transition(to AssignmentStatus) (AssignmentStatus, error) {
	if err := to.Validate(); err != nil {
		return AssignmentStatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return AssignmentStatusUnknown, errs.NewStateTransitionError("assignment status", s.String(), to.String())
	}
	return to, nil
}

// AcceptanceStatus records the worker's response to an assignment.
type AcceptanceStatus int

const (
	// AcceptanceStatusUnknown represents an invalid or undefined status.
	AcceptanceStatusUnknown AcceptanceStatus = iota

	// AcceptancePending means the worker has not responded yet.
	AcceptancePending

	// AcceptanceAccepted means the worker accepted.
	AcceptanceAccepted

	// AcceptanceDeclined means the worker declined.
	AcceptanceDeclined

	// RequiresClarification means the worker asked for more information
	// before deciding.
	RequiresClarification
)

func getAcceptanceStatusStrings() map[AcceptanceStatus]string {
	return map[AcceptanceStatus]string{
		AcceptanceStatusUnknown: "UNKNOWN",
		AcceptancePending:       "PENDING",
		AcceptanceAccepted:      "ACCEPTED",
		AcceptanceDeclined:      "DECLINED",
		RequiresClarification:   "REQUIRES_CLARIFICATION",
	}
}

// AcceptanceStatusFromString parses the persisted string form.
func AcceptanceStatusFromString(s string) (AcceptanceStatus, error) {
	for status, str := range getAcceptanceStatusStrings() {
		if str == s && status != AcceptanceStatusUnknown {
			return status, nil
		}
	}
	return AcceptanceStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"acceptanceStatus", fmt.Errorf("%q is not a valid acceptance status", s))
}

// Validate checks if the AcceptanceStatus value is valid.
func (s AcceptanceStatus) Validate() error {
	if _, ok := getAcceptanceStatusStrings()[s]; !ok || s == AcceptanceStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"acceptanceStatus", fmt.Errorf("%d is not a valid acceptance status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s AcceptanceStatus) String() string {
	if str, ok := getAcceptanceStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsDecided reports whether the worker has given a final answer.
func (s AcceptanceStatus) IsDecided() bool {
	return s == AcceptanceAccepted || s == AcceptanceDeclined
}
