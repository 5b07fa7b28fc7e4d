package labor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment constructor")
)

var maxScore = decimal.NewFromInt(10)

// Assignment binds one worker to one work order in a given role.
//
// Lifecycle rules:
//   - actual hours can only be recorded after the worker accepted
//   - work can only start from an accepted assignment
//   - performance scores are only settable once the assignment is COMPLETED
//     and are rejected outside [0,10]
type Assignment struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	workOrderID kernel.UUID
	workerID    kernel.UUID

	role           catalog.AssignmentRole
	assignmentType catalog.AssignmentType

	assignedDate      time.Time
	expectedStartDate *time.Time
	expectedEndDate   *time.Time

	status           catalog.AssignmentStatus
	acceptanceStatus catalog.AcceptanceStatus

	allocatedHours decimal.Decimal
	actualHours    decimal.Decimal
	workPercentage int

	assignmentNotes string
	acceptanceNotes string
	completionNotes string

	performanceRating decimal.Decimal
	qualityScore      decimal.Decimal
	timelinessScore   decimal.Decimal

	completedDate *time.Time
	completedBy   *kernel.UUID

	version int

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in ASSIGNED status awaiting the
// worker's response.
func NewAssignment(
	id kernel.UUID,
	tenantID kernel.UUID,
	workOrderID kernel.UUID,
	workerID kernel.UUID,
	role catalog.AssignmentRole,
	assignmentType catalog.AssignmentType,
	assignedDate time.Time,
) (*Assignment, error) {
	assignment := &Assignment{
		status:           catalog.AssignmentAssigned,
		acceptanceStatus: catalog.AcceptancePending,
		assignedDate:     assignedDate,
		version:          1,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setIdentity(id, tenantID, workOrderID, workerID),
		assignment.setRole(role, assignmentType),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// RestoreAssignmentParams carries the full persisted state of an assignment.
type RestoreAssignmentParams struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	WorkOrderID kernel.UUID
	WorkerID    kernel.UUID

	Role           catalog.AssignmentRole
	AssignmentType catalog.AssignmentType

	AssignedDate      time.Time
	ExpectedStartDate *time.Time
	ExpectedEndDate   *time.Time

	Status           catalog.AssignmentStatus
	AcceptanceStatus catalog.AcceptanceStatus

	AllocatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	WorkPercentage int

	AssignmentNotes string
	AcceptanceNotes string
	CompletionNotes string

	PerformanceRating decimal.Decimal
	QualityScore      decimal.Decimal
	TimelinessScore   decimal.Decimal

	CompletedDate *time.Time
	CompletedBy   *kernel.UUID

	Version int
}

// RestoreAssignment reconstructs an assignment from persistent storage.
func RestoreAssignment(params RestoreAssignmentParams) (*Assignment, error) {
	assignment := &Assignment{
		assignedDate:      params.AssignedDate,
		expectedStartDate: params.ExpectedStartDate,
		expectedEndDate:   params.ExpectedEndDate,
		allocatedHours:    params.AllocatedHours,
		actualHours:       params.ActualHours,
		assignmentNotes:   params.AssignmentNotes,
		acceptanceNotes:   params.AcceptanceNotes,
		completionNotes:   params.CompletionNotes,
		performanceRating: params.PerformanceRating,
		qualityScore:      params.QualityScore,
		timelinessScore:   params.TimelinessScore,
		completedDate:     params.CompletedDate,
		completedBy:       params.CompletedBy,
		version:           params.Version,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setIdentity(params.ID, params.TenantID, params.WorkOrderID, params.WorkerID),
		assignment.setRole(params.Role, params.AssignmentType),
		assignment.setStatuses(params.Status, params.AcceptanceStatus),
		assignment.setWorkPercentage(params.WorkPercentage),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate ensures the assignment was built through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by id.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// TenantID returns the owning tenant's identifier.
func (a *Assignment) TenantID() kernel.UUID { return a.tenantID }

// WorkOrderID returns the owning work order's identifier.
func (a *Assignment) WorkOrderID() kernel.UUID { return a.workOrderID }

// WorkerID returns the assigned worker's identifier.
func (a *Assignment) WorkerID() kernel.UUID { return a.workerID }

// Role returns the worker's role on the work order.
func (a *Assignment) Role() catalog.AssignmentRole { return a.role }

// AssignmentType returns where the worker comes from.
func (a *Assignment) AssignmentType() catalog.AssignmentType { return a.assignmentType }

// AssignedDate returns when the assignment was made.
func (a *Assignment) AssignedDate() time.Time { return a.assignedDate }

// ExpectedStartDate returns the expected start, or nil.
func (a *Assignment) ExpectedStartDate() *time.Time { return a.expectedStartDate }

// ExpectedEndDate returns the expected end, or nil.
func (a *Assignment) ExpectedEndDate() *time.Time { return a.expectedEndDate }

// Status returns the assignment lifecycle status.
func (a *Assignment) Status() catalog.AssignmentStatus { return a.status }

// AcceptanceStatus returns the worker's response status.
func (a *Assignment) AcceptanceStatus() catalog.AcceptanceStatus { return a.acceptanceStatus }

// AllocatedHours returns the planned hours.
func (a *Assignment) AllocatedHours() decimal.Decimal { return a.allocatedHours }

// ActualHours returns the recorded actual hours.
func (a *Assignment) ActualHours() decimal.Decimal { return a.actualHours }

// WorkPercentage returns the assignment-level progress percentage.
func (a *Assignment) WorkPercentage() int { return a.workPercentage }

// AssignmentNotes returns the notes given at assignment time.
func (a *Assignment) AssignmentNotes() string { return a.assignmentNotes }

// AcceptanceNotes returns the worker's response notes.
func (a *Assignment) AcceptanceNotes() string { return a.acceptanceNotes }

// CompletionNotes returns the completion notes.
func (a *Assignment) CompletionNotes() string { return a.completionNotes }

// PerformanceRating returns the recorded performance rating.
func (a *Assignment) PerformanceRating() decimal.Decimal { return a.performanceRating }

// QualityScore returns the recorded quality score.
func (a *Assignment) QualityScore() decimal.Decimal { return a.qualityScore }

// TimelinessScore returns the recorded timeliness score.
func (a *Assignment) TimelinessScore() decimal.Decimal { return a.timelinessScore }

// CompletedDate returns when the assignment completed, or nil.
func (a *Assignment) CompletedDate() *time.Time { return a.completedDate }

// CompletedBy returns who signed off the completion, or nil.
func (a *Assignment) CompletedBy() *kernel.UUID { return a.completedBy }

// Version returns the optimistic-lock version.
func (a *Assignment) Version() int { return a.version }

// Plan records the expected window and planned hours.
func (a *Assignment) Plan(expectedStart, expectedEnd *time.Time, allocatedHours decimal.Decimal, notes string) error {
	if expectedStart != nil && expectedEnd != nil && expectedEnd.Before(*expectedStart) {
		return errs.NewValueIsInvalidErrorWithCause("expectedEndDate",
			fmt.Errorf("end %s precedes start %s",
				expectedEnd.Format(time.RFC3339), expectedStart.Format(time.RFC3339)))
	}
	if allocatedHours.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("allocatedHours",
			fmt.Errorf("%s is negative", allocatedHours))
	}
	a.expectedStartDate = expectedStart
	a.expectedEndDate = expectedEnd
	a.allocatedHours = allocatedHours
	a.assignmentNotes = notes
	return nil
}

// Accept records the worker's positive response.
func (a *Assignment) Accept(notes string) error {
	newStatus, err := a.status.Transition(catalog.AssignmentAccepted)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.acceptanceStatus = catalog.AcceptanceAccepted
	a.acceptanceNotes = notes
	return nil
}

// Decline records the worker's refusal and cancels the assignment. The
// reason is mandatory.
func (a *Assignment) Decline(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	newStatus, err := a.status.Transition(catalog.AssignmentCancelled)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.acceptanceStatus = catalog.AcceptanceDeclined
	a.acceptanceNotes = reason
	return nil
}

// StartWork moves an accepted assignment into IN_PROGRESS.
func (a *Assignment) StartWork() error {
	if a.acceptanceStatus != catalog.AcceptanceAccepted {
		return errs.NewStateTransitionError("assignment status", a.status.String(), catalog.AssignmentInProgress.String())
	}
	newStatus, err := a.status.Transition(catalog.AssignmentInProgress)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Complete finishes the assignment and forces its progress to 100.
func (a *Assignment) Complete(notes string, completedBy *kernel.UUID, at time.Time) error {
	if completedBy != nil {
		if err := completedBy.Validate(); err != nil {
			return err
		}
	}
	newStatus, err := a.status.Transition(catalog.AssignmentCompleted)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.workPercentage = 100
	a.completionNotes = notes
	a.completedBy = completedBy
	a.completedDate = &at
	return nil
}

// Reassign closes this assignment because the work moved to another worker.
func (a *Assignment) Reassign() error {
	newStatus, err := a.status.Transition(catalog.AssignmentReassigned)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Cancel withdraws the assignment before work started.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Transition(catalog.AssignmentCancelled)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// Evaluate records the performance scores. Only a COMPLETED assignment can
// be evaluated; each score must lie in [0,10].
func (a *Assignment) Evaluate(performance, quality, timeliness decimal.Decimal) error {
	if a.status != catalog.AssignmentCompleted {
		return errs.NewValueIsInvalidErrorWithCause("assignmentStatus",
			fmt.Errorf("evaluation requires COMPLETED, current status is %s", a.status))
	}
	for name, score := range map[string]decimal.Decimal{
		"performanceRating": performance,
		"qualityScore":      quality,
		"timelinessScore":   timeliness,
	} {
		if score.IsNegative() || score.GreaterThan(maxScore) {
			return errs.NewValueIsOutOfRangeError(name, score.String(), 0, 10)
		}
	}

	a.performanceRating = performance
	a.qualityScore = quality
	a.timelinessScore = timeliness
	return nil
}

// RecordActualHours replaces the recorded actual hours. Hours can only be
// recorded after the worker accepted the assignment.
func (a *Assignment) RecordActualHours(hours decimal.Decimal) error {
	if a.acceptanceStatus != catalog.AcceptanceAccepted {
		return errs.NewValueIsInvalidErrorWithCause("actualHours",
			fmt.Errorf("hours require an accepted assignment, acceptance status is %s", a.acceptanceStatus))
	}
	if hours.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("actualHours",
			fmt.Errorf("%s is negative", hours))
	}
	a.actualHours = hours
	return nil
}

// UpdateProgress records the assignment-level progress. Reaching 100 while
// in progress completes the assignment.
func (a *Assignment) UpdateProgress(percentage int, at time.Time) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("workPercentage", percentage, 0, 100)
	}

	if percentage == 100 && a.status == catalog.AssignmentInProgress {
		return a.Complete(a.completionNotes, a.completedBy, at)
	}

	a.workPercentage = percentage
	return nil
}

func (a *Assignment) setIdentity(id, tenantID, workOrderID, workerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		workOrderID.Validate(),
		workerID.Validate(),
	); err != nil {
		return err
	}
	a.id = id
	a.tenantID = tenantID
	a.workOrderID = workOrderID
	a.workerID = workerID
	return nil
}

func (a *Assignment) setRole(role catalog.AssignmentRole, assignmentType catalog.AssignmentType) error {
	if err := errors.Join(role.Validate(), assignmentType.Validate()); err != nil {
		return err
	}
	a.role = role
	a.assignmentType = assignmentType
	return nil
}

func (a *Assignment) setStatuses(status catalog.AssignmentStatus, acceptance catalog.AcceptanceStatus) error {
	if err := errors.Join(status.Validate(), acceptance.Validate()); err != nil {
		return err
	}
	a.status = status
	a.acceptanceStatus = acceptance
	return nil
}

func (a *Assignment) setWorkPercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("workPercentage", percentage, 0, 100)
	}
	a.workPercentage = percentage
	return nil
}
