package workorder

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
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was
	// not created through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder constructor")
)

// sixtyMinutes is the divisor for converting minutes to fractional hours.
var sixtyMinutes = decimal.NewFromInt(60)

// WorkOrder is the aggregate root for a maintenance or repair job.
//
// Invariants:
//   - progressPercentage always lies within the range owned by phase
//   - status changes only through the catalog transition table
//   - actualEndDate set implies progressPercentage == 100 and status COMPLETED
//   - approval decisions require a decidable approval status
//
// All fields are private; state changes happen through validated methods so
// no operation can leave the aggregate partially updated.
type WorkOrder struct {
	id       kernel.UUID
	tenantID kernel.UUID

	// number is the human-readable work order number, unique per tenant.
	number string

	title       string
	description string

	category catalog.WorkCategory
	workType catalog.WorkType
	priority catalog.WorkPriority
	urgency  catalog.WorkUrgency

	status         catalog.WorkStatus
	approvalStatus catalog.ApprovalStatus
	phase          catalog.WorkPhase

	// progressPercentage mirrors the latest accepted progress entry.
	progressPercentage int

	buildingID    *kernel.UUID
	unitID        *kernel.UUID
	assetID       *kernel.UUID
	faultReportID *kernel.UUID

	requestedBy   *kernel.UUID
	requestDate   time.Time
	requestReason string
	workLocation  string
	workScope     string

	scheduledStartDate *time.Time
	scheduledEndDate   *time.Time

	estimatedDurationHours decimal.Decimal

	assignedTo     *kernel.UUID
	assignedTeam   string
	assignmentDate *time.Time

	actualStartDate     *time.Time
	actualEndDate       *time.Time
	actualDurationHours decimal.Decimal

	estimatedCost  decimal.Decimal
	approvedBudget decimal.Decimal
	actualCost     decimal.Decimal

	completionNotes      string
	qualityRating        decimal.Decimal
	customerSatisfaction decimal.Decimal

	followUpRequired bool
	followUpDate     *time.Time
	followUpNotes    string

	approvedBy    *kernel.UUID
	approvalDate  *time.Time
	approvalNotes string

	closedBy      *kernel.UUID
	closedDate    *time.Time
	closureReason string

	// version supports optimistic locking in the storage layer.
	version int

	guard guard.ConstructorGuard
}

// NewWorkOrder creates a fresh work order in DRAFT status with PENDING
// approval, zero progress, and the PLANNING phase.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - tenantID: owning tenant (must be a valid UUID)
//   - number: human-readable work order number, unique per tenant
//   - title, description: must be non-empty
//   - category, workType, priority, urgency: classification (must be valid)
//   - requestDate: when the request was raised
//
// Returns the constructed aggregate or an aggregated validation error.
func NewWorkOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	number string,
	title string,
	description string,
	category catalog.WorkCategory,
	workType catalog.WorkType,
	priority catalog.WorkPriority,
	urgency catalog.WorkUrgency,
	requestDate time.Time,
) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		status:         catalog.Draft,
		approvalStatus: catalog.ApprovalPending,
		phase:          catalog.Planning,
		requestDate:    requestDate,
		version:        1,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workOrder.setID(id),
		workOrder.setTenantID(tenantID),
		workOrder.setNumber(number),
		workOrder.setTitle(title),
		workOrder.setDescription(description),
		workOrder.setClassification(category, workType, priority, urgency),
	); err != nil {
		return nil, err
	}

	return workOrder, nil
}

// RestoreWorkOrderParams carries the full persisted state of a work order.
// The field set mirrors the aggregate one to one; see WorkOrder for meaning.
type RestoreWorkOrderParams struct {
	ID       kernel.UUID
	TenantID kernel.UUID
	Number   string

	Title       string
	Description string

	Category catalog.WorkCategory
	WorkType catalog.WorkType
	Priority catalog.WorkPriority
	Urgency  catalog.WorkUrgency

	Status         catalog.WorkStatus
	ApprovalStatus catalog.ApprovalStatus
	Phase          catalog.WorkPhase

	ProgressPercentage int

	BuildingID    *kernel.UUID
	UnitID        *kernel.UUID
	AssetID       *kernel.UUID
	FaultReportID *kernel.UUID

	RequestedBy   *kernel.UUID
	RequestDate   time.Time
	RequestReason string
	WorkLocation  string
	WorkScope     string

	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time

	EstimatedDurationHours decimal.Decimal

	AssignedTo     *kernel.UUID
	AssignedTeam   string
	AssignmentDate *time.Time

	ActualStartDate     *time.Time
	ActualEndDate       *time.Time
	ActualDurationHours decimal.Decimal

	EstimatedCost  decimal.Decimal
	ApprovedBudget decimal.Decimal
	ActualCost     decimal.Decimal

	CompletionNotes      string
	QualityRating        decimal.Decimal
	CustomerSatisfaction decimal.Decimal

	FollowUpRequired bool
	FollowUpDate     *time.Time
	FollowUpNotes    string

	ApprovedBy    *kernel.UUID
	ApprovalDate  *time.Time
	ApprovalNotes string

	ClosedBy      *kernel.UUID
	ClosedDate    *time.Time
	ClosureReason string

	Version int
}

// RestoreWorkOrder reconstructs a work order from persistent storage. The
// restored aggregate behaves identically to one built through domain
// operations; the same field validation applies.
func RestoreWorkOrder(params RestoreWorkOrderParams) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		requestDate:            params.RequestDate,
		requestReason:          params.RequestReason,
		workLocation:           params.WorkLocation,
		workScope:              params.WorkScope,
		scheduledStartDate:     params.ScheduledStartDate,
		scheduledEndDate:       params.ScheduledEndDate,
		estimatedDurationHours: params.EstimatedDurationHours,
		assignedTeam:           params.AssignedTeam,
		assignmentDate:         params.AssignmentDate,
		actualStartDate:        params.ActualStartDate,
		actualEndDate:          params.ActualEndDate,
		actualDurationHours:    params.ActualDurationHours,
		estimatedCost:          params.EstimatedCost,
		approvedBudget:         params.ApprovedBudget,
		actualCost:             params.ActualCost,
		completionNotes:        params.CompletionNotes,
		qualityRating:          params.QualityRating,
		customerSatisfaction:   params.CustomerSatisfaction,
		followUpRequired:       params.FollowUpRequired,
		followUpDate:           params.FollowUpDate,
		followUpNotes:          params.FollowUpNotes,
		approvalDate:           params.ApprovalDate,
		approvalNotes:          params.ApprovalNotes,
		closedDate:             params.ClosedDate,
		closureReason:          params.ClosureReason,
		buildingID:             params.BuildingID,
		unitID:                 params.UnitID,
		assetID:                params.AssetID,
		faultReportID:          params.FaultReportID,
		requestedBy:            params.RequestedBy,
		assignedTo:             params.AssignedTo,
		approvedBy:             params.ApprovedBy,
		closedBy:               params.ClosedBy,
		version:                params.Version,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workOrder.setID(params.ID),
		workOrder.setTenantID(params.TenantID),
		workOrder.setNumber(params.Number),
		workOrder.setTitle(params.Title),
		workOrder.setDescription(params.Description),
		workOrder.setClassification(params.Category, params.WorkType, params.Priority, params.Urgency),
		workOrder.setStatuses(params.Status, params.ApprovalStatus),
		workOrder.setProgress(params.ProgressPercentage, params.Phase),
	); err != nil {
		return nil, err
	}

	return workOrder, nil
}

// Validate ensures the aggregate was built through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// IsEqual compares two work orders by id.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID { return w.id }

// TenantID returns the owning tenant's identifier.
func (w *WorkOrder) TenantID() kernel.UUID { return w.tenantID }

// Number returns the human-readable work order number.
func (w *WorkOrder) Number() string { return w.number }

// Title returns the work order title.
func (w *WorkOrder) Title() string { return w.title }

// Description returns the work description.
func (w *WorkOrder) Description() string { return w.description }

// Category returns the work category.
func (w *WorkOrder) Category() catalog.WorkCategory { return w.category }

// WorkType returns the trade classification.
func (w *WorkOrder) WorkType() catalog.WorkType { return w.workType }

// Priority returns the work priority.
func (w *WorkOrder) Priority() catalog.WorkPriority { return w.priority }

// Urgency returns the work urgency.
func (w *WorkOrder) Urgency() catalog.WorkUrgency { return w.urgency }

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() catalog.WorkStatus { return w.status }

// ApprovalStatus returns the current approval status.
func (w *WorkOrder) ApprovalStatus() catalog.ApprovalStatus { return w.approvalStatus }

// Phase returns the current execution phase.
func (w *WorkOrder) Phase() catalog.WorkPhase { return w.phase }

// ProgressPercentage returns the latest mirrored progress percentage.
func (w *WorkOrder) ProgressPercentage() int { return w.progressPercentage }

// BuildingID returns the linked building, or nil.
func (w *WorkOrder) BuildingID() *kernel.UUID { return w.buildingID }

// UnitID returns the linked unit, or nil.
func (w *WorkOrder) UnitID() *kernel.UUID { return w.unitID }

// AssetID returns the linked facility asset, or nil.
func (w *WorkOrder) AssetID() *kernel.UUID { return w.assetID }

// FaultReportID returns the originating fault report, or nil.
func (w *WorkOrder) FaultReportID() *kernel.UUID { return w.faultReportID }

// RequestedBy returns who raised the request, or nil.
func (w *WorkOrder) RequestedBy() *kernel.UUID { return w.requestedBy }

// RequestDate returns when the request was raised.
func (w *WorkOrder) RequestDate() time.Time { return w.requestDate }

// RequestReason returns the free-text request reason.
func (w *WorkOrder) RequestReason() string { return w.requestReason }

// WorkLocation returns the free-text work location.
func (w *WorkOrder) WorkLocation() string { return w.workLocation }

// WorkScope returns the free-text scope description.
func (w *WorkOrder) WorkScope() string { return w.workScope }

// ScheduledStartDate returns the planned start, or nil.
func (w *WorkOrder) ScheduledStartDate() *time.Time { return w.scheduledStartDate }

// ScheduledEndDate returns the planned end, or nil.
func (w *WorkOrder) ScheduledEndDate() *time.Time { return w.scheduledEndDate }

// EstimatedDurationHours returns the planned duration in hours.
func (w *WorkOrder) EstimatedDurationHours() decimal.Decimal { return w.estimatedDurationHours }

// AssignedTo returns the primary assigned worker, or nil.
func (w *WorkOrder) AssignedTo() *kernel.UUID { return w.assignedTo }

// AssignedTeam returns the assigned team label.
func (w *WorkOrder) AssignedTeam() string { return w.assignedTeam }

// AssignmentDate returns when the primary worker was assigned, or nil.
func (w *WorkOrder) AssignmentDate() *time.Time { return w.assignmentDate }

// ActualStartDate returns when work actually started, or nil.
func (w *WorkOrder) ActualStartDate() *time.Time { return w.actualStartDate }

// ActualEndDate returns when work actually ended, or nil.
func (w *WorkOrder) ActualEndDate() *time.Time { return w.actualEndDate }

// ActualDurationHours returns the recalculated actual duration in hours.
func (w *WorkOrder) ActualDurationHours() decimal.Decimal { return w.actualDurationHours }

// EstimatedCost returns the cost estimate.
func (w *WorkOrder) EstimatedCost() decimal.Decimal { return w.estimatedCost }

// ApprovedBudget returns the approved budget.
func (w *WorkOrder) ApprovedBudget() decimal.Decimal { return w.approvedBudget }

// ActualCost returns the accumulated actual cost.
func (w *WorkOrder) ActualCost() decimal.Decimal { return w.actualCost }

// CompletionNotes returns the free-text completion notes.
func (w *WorkOrder) CompletionNotes() string { return w.completionNotes }

// QualityRating returns the recorded quality rating.
func (w *WorkOrder) QualityRating() decimal.Decimal { return w.qualityRating }

// CustomerSatisfaction returns the recorded satisfaction score.
func (w *WorkOrder) CustomerSatisfaction() decimal.Decimal { return w.customerSatisfaction }

// FollowUpRequired reports whether a follow-up visit is needed.
func (w *WorkOrder) FollowUpRequired() bool { return w.followUpRequired }

// FollowUpDate returns the planned follow-up date, or nil.
func (w *WorkOrder) FollowUpDate() *time.Time { return w.followUpDate }

// FollowUpNotes returns the follow-up notes.
func (w *WorkOrder) FollowUpNotes() string { return w.followUpNotes }

// ApprovedBy returns who made the approval decision, or nil.
func (w *WorkOrder) ApprovedBy() *kernel.UUID { return w.approvedBy }

// ApprovalDate returns when the approval decision was made, or nil.
func (w *WorkOrder) ApprovalDate() *time.Time { return w.approvalDate }

// ApprovalNotes returns the approval decision notes.
func (w *WorkOrder) ApprovalNotes() string { return w.approvalNotes }

// ClosedBy returns who closed the work order, or nil.
func (w *WorkOrder) ClosedBy() *kernel.UUID { return w.closedBy }

// ClosedDate returns when the work order was closed, or nil.
func (w *WorkOrder) ClosedDate() *time.Time { return w.closedDate }

// ClosureReason returns the recorded closure reason.
func (w *WorkOrder) ClosureReason() string { return w.closureReason }

// Version returns the optimistic-lock version.
func (w *WorkOrder) Version() int { return w.version }

// LinkReferences attaches the optional building/unit/asset/fault-report
// references. Nil pointers leave the corresponding link unset.
func (w *WorkOrder) LinkReferences(buildingID, unitID, assetID, faultReportID *kernel.UUID) error {
	for _, ref := range []*kernel.UUID{buildingID, unitID, assetID, faultReportID} {
		if ref != nil {
			if err := ref.Validate(); err != nil {
				return err
			}
		}
	}
	w.buildingID = buildingID
	w.unitID = unitID
	w.assetID = assetID
	w.faultReportID = faultReportID
	return nil
}

// SetRequestDetails records who asked for the work and why.
func (w *WorkOrder) SetRequestDetails(requestedBy *kernel.UUID, reason, location, scope string) error {
	if requestedBy != nil {
		if err := requestedBy.Validate(); err != nil {
			return err
		}
	}
	w.requestedBy = requestedBy
	w.requestReason = reason
	w.workLocation = location
	w.workScope = scope
	return nil
}

// SetSchedule records the planned execution window and duration estimate.
// The end must not precede the start.
func (w *WorkOrder) SetSchedule(start, end *time.Time, estimatedHours decimal.Decimal) error {
	if start != nil && end != nil && end.Before(*start) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledEndDate",
			fmt.Errorf("end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	if estimatedHours.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDurationHours",
			fmt.Errorf("%s is negative", estimatedHours))
	}
	w.scheduledStartDate = start
	w.scheduledEndDate = end
	w.estimatedDurationHours = estimatedHours
	return nil
}

// SetBudget records the cost estimate and the approved budget.
func (w *WorkOrder) SetBudget(estimatedCost, approvedBudget decimal.Decimal) error {
	if estimatedCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedCost",
			fmt.Errorf("%s is negative", estimatedCost))
	}
	if approvedBudget.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("approvedBudget",
			fmt.Errorf("%s is negative", approvedBudget))
	}
	w.estimatedCost = estimatedCost
	w.approvedBudget = approvedBudget
	return nil
}

// Submit moves the work order into the approval/scheduling queue. A DRAFT
// order becomes PENDING; a REJECTED order is resubmitted and its approval
// decision reset to PENDING.
func (w *WorkOrder) Submit() error {
	newStatus, err := w.status.Transition(catalog.Pending)
	if err != nil {
		return err
	}

	w.status = newStatus
	if w.approvalStatus == catalog.ApprovalRejected {
		w.approvalStatus = catalog.ApprovalPending
	}
	return nil
}

// AssignWorker records the primary worker for the order. A PENDING order
// advances to SCHEDULED; assignment to a terminal order is rejected.
func (w *WorkOrder) AssignWorker(workerID kernel.UUID, team string, at time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if w.status.IsTerminal() {
		return errs.NewStateTransitionError("work order status", w.status.String(), catalog.Scheduled.String())
	}

	if w.status == catalog.Pending {
		newStatus, err := w.status.Transition(catalog.Scheduled)
		if err != nil {
			return err
		}
		w.status = newStatus
	}

	w.assignedTo = &workerID
	w.assignedTeam = team
	w.assignmentDate = &at
	return nil
}

// Approve records a positive approval decision. Only allowed while the
// approval status is still decidable; a PENDING or SCHEDULED order also
// advances to APPROVED.
func (w *WorkOrder) Approve(approver kernel.UUID, notes string, at time.Time) error {
	if err := approver.Validate(); err != nil {
		return err
	}
	if !w.approvalStatus.IsDecidable() {
		return errs.NewApprovalRequiredError("approve", w.approvalStatus.String())
	}

	if w.status.CanTransitionTo(catalog.Approved) {
		newStatus, err := w.status.Transition(catalog.Approved)
		if err != nil {
			return err
		}
		w.status = newStatus
	}

	w.approvalStatus = catalog.ApprovalApproved
	w.approvedBy = &approver
	w.approvalDate = &at
	w.approvalNotes = notes
	return nil
}

// Reject records a negative approval decision and moves a PENDING order to
// REJECTED. The rejection reason is mandatory.
func (w *WorkOrder) Reject(rejector kernel.UUID, reason string, at time.Time) error {
	if err := rejector.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !w.approvalStatus.IsDecidable() {
		return errs.NewApprovalRequiredError("reject", w.approvalStatus.String())
	}

	if w.status == catalog.Pending {
		newStatus, err := w.status.Transition(catalog.Rejected)
		if err != nil {
			return err
		}
		w.status = newStatus
	}

	w.approvalStatus = catalog.ApprovalRejected
	w.approvedBy = &rejector
	w.approvalDate = &at
	w.approvalNotes = reason
	return nil
}

// Start begins execution. Allowed from SCHEDULED or APPROVED; stamps the
// actual start date on the first start only (a resume after pause keeps the
// original one).
func (w *WorkOrder) Start(at time.Time) error {
	newStatus, err := w.status.Transition(catalog.InProgress)
	if err != nil {
		return err
	}

	w.status = newStatus
	if w.actualStartDate == nil {
		w.actualStartDate = &at
	}
	return nil
}

// Pause suspends an in-progress order.
func (w *WorkOrder) Pause() error {
	newStatus, err := w.status.Transition(catalog.Paused)
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// Resume continues a paused order.
func (w *WorkOrder) Resume() error {
	if w.status != catalog.Paused {
		return errs.NewStateTransitionError("work order status", w.status.String(), catalog.InProgress.String())
	}
	newStatus, err := w.status.Transition(catalog.InProgress)
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// UpdateProgress mirrors an accepted progress report onto the aggregate.
//
// The percentage must not decrease and must lie within the supplied phase's
// range; passing catalog.WorkPhaseUnknown infers the phase from the
// percentage. Reaching 100 completes the order and stamps the actual end
// date.
func (w *WorkOrder) UpdateProgress(percentage int, phase catalog.WorkPhase, at time.Time) error {
	if w.status.IsTerminal() {
		return errs.NewStateTransitionError("work order status", w.status.String(), w.status.String())
	}
	if percentage < w.progressPercentage {
		return errs.NewValueIsOutOfRangeError("progressPercentage", percentage, w.progressPercentage, 100)
	}

	resolved := phase
	if resolved == catalog.WorkPhaseUnknown {
		inferred, err := catalog.PhaseForProgress(percentage)
		if err != nil {
			return err
		}
		resolved = inferred
	} else if !resolved.ContainsProgress(percentage) {
		minPct, maxPct := resolved.ProgressBounds()
		return errs.NewValueIsOutOfRangeError("progressPercentage", percentage, minPct, maxPct)
	}

	if percentage == 100 {
		newStatus, err := w.status.Transition(catalog.WorkStatusCompleted)
		if err != nil {
			return err
		}
		w.status = newStatus
		w.actualEndDate = &at
		w.recalculateActualDuration()
	}

	w.progressPercentage = percentage
	w.phase = resolved
	return nil
}

// Complete is the explicit completion path used when progress reporting is
// bypassed, e.g. an administrative close. Progress is forced to 100, the
// phase to CLOSURE, and the actual end date is stamped.
func (w *WorkOrder) Complete(notes string, qualityRating *decimal.Decimal, at time.Time) error {
	if qualityRating != nil && (qualityRating.IsNegative() || qualityRating.GreaterThan(decimal.NewFromInt(10))) {
		return errs.NewValueIsOutOfRangeError("qualityRating", qualityRating.String(), 0, 10)
	}

	newStatus, err := w.status.Transition(catalog.WorkStatusCompleted)
	if err != nil {
		return err
	}

	w.status = newStatus
	w.progressPercentage = 100
	w.phase = catalog.Closure
	w.actualEndDate = &at
	w.completionNotes = notes
	if qualityRating != nil {
		w.qualityRating = *qualityRating
	}
	w.recalculateActualDuration()
	return nil
}

// Cancel closes the work order from any non-terminal status and stamps the
// closure metadata. The reason is mandatory. The phase and progress are left
// where the work stopped; CLOSURE belongs to orders that reached 100.
func (w *WorkOrder) Cancel(actor kernel.UUID, reason string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := w.status.Transition(catalog.WorkStatusCancelled)
	if err != nil {
		return err
	}

	w.status = newStatus
	w.closedBy = &actor
	w.closedDate = &at
	w.closureReason = reason
	return nil
}

// RequireFollowUp flags the order for a follow-up visit.
func (w *WorkOrder) RequireFollowUp(date *time.Time, notes string) {
	w.followUpRequired = true
	w.followUpDate = date
	w.followUpNotes = notes
}

// RecordCustomerSatisfaction stores the customer's satisfaction score,
// rejected outside [0,10].
func (w *WorkOrder) RecordCustomerSatisfaction(score decimal.Decimal) error {
	if score.IsNegative() || score.GreaterThan(decimal.NewFromInt(10)) {
		return errs.NewValueIsOutOfRangeError("customerSatisfaction", score.String(), 0, 10)
	}
	w.customerSatisfaction = score
	return nil
}

// AddActualCost accumulates cost onto the aggregate, e.g. from material
// consumption or a labor rollup.
func (w *WorkOrder) AddActualCost(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("actualCost",
			fmt.Errorf("%s is negative", amount))
	}
	w.actualCost = w.actualCost.Add(amount)
	return nil
}

// SetActualCost replaces the accumulated actual cost, used when the cost is
// recomputed from the owning ledgers rather than accumulated.
func (w *WorkOrder) SetActualCost(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("actualCost",
			fmt.Errorf("%s is negative", amount))
	}
	w.actualCost = amount
	return nil
}

// RecalculateActualDuration derives the actual duration from the actual
// start/end pair in hours with two-decimal rounding. Zero when either
// timestamp is missing.
func (w *WorkOrder) RecalculateActualDuration() decimal.Decimal {
	w.recalculateActualDuration()
	return w.actualDurationHours
}

func (w *WorkOrder) recalculateActualDuration() {
	if w.actualStartDate == nil || w.actualEndDate == nil {
		w.actualDurationHours = decimal.Zero
		return
	}
	minutes := w.actualEndDate.Sub(*w.actualStartDate).Minutes()
	w.actualDurationHours = decimal.NewFromInt(int64(minutes)).DivRound(sixtyMinutes, 2)
}

// EnsureAcceptsResources rejects resource bookkeeping on a closed order.
// Completed and cancelled orders accept no further material, labor, or
// progress operations.
func (w *WorkOrder) EnsureAcceptsResources() error {
	if w.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("workOrderStatus",
			fmt.Errorf("%s accepts no resource operations", w.status))
	}
	return nil
}

// IsResponseOverdue reports whether work has still not started past the
// urgency's maximum response window, counted from the request date.
func (w *WorkOrder) IsResponseOverdue(now time.Time) bool {
	if w.status.IsTerminal() || w.actualStartDate != nil {
		return false
	}
	deadline := w.requestDate.Add(time.Duration(w.urgency.MaxResponseHours()) * time.Hour)
	return now.After(deadline)
}

// Escalate raises the priority one rank, capped at emergency. Terminal
// orders reject the change.
func (w *WorkOrder) Escalate() error {
	if w.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("workOrderStatus",
			fmt.Errorf("%s cannot be escalated", w.status))
	}
	w.priority = w.priority.Escalated()
	return nil
}

// IsDelayed reports whether the order overran its scheduled end: a finished
// order compares its actual end, an unfinished one compares now.
func (w *WorkOrder) IsDelayed(now time.Time) bool {
	if w.scheduledEndDate == nil {
		return false
	}
	end := now
	if w.actualEndDate != nil {
		end = *w.actualEndDate
	}
	return end.After(*w.scheduledEndDate)
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	w.tenantID = tenantID
	return nil
}

func (w *WorkOrder) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}
	w.number = number
	return nil
}

func (w *WorkOrder) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	w.title = title
	return nil
}

func (w *WorkOrder) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	w.description = description
	return nil
}

func (w *WorkOrder) setClassification(
	category catalog.WorkCategory,
	workType catalog.WorkType,
	priority catalog.WorkPriority,
	urgency catalog.WorkUrgency,
) error {
	if err := errors.Join(
		category.Validate(),
		workType.Validate(),
		priority.Validate(),
		urgency.Validate(),
	); err != nil {
		return err
	}
	w.category = category
	w.workType = workType
	w.priority = priority
	w.urgency = urgency
	return nil
}

func (w *WorkOrder) setStatuses(status catalog.WorkStatus, approvalStatus catalog.ApprovalStatus) error {
	if err := errors.Join(status.Validate(), approvalStatus.Validate()); err != nil {
		return err
	}
	w.status = status
	w.approvalStatus = approvalStatus
	return nil
}

func (w *WorkOrder) setProgress(percentage int, phase catalog.WorkPhase) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	if !phase.ContainsProgress(percentage) {
		minPct, maxPct := phase.ProgressBounds()
		return errs.NewValueIsOutOfRangeError("progressPercentage", percentage, minPct, maxPct)
	}
	w.progressPercentage = percentage
	w.phase = phase
	return nil
}
