package labor

import (
	"errors"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLaborEntryIsNotConstructed is returned when a LaborEntry was not
	// created through NewLaborEntry or RestoreLaborEntry.
	ErrLaborEntryIsNotConstructed = errors.New("LaborEntry must be created via NewLaborEntry or RestoreLaborEntry constructor")
)

// LaborEntry is one immutable time record on an assignment. The line cost is
// computed once at construction:
//
//	totalCost = regularHours*hourlyRate + overtimeHours*overtimeRate
//
// Prior entries are never mutated; corrections append a new entry.
type LaborEntry struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	workOrderID  kernel.UUID
	assignmentID kernel.UUID
	workerID     kernel.UUID

	workDate     time.Time
	startTime    *time.Time
	endTime      *time.Time
	breakMinutes int

	regularHours  decimal.Decimal
	overtimeHours decimal.Decimal
	hourlyRate    decimal.Decimal
	overtimeRate  decimal.Decimal
	totalCost     decimal.Decimal

	description string

	productivityScore decimal.Decimal
	qualityScore      decimal.Decimal
	safetyScore       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLaborEntryParams carries the inputs for a new labor entry.
type NewLaborEntryParams struct {
	ID           kernel.UUID
	TenantID     kernel.UUID
	WorkOrderID  kernel.UUID
	AssignmentID kernel.UUID
	WorkerID     kernel.UUID

	WorkDate     time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes int

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal

	Description string

	ProductivityScore decimal.Decimal
	QualityScore      decimal.Decimal
	SafetyScore       decimal.Decimal
}

// NewLaborEntry creates an immutable labor entry and computes its line cost.
func NewLaborEntry(params NewLaborEntryParams) (*LaborEntry, error) {
	entry := &LaborEntry{
		workDate:    params.WorkDate,
		startTime:   params.StartTime,
		endTime:     params.EndTime,
		description: params.Description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setIdentity(params.ID, params.TenantID, params.WorkOrderID, params.AssignmentID, params.WorkerID),
		entry.setTimes(params.StartTime, params.EndTime, params.BreakMinutes),
		entry.setHours(params.RegularHours, params.OvertimeHours, params.HourlyRate, params.OvertimeRate),
		entry.setScores(params.ProductivityScore, params.QualityScore, params.SafetyScore),
	); err != nil {
		return nil, err
	}

	entry.totalCost = entry.regularHours.Mul(entry.hourlyRate).
		Add(entry.overtimeHours.Mul(entry.overtimeRate))
	return entry, nil
}

// RestoreLaborEntry reconstructs an entry from persistent storage. The cost
// is recomputed, so a stored row that violates the cost invariant cannot be
// restored silently.
func RestoreLaborEntry(params NewLaborEntryParams) (*LaborEntry, error) {
	return NewLaborEntry(params)
}

// Validate ensures the entry was built through a constructor.
func (e *LaborEntry) Validate() error {
	if e == nil {
		return ErrLaborEntryIsNotConstructed
	}
	return e.guard.Validate(ErrLaborEntryIsNotConstructed)
}

// IsEqual compares two entries by id.
func (e *LaborEntry) IsEqual(other *LaborEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *LaborEntry) ID() kernel.UUID { return e.id }

// TenantID returns the owning tenant's identifier.
func (e *LaborEntry) TenantID() kernel.UUID { return e.tenantID }

// WorkOrderID returns the work order the time was booked on.
func (e *LaborEntry) WorkOrderID() kernel.UUID { return e.workOrderID }

// AssignmentID returns the owning assignment's identifier.
func (e *LaborEntry) AssignmentID() kernel.UUID { return e.assignmentID }

// WorkerID returns who worked the hours.
func (e *LaborEntry) WorkerID() kernel.UUID { return e.workerID }

// WorkDate returns the day the hours were worked.
func (e *LaborEntry) WorkDate() time.Time { return e.workDate }

// StartTime returns when work started, or nil.
func (e *LaborEntry) StartTime() *time.Time { return e.startTime }

// EndTime returns when work ended, or nil.
func (e *LaborEntry) EndTime() *time.Time { return e.endTime }

// BreakMinutes returns the unpaid break duration.
func (e *LaborEntry) BreakMinutes() int { return e.breakMinutes }

// RegularHours returns the regular hours worked.
func (e *LaborEntry) RegularHours() decimal.Decimal { return e.regularHours }

// OvertimeHours returns the overtime hours worked.
func (e *LaborEntry) OvertimeHours() decimal.Decimal { return e.overtimeHours }

// HourlyRate returns the regular rate.
func (e *LaborEntry) HourlyRate() decimal.Decimal { return e.hourlyRate }

// OvertimeRate returns the overtime rate.
func (e *LaborEntry) OvertimeRate() decimal.Decimal { return e.overtimeRate }

// TotalCost returns the computed line cost.
func (e *LaborEntry) TotalCost() decimal.Decimal { return e.totalCost }

// Description returns the free-text work description.
func (e *LaborEntry) Description() string { return e.description }

// ProductivityScore returns the productivity score.
func (e *LaborEntry) ProductivityScore() decimal.Decimal { return e.productivityScore }

// QualityScore returns the quality score.
func (e *LaborEntry) QualityScore() decimal.Decimal { return e.qualityScore }

// SafetyScore returns the safety score.
func (e *LaborEntry) SafetyScore() decimal.Decimal { return e.safetyScore }

// TotalHours returns regularHours + overtimeHours.
func (e *LaborEntry) TotalHours() decimal.Decimal {
	return e.regularHours.Add(e.overtimeHours)
}

func (e *LaborEntry) setIdentity(id, tenantID, workOrderID, assignmentID, workerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		workOrderID.Validate(),
		assignmentID.Validate(),
		workerID.Validate(),
	); err != nil {
		return err
	}
	e.id = id
	e.tenantID = tenantID
	e.workOrderID = workOrderID
	e.assignmentID = assignmentID
	e.workerID = workerID
	return nil
}

func (e *LaborEntry) setTimes(start, end *time.Time, breakMinutes int) error {
	if start != nil && end != nil && end.Before(*start) {
		return errs.NewValueIsInvalidErrorWithCause("endTime",
			fmt.Errorf("end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	if breakMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("breakMinutes",
			fmt.Errorf("%d is negative", breakMinutes))
	}
	e.breakMinutes = breakMinutes
	return nil
}

func (e *LaborEntry) setHours(regular, overtime, hourlyRate, overtimeRate decimal.Decimal) error {
	for name, v := range map[string]decimal.Decimal{
		"regularHours":  regular,
		"overtimeHours": overtime,
		"hourlyRate":    hourlyRate,
		"overtimeRate":  overtimeRate,
	} {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
		}
	}
	if regular.IsZero() && overtime.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("regularHours",
			errors.New("an entry must book at least some time"))
	}
	e.regularHours = regular
	e.overtimeHours = overtime
	e.hourlyRate = hourlyRate
	e.overtimeRate = overtimeRate
	return nil
}

func (e *LaborEntry) setScores(productivity, quality, safety decimal.Decimal) error {
	for name, score := range map[string]decimal.Decimal{
		"productivityScore": productivity,
		"qualityScore":      quality,
		"safetyScore":       safety,
	} {
		if score.IsNegative() || score.GreaterThan(maxScore) {
			return errs.NewValueIsOutOfRangeError(name, score.String(), 0, 10)
		}
	}
	e.productivityScore = productivity
	e.qualityScore = quality
	e.safetyScore = safety
	return nil
}
