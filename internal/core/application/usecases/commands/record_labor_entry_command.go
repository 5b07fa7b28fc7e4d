package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordLaborEntryCommandIsNotConstructed = errors.New(
		"RecordLaborEntryCommand must be created via NewRecordLaborEntryCommand constructor",
	)
	ErrNoTimeWorked = errors.New("regularHours and overtimeHours must not both be 0")
)

// RecordLaborEntryCommandParams carries the inputs for a single day's labor
// record against an assignment. Hour, rate, time window, and score checks
// live in the labor entry itself; the command rejects only what can never be
// valid regardless of assignment state.
type RecordLaborEntryCommandParams struct {
	AssignmentID kernel.UUID

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

// RecordLaborEntryCommand represents a request to append a labor entry to an
// assignment's timesheet.
type RecordLaborEntryCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	workDate     time.Time
	startTime    *time.Time
	endTime      *time.Time
	breakMinutes int

	regularHours  decimal.Decimal
	overtimeHours decimal.Decimal
	hourlyRate    decimal.Decimal
	overtimeRate  decimal.Decimal

	description string

	productivityScore decimal.Decimal
	qualityScore      decimal.Decimal
	safetyScore       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordLaborEntryCommand creates a command to record a labor entry.
func NewRecordLaborEntryCommand(params RecordLaborEntryCommandParams) (RecordLaborEntryCommand, error) {
	command := RecordLaborEntryCommand{
		workDate:          params.WorkDate,
		startTime:         params.StartTime,
		endTime:           params.EndTime,
		breakMinutes:      params.BreakMinutes,
		hourlyRate:        params.HourlyRate,
		overtimeRate:      params.OvertimeRate,
		description:       params.Description,
		productivityScore: params.ProductivityScore,
		qualityScore:      params.QualityScore,
		safetyScore:       params.SafetyScore,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(params.AssignmentID),
		command.setHours(params.RegularHours, params.OvertimeHours),
	); err != nil {
		return RecordLaborEntryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLaborEntryCommand) Validate() error {
	return c.guard.Validate(ErrRecordLaborEntryCommandIsNotConstructed)
}

// AssignmentID returns the target assignment's identifier.
func (c RecordLaborEntryCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// WorkDate returns the day the hours were worked.
func (c RecordLaborEntryCommand) WorkDate() time.Time { return c.workDate }

// StartTime returns the clock-in time, or nil.
func (c RecordLaborEntryCommand) StartTime() *time.Time { return c.startTime }

// EndTime returns the clock-out time, or nil.
func (c RecordLaborEntryCommand) EndTime() *time.Time { return c.endTime }

// BreakMinutes returns the unpaid break minutes.
func (c RecordLaborEntryCommand) BreakMinutes() int { return c.breakMinutes }

// RegularHours returns the regular hours worked.
func (c RecordLaborEntryCommand) RegularHours() decimal.Decimal { return c.regularHours }

// OvertimeHours returns the overtime hours worked.
func (c RecordLaborEntryCommand) OvertimeHours() decimal.Decimal { return c.overtimeHours }

// HourlyRate returns the regular hourly rate.
func (c RecordLaborEntryCommand) HourlyRate() decimal.Decimal { return c.hourlyRate }

// OvertimeRate returns the overtime hourly rate.
func (c RecordLaborEntryCommand) OvertimeRate() decimal.Decimal { return c.overtimeRate }

// Description returns the free-text work description.
func (c RecordLaborEntryCommand) Description() string { return c.description }

// ProductivityScore returns the productivity score.
func (c RecordLaborEntryCommand) ProductivityScore() decimal.Decimal { return c.productivityScore }

// QualityScore returns the quality score.
func (c RecordLaborEntryCommand) QualityScore() decimal.Decimal { return c.qualityScore }

// SafetyScore returns the safety score.
func (c RecordLaborEntryCommand) SafetyScore() decimal.Decimal { return c.safetyScore }

func (c *RecordLaborEntryCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}

func (c *RecordLaborEntryCommand) setHours(regular, overtime decimal.Decimal) error {
	if regular.IsZero() && overtime.IsZero() {
		return ErrNoTimeWorked
	}
	c.regularHours = regular
	c.overtimeHours = overtime
	return nil
}
