package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordProgressCommandIsNotConstructed = errors.New(
		"RecordProgressCommand must be created via NewRecordProgressCommand constructor",
	)
	ErrHoursWorkedIsNegative = errors.New("hoursWorked must not be negative")
)

// RecordProgressCommand represents one progress report on a work order: the
// new percentage, optionally an explicit phase, the hours spent, and the
// narrative of what was done, what remains, and what went wrong.
type RecordProgressCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	reportedBy  kernel.UUID
	percentage  int
	// phase may be left unknown to have it inferred from the percentage.
	phase         catalog.WorkPhase
	hoursWorked   decimal.Decimal
	workCompleted string
	workRemaining string
	issues        string
	reportedAt    time.Time

	guard guard.ConstructorGuard
}

// NewRecordProgressCommand creates a command to report progress.
func NewRecordProgressCommand(
	workOrderID kernel.UUID,
	reportedBy kernel.UUID,
	percentage int,
	phase catalog.WorkPhase,
	hoursWorked decimal.Decimal,
	workCompleted string,
	workRemaining string,
	issues string,
	reportedAt time.Time,
) (RecordProgressCommand, error) {
	command := RecordProgressCommand{
		phase:         phase,
		workCompleted: workCompleted,
		workRemaining: workRemaining,
		issues:        issues,
		reportedAt:    reportedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setReportedBy(reportedBy),
		command.setPercentage(percentage),
		command.setHoursWorked(hoursWorked),
	); err != nil {
		return RecordProgressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordProgressCommand) Validate() error {
	return c.guard.Validate(ErrRecordProgressCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c RecordProgressCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ReportedBy returns who files the report.
func (c RecordProgressCommand) ReportedBy() kernel.UUID { return c.reportedBy }

// Percentage returns the reported progress percentage.
func (c RecordProgressCommand) Percentage() int { return c.percentage }

// Phase returns the reported phase, possibly unknown.
func (c RecordProgressCommand) Phase() catalog.WorkPhase { return c.phase }

// HoursWorked returns the hours spent since the last report.
func (c RecordProgressCommand) HoursWorked() decimal.Decimal { return c.hoursWorked }

// WorkCompleted returns the narrative of finished work.
func (c RecordProgressCommand) WorkCompleted() string { return c.workCompleted }

// WorkRemaining returns the narrative of outstanding work.
func (c RecordProgressCommand) WorkRemaining() string { return c.workRemaining }

// Issues returns the issues encountered, if any.
func (c RecordProgressCommand) Issues() string { return c.issues }

// ReportedAt returns the report timestamp.
func (c RecordProgressCommand) ReportedAt() time.Time { return c.reportedAt }

func (c *RecordProgressCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *RecordProgressCommand) setReportedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reportedBy = id
	return nil
}

func (c *RecordProgressCommand) setPercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("progressPercentage", percentage, 0, 100)
	}
	c.percentage = percentage
	return nil
}

func (c *RecordProgressCommand) setHoursWorked(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return ErrHoursWorkedIsNegative
	}
	c.hoursWorked = hours
	return nil
}
