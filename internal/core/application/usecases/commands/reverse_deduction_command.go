package commands

import (
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrReverseDeductionCommandIsNotConstructed = errors.New(
	"ReverseDeductionCommand must be created via NewReverseDeductionCommand constructor",
)

// ReverseDeductionCommand represents a request to undo a posted stock
// deduction.
type ReverseDeductionCommand struct { //nolint:recvcheck //using for validation
	deductionID kernel.UUID
	processedBy kernel.UUID
	reason      string
	reversedAt  time.Time

	guard guard.ConstructorGuard
}

// NewReverseDeductionCommand creates a command to reverse a deduction. The
// reason is mandatory.
func NewReverseDeductionCommand(
	deductionID kernel.UUID,
	processedBy kernel.UUID,
	reason string,
	reversedAt time.Time,
) (ReverseDeductionCommand, error) {
	command := ReverseDeductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeductionID(deductionID),
		command.setProcessedBy(processedBy),
		command.setReason(reason),
		command.setReversedAt(reversedAt),
	); err != nil {
		return ReverseDeductionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReverseDeductionCommand) Validate() error {
	return c.guard.Validate(ErrReverseDeductionCommandIsNotConstructed)
}

// DeductionID returns the identifier of the record to reverse.
func (c ReverseDeductionCommand) DeductionID() kernel.UUID { return c.deductionID }

// ProcessedBy returns who ordered the reversal.
func (c ReverseDeductionCommand) ProcessedBy() kernel.UUID { return c.processedBy }

// Reason returns the reversal reason.
func (c ReverseDeductionCommand) Reason() string { return c.reason }

// ReversedAt returns when the reversal takes effect.
func (c ReverseDeductionCommand) ReversedAt() time.Time { return c.reversedAt }

func (c *ReverseDeductionCommand) setDeductionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deductionID = id
	return nil
}

func (c *ReverseDeductionCommand) setProcessedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.processedBy = id
	return nil
}

func (c *ReverseDeductionCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}

func (c *ReverseDeductionCommand) setReversedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("reversedAt")
	}
	c.reversedAt = at
	return nil
}
