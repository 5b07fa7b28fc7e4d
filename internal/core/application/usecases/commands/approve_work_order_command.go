package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrApproveWorkOrderCommandIsNotConstructed = errors.New(
	"ApproveWorkOrderCommand must be created via NewApproveWorkOrderCommand constructor",
)

// ApproveWorkOrderCommand represents an approval decision on a pending work
// order.
type ApproveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	approverID  kernel.UUID
	notes       string
	decidedAt   time.Time

	guard guard.ConstructorGuard
}

// NewApproveWorkOrderCommand creates a command to approve a work order.
func NewApproveWorkOrderCommand(
	workOrderID kernel.UUID,
	approverID kernel.UUID,
	notes string,
	decidedAt time.Time,
) (ApproveWorkOrderCommand, error) {
	command := ApproveWorkOrderCommand{
		notes:     notes,
		decidedAt: decidedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setApproverID(approverID),
	); err != nil {
		return ApproveWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c ApproveWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ApproverID returns who approved.
func (c ApproveWorkOrderCommand) ApproverID() kernel.UUID { return c.approverID }

// Notes returns the approval notes.
func (c ApproveWorkOrderCommand) Notes() string { return c.notes }

// DecidedAt returns when the decision was made.
func (c ApproveWorkOrderCommand) DecidedAt() time.Time { return c.decidedAt }

func (c *ApproveWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *ApproveWorkOrderCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}
