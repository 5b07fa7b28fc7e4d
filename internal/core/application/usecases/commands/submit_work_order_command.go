package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrSubmitWorkOrderCommandIsNotConstructed = errors.New(
	"SubmitWorkOrderCommand must be created via NewSubmitWorkOrderCommand constructor",
)

// SubmitWorkOrderCommand represents a request to submit a DRAFT (or revised
// REJECTED) work order for approval.
type SubmitWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitWorkOrderCommand creates a command to submit a work order.
func NewSubmitWorkOrderCommand(workOrderID kernel.UUID) (SubmitWorkOrderCommand, error) {
	command := SubmitWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return SubmitWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c SubmitWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

func (c *SubmitWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}
