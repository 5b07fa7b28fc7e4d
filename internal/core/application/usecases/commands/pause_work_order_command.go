package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrPauseWorkOrderCommandIsNotConstructed = errors.New(
	"PauseWorkOrderCommand must be created via NewPauseWorkOrderCommand constructor",
)

// PauseWorkOrderCommand represents a request to pause an in-progress work
// order.
type PauseWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseWorkOrderCommand creates a command to pause a work order.
func NewPauseWorkOrderCommand(workOrderID kernel.UUID) (PauseWorkOrderCommand, error) {
	command := PauseWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return PauseWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c PauseWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

func (c *PauseWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}
