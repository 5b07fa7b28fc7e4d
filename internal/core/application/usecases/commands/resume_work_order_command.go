package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrResumeWorkOrderCommandIsNotConstructed = errors.New(
	"ResumeWorkOrderCommand must be created via NewResumeWorkOrderCommand constructor",
)

// ResumeWorkOrderCommand represents a request to resume a paused work order.
type ResumeWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeWorkOrderCommand creates a command to resume a work order.
func NewResumeWorkOrderCommand(workOrderID kernel.UUID) (ResumeWorkOrderCommand, error) {
	command := ResumeWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return ResumeWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c ResumeWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

func (c *ResumeWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}
