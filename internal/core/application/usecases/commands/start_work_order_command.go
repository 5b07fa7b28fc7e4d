package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrStartWorkOrderCommandIsNotConstructed = errors.New(
	"StartWorkOrderCommand must be created via NewStartWorkOrderCommand constructor",
)

// StartWorkOrderCommand represents a request to begin execution of a
// scheduled or approved work order.
type StartWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	startedAt   time.Time

	guard guard.ConstructorGuard
}

// NewStartWorkOrderCommand creates a command to start a work order.
func NewStartWorkOrderCommand(workOrderID kernel.UUID, startedAt time.Time) (StartWorkOrderCommand, error) {
	command := StartWorkOrderCommand{
		startedAt: startedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return StartWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c StartWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// StartedAt returns when execution began.
func (c StartWorkOrderCommand) StartedAt() time.Time { return c.startedAt }

func (c *StartWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}
