package commands

import (
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
	"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
)

// CancelWorkOrderCommand represents a request to cancel a work order from
// any non-terminal status. The reason is mandatory and ends up in the
// closure metadata.
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	actorID     kernel.UUID
	reason      string
	cancelledAt time.Time

	guard guard.ConstructorGuard
}

// NewCancelWorkOrderCommand creates a command to cancel a work order.
func NewCancelWorkOrderCommand(
	workOrderID kernel.UUID,
	actorID kernel.UUID,
	reason string,
	cancelledAt time.Time,
) (CancelWorkOrderCommand, error) {
	command := CancelWorkOrderCommand{
		cancelledAt: cancelledAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setActorID(actorID),
		command.setReason(reason),
	); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c CancelWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ActorID returns who cancels the order.
func (c CancelWorkOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the cancellation reason.
func (c CancelWorkOrderCommand) Reason() string { return c.reason }

// CancelledAt returns when the order was cancelled.
func (c CancelWorkOrderCommand) CancelledAt() time.Time { return c.cancelledAt }

func (c *CancelWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *CancelWorkOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *CancelWorkOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
