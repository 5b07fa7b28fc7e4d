package commands

import (
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrRejectWorkOrderCommandIsNotConstructed = errors.New(
		"RejectWorkOrderCommand must be created via NewRejectWorkOrderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// RejectWorkOrderCommand represents a rejection decision on a pending work
// order. The reason is mandatory; a rejected order can be revised and
// resubmitted.
type RejectWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	rejectorID  kernel.UUID
	reason      string
	decidedAt   time.Time

	guard guard.ConstructorGuard
}

// NewRejectWorkOrderCommand creates a command to reject a work order.
func NewRejectWorkOrderCommand(
	workOrderID kernel.UUID,
	rejectorID kernel.UUID,
	reason string,
	decidedAt time.Time,
) (RejectWorkOrderCommand, error) {
	command := RejectWorkOrderCommand{
		decidedAt: decidedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setRejectorID(rejectorID),
		command.setReason(reason),
	); err != nil {
		return RejectWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c RejectWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// RejectorID returns who rejected.
func (c RejectWorkOrderCommand) RejectorID() kernel.UUID { return c.rejectorID }

// Reason returns the rejection reason.
func (c RejectWorkOrderCommand) Reason() string { return c.reason }

// DecidedAt returns when the decision was made.
func (c RejectWorkOrderCommand) DecidedAt() time.Time { return c.decidedAt }

func (c *RejectWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *RejectWorkOrderCommand) setRejectorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.rejectorID = id
	return nil
}

func (c *RejectWorkOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
