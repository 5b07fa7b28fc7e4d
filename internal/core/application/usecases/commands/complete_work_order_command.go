package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCompleteWorkOrderCommandIsNotConstructed = errors.New(
	"CompleteWorkOrderCommand must be created via NewCompleteWorkOrderCommand constructor",
)

// CompleteWorkOrderCommand represents an explicit completion of an
// in-progress work order, used when progress reporting is bypassed (for
// example an administrative close). Progress is forced to 100.
type CompleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID   kernel.UUID
	notes         string
	qualityRating *decimal.Decimal
	completedAt   time.Time

	guard guard.ConstructorGuard
}

// NewCompleteWorkOrderCommand creates a command to complete a work order.
// The quality rating is optional; the aggregate rejects a rating outside
// [0,10].
func NewCompleteWorkOrderCommand(
	workOrderID kernel.UUID,
	notes string,
	qualityRating *decimal.Decimal,
	completedAt time.Time,
) (CompleteWorkOrderCommand, error) {
	command := CompleteWorkOrderCommand{
		notes:         notes,
		qualityRating: qualityRating,
		completedAt:   completedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return CompleteWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c CompleteWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// Notes returns the completion notes.
func (c CompleteWorkOrderCommand) Notes() string { return c.notes }

// QualityRating returns the optional quality rating.
func (c CompleteWorkOrderCommand) QualityRating() *decimal.Decimal { return c.qualityRating }

// CompletedAt returns when the work was completed.
func (c CompleteWorkOrderCommand) CompletedAt() time.Time { return c.completedAt }

func (c *CompleteWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}
