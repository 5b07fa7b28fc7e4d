package commands

import (
	"context"
)

// CompleteWorkOrderCommandHandler performs the explicit completion path:
// forces the percentage to 100, stamps the actual end date, and derives the
// actual duration.
type CompleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCompleteWorkOrderCommandHandler creates a handler for completing work orders.
func NewCompleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CompleteWorkOrderCommandHandler {
	return CompleteWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the completion command.
func (h CompleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd CompleteWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	aggregate, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(cmd.Notes(), cmd.QualityRating(), cmd.CompletedAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
