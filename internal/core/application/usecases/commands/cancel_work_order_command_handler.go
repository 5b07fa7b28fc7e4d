package commands

import (
	"context"
)

// CancelWorkOrderCommandHandler cancels a work order and stamps its closure
// metadata.
type CancelWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCancelWorkOrderCommandHandler creates a handler for cancelling work orders.
func NewCancelWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation command.
func (h CancelWorkOrderCommandHandler) Handle(ctx context.Context, cmd CancelWorkOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.ActorID(), cmd.Reason(), cmd.CancelledAt()); err != nil {
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
