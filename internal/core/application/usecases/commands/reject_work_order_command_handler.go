package commands

import (
	"context"
)

// RejectWorkOrderCommandHandler records the rejection decision and moves a
// PENDING order to REJECTED.
type RejectWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRejectWorkOrderCommandHandler creates a handler for work-order rejection.
func NewRejectWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) RejectWorkOrderCommandHandler {
	return RejectWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the rejection command.
func (h RejectWorkOrderCommandHandler) Handle(ctx context.Context, cmd RejectWorkOrderCommand) error {
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

	if err = aggregate.Reject(cmd.RejectorID(), cmd.Reason(), cmd.DecidedAt()); err != nil {
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
