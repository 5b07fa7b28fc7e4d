package commands

import (
	"context"
)

// PauseWorkOrderCommandHandler moves an IN_PROGRESS order to PAUSED.
type PauseWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewPauseWorkOrderCommandHandler creates a handler for pausing work orders.
func NewPauseWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) PauseWorkOrderCommandHandler {
	return PauseWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the pause command.
func (h PauseWorkOrderCommandHandler) Handle(ctx context.Context, cmd PauseWorkOrderCommand) error {
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

	if err = aggregate.Pause(); err != nil {
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
