package commands

import (
	"context"
)

// StartWorkOrderCommandHandler moves a SCHEDULED or APPROVED order into
// IN_PROGRESS and stamps the actual start date on the first start.
type StartWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewStartWorkOrderCommandHandler creates a handler for starting work orders.
func NewStartWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) StartWorkOrderCommandHandler {
	return StartWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the start command.
func (h StartWorkOrderCommandHandler) Handle(ctx context.Context, cmd StartWorkOrderCommand) error {
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

	if err = aggregate.Start(cmd.StartedAt()); err != nil {
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
