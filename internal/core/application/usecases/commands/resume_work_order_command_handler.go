package commands

import (
	"context"
)

// ResumeWorkOrderCommandHandler moves a PAUSED order back to IN_PROGRESS.
type ResumeWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewResumeWorkOrderCommandHandler creates a handler for resuming work orders.
func NewResumeWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ResumeWorkOrderCommandHandler {
	return ResumeWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the resume command.
func (h ResumeWorkOrderCommandHandler) Handle(ctx context.Context, cmd ResumeWorkOrderCommand) error {
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

	if err = aggregate.Resume(); err != nil {
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
