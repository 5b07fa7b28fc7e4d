package commands

import (
	"context"
)

// SubmitWorkOrderCommandHandler moves a DRAFT order to PENDING so it can be
// scheduled and approved. Resubmitting a REJECTED order resets its approval
// status for a fresh decision.
type SubmitWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewSubmitWorkOrderCommandHandler creates a handler for work-order submission.
func NewSubmitWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) SubmitWorkOrderCommandHandler {
	return SubmitWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the submission command.
func (h SubmitWorkOrderCommandHandler) Handle(ctx context.Context, cmd SubmitWorkOrderCommand) error {
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

	if err = aggregate.Submit(); err != nil {
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
