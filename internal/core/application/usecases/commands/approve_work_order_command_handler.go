package commands

import (
	"context"
)

// ApproveWorkOrderCommandHandler records the approval decision and advances a
// PENDING order to APPROVED.
type ApproveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewApproveWorkOrderCommandHandler creates a handler for work-order approval.
func NewApproveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ApproveWorkOrderCommandHandler {
	return ApproveWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the approval command.
func (h ApproveWorkOrderCommandHandler) Handle(ctx context.Context, cmd ApproveWorkOrderCommand) error {
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

	if err = aggregate.Approve(cmd.ApproverID(), cmd.Notes(), cmd.DecidedAt()); err != nil {
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
