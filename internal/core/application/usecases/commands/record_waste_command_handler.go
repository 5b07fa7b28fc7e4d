package commands

import (
	"context"
)

// RecordWasteCommandHandler writes off part of a line's allocation. Waste
// counts against the remaining quantity but leaves the warehouse stock alone.
type RecordWasteCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewRecordWasteCommandHandler creates a handler for waste write-offs.
func NewRecordWasteCommandHandler(uowFactory MaterialUoWFactory) RecordWasteCommandHandler {
	return RecordWasteCommandHandler{uowFactory: uowFactory}
}

// Handle processes the waste command.
func (h RecordWasteCommandHandler) Handle(ctx context.Context, cmd RecordWasteCommand) error {
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

	materialRepo := uow.MaterialRepository()

	line, err := materialRepo.Get(ctx, cmd.MaterialLineID())
	if err != nil {
		return err
	}

	aggregate, err := uow.WorkOrderRepository().Get(ctx, line.WorkOrderID())
	if err != nil {
		return err
	}
	if err = aggregate.EnsureAcceptsResources(); err != nil {
		return err
	}

	if err = line.RecordWaste(cmd.Quantity(), cmd.Reason()); err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, line); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
