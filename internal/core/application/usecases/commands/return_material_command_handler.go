package commands

import (
	"context"
)

// ReturnMaterialCommandHandler hands unconsumed allocation back to the
// warehouse. Warehouse stock is untouched: it is only deducted on use, so a
// return of allocated-but-unused material is purely a ledger operation.
type ReturnMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewReturnMaterialCommandHandler creates a handler for material returns.
func NewReturnMaterialCommandHandler(uowFactory MaterialUoWFactory) ReturnMaterialCommandHandler {
	return ReturnMaterialCommandHandler{uowFactory: uowFactory}
}

// Handle processes the return command.
func (h ReturnMaterialCommandHandler) Handle(ctx context.Context, cmd ReturnMaterialCommand) error {
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

	if err = line.Return(cmd.Quantity(), cmd.Reason()); err != nil {
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
