package commands

import (
	"context"
)

// AllocateMaterialCommandHandler reserves a quantity of a material line for
// consumption. The target work order must still accept resource operations.
type AllocateMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewAllocateMaterialCommandHandler creates a handler for material allocation.
func NewAllocateMaterialCommandHandler(uowFactory MaterialUoWFactory) AllocateMaterialCommandHandler {
	return AllocateMaterialCommandHandler{uowFactory: uowFactory}
}

// Handle processes the allocation command.
func (h AllocateMaterialCommandHandler) Handle(ctx context.Context, cmd AllocateMaterialCommand) error {
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

	if err = line.Allocate(cmd.Quantity()); err != nil {
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
