package commands

import (
	"context"

	"workorders/internal/core/domain/model/material"
)

// AddMaterialLineCommandHandler attaches a new material requirement to a
// work order. Completed and cancelled orders reject new resource lines.
type AddMaterialLineCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewAddMaterialLineCommandHandler creates a handler for adding material lines.
func NewAddMaterialLineCommandHandler(uowFactory MaterialUoWFactory) AddMaterialLineCommandHandler {
	return AddMaterialLineCommandHandler{uowFactory: uowFactory}
}

// Handle processes the add-material-line command.
func (h AddMaterialLineCommandHandler) Handle(ctx context.Context, cmd AddMaterialLineCommand) error {
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

	aggregate, err := uow.WorkOrderRepository().Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureAcceptsResources(); err != nil {
		return err
	}

	line, err := material.NewMaterialLine(
		cmd.MaterialLineID(),
		aggregate.TenantID(),
		aggregate.ID(),
		cmd.MaterialID(),
		cmd.LocationID(),
		cmd.MaterialName(),
		cmd.UnitOfMeasure(),
		cmd.RequiredQuantity(),
		cmd.UnitCost(),
	)
	if err != nil {
		return err
	}

	if err = uow.MaterialRepository().Add(ctx, line); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
