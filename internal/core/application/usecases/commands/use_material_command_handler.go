package commands

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/services"
)

// UseMaterialCommandHandler consumes allocated material. It reads the stock
// level inside the transaction, lets the StockDeductor pair the line mutation
// with its audit record, adjusts the warehouse stock, and rolls the line's
// actual cost up into the work order, all atomically, so the ledger, the
// stock level, and the audit trail never diverge.
type UseMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
	ids        kernel.IDGenerator
}

// NewUseMaterialCommandHandler creates a handler for material consumption.
func NewUseMaterialCommandHandler(uowFactory MaterialUoWFactory, ids kernel.IDGenerator) UseMaterialCommandHandler {
	return UseMaterialCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the material consumption command.
func (h UseMaterialCommandHandler) Handle(ctx context.Context, cmd UseMaterialCommand) error {
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
	workOrderRepo := uow.WorkOrderRepository()
	stock := uow.StockStore()

	line, err := materialRepo.Get(ctx, cmd.MaterialLineID())
	if err != nil {
		return err
	}

	aggregate, err := workOrderRepo.Get(ctx, line.WorkOrderID())
	if err != nil {
		return err
	}
	if err = aggregate.EnsureAcceptsResources(); err != nil {
		return err
	}

	stockBefore, err := stock.StockLevel(ctx, line.MaterialID(), line.LocationID())
	if err != nil {
		return err
	}

	deductor, err := services.NewStockDeductor(h.ids)
	if err != nil {
		return err
	}

	costBefore := line.TotalActualCost()
	record, err := deductor.Deduct(line, cmd.Quantity(), stockBefore, cmd.BatchNumber(), cmd.UsedBy(), cmd.Notes(), cmd.UsedAt())
	if err != nil {
		return err
	}

	if err = stock.AdjustStock(ctx, line.MaterialID(), line.LocationID(), cmd.Quantity().Neg()); err != nil {
		return err
	}

	if err = aggregate.AddActualCost(line.TotalActualCost().Sub(costBefore)); err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, line); err != nil {
		return err
	}

	if err = materialRepo.AddDeduction(ctx, record); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
