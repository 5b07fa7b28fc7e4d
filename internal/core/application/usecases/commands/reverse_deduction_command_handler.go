package commands

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ReverseDeductionCommandHandler undoes a posted stock deduction. The
// original record is flagged REVERSED, a compensating record with the negated
// quantity is appended, the warehouse stock and the line's used quantity are
// credited back, and the work order's actual cost drops accordingly, all in
// one transaction. Reversal stays available on closed orders; cancellation is
// a common cause of it.
type ReverseDeductionCommandHandler struct {
	uowFactory MaterialUoWFactory
	ids        kernel.IDGenerator
}

// NewReverseDeductionCommandHandler creates a handler for deduction reversal.
func NewReverseDeductionCommandHandler(uowFactory MaterialUoWFactory, ids kernel.IDGenerator) ReverseDeductionCommandHandler {
	return ReverseDeductionCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the reversal command.
func (h ReverseDeductionCommandHandler) Handle(ctx context.Context, cmd ReverseDeductionCommand) error {
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

	record, err := materialRepo.GetDeduction(ctx, cmd.DeductionID())
	if err != nil {
		return err
	}

	line, err := materialRepo.Get(ctx, record.MaterialLineID())
	if err != nil {
		return err
	}

	aggregate, err := workOrderRepo.Get(ctx, record.WorkOrderID())
	if err != nil {
		return err
	}

	stockBefore, err := stock.StockLevel(ctx, record.MaterialID(), record.LocationID())
	if err != nil {
		return err
	}

	deductor, err := services.NewStockDeductor(h.ids)
	if err != nil {
		return err
	}

	processedBy := cmd.ProcessedBy()
	reversal, err := deductor.Reverse(record, stockBefore, cmd.Reason(), &processedBy, cmd.ReversedAt())
	if err != nil {
		return err
	}

	costBefore := line.TotalActualCost()
	if err = line.RevertUse(record.QuantityDeducted()); err != nil {
		return err
	}

	if err = stock.AdjustStock(ctx, record.MaterialID(), record.LocationID(), record.QuantityDeducted()); err != nil {
		return err
	}

	newCost := aggregate.ActualCost().Sub(costBefore.Sub(line.TotalActualCost()))
	if newCost.IsNegative() {
		newCost = decimal.Zero
	}
	if err = aggregate.SetActualCost(newCost); err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, line); err != nil {
		return err
	}

	if err = materialRepo.AddDeduction(ctx, reversal); err != nil {
		return err
	}

	if err = materialRepo.UpdateDeduction(ctx, record); err != nil {
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
