package commands

import (
	"context"

	"workorders/internal/core/domain/model/labor"

	"github.com/shopspring/decimal"
)

// ReconcileCostsCommandHandler recomputes the actual cost of every open work
// order from its owning ledgers. The material side is the sum of each line's
// actual spend, the labor side is the rollup of the order's labor entries;
// the order is only rewritten when the stored figure differs from the
// recomputed one.
type ReconcileCostsCommandHandler struct {
	uowFactory CostingUoWFactory
}

// NewReconcileCostsCommandHandler creates a handler for the cost
// reconciliation sweep.
func NewReconcileCostsCommandHandler(uowFactory CostingUoWFactory) ReconcileCostsCommandHandler {
	return ReconcileCostsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the reconciliation sweep command.
func (h ReconcileCostsCommandHandler) Handle(ctx context.Context, cmd ReconcileCostsCommand) error {
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

	workOrderRepo := uow.WorkOrderRepository()
	materialRepo := uow.MaterialRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregates, err := workOrderRepo.GetAllOpen(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		lines, err := materialRepo.GetByWorkOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}

		materialCost := decimal.Zero
		for _, line := range lines {
			materialCost = materialCost.Add(line.TotalActualCost())
		}

		entries, err := assignmentRepo.GetLaborEntriesByWorkOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}

		rollup := labor.Rollup(aggregate.ID(), entries)

		expected := materialCost.Add(rollup.TotalLaborCost)
		if aggregate.ActualCost().Equal(expected) {
			continue
		}

		if err = aggregate.SetActualCost(expected); err != nil {
			return err
		}

		if err = workOrderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
