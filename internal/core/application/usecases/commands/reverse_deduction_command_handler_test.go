package commands_test

import (
	"testing"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newDeductedLine consumes 4 of the 10 allocated units and returns the line
// together with its posted deduction record. Stock went 20 -> 16, the work
// order carries the 50.00 material cost.
func newDeductedLine(t *testing.T, aggregate *workorder.WorkOrder) (*material.MaterialLine, *material.DeductionRecord) {
	t.Helper()
	line := newAllocatedLine(t, aggregate)

	deductor, err := services.NewStockDeductor(kernel.NewRandomIDGenerator())
	require.NoError(t, err)

	record, err := deductor.Deduct(
		line, decimal.NewFromInt(4), decimal.NewFromInt(20),
		"BATCH-77", kernel.NewUUID(), "east wing run", fixtureDate,
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddActualCost(line.TotalActualCost()))
	return line, record
}

func TestReverseDeductionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	line, record := newDeductedLine(t, aggregate)

	cmd, err := commands.NewReverseDeductionCommand(
		record.ID(), kernel.NewUUID(), "posted against the wrong order", fixtureDate.Add(time.Hour),
	)
	require.NoError(t, err)

	materialRepo := new(MockMaterialRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	stock := new(MockStockStore)
	uow := new(MockMaterialUoW)

	var reversal *material.DeductionRecord
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("StockStore").Return(stock).Once(),
		materialRepo.On("GetDeduction", ctx, record.ID()).Return(record, nil).Once(),
		materialRepo.On("Get", ctx, line.ID()).Return(line, nil).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		stock.On("StockLevel", ctx, record.MaterialID(), record.LocationID()).
			Return(decimal.NewFromInt(16), nil).Once(),
		stock.On("AdjustStock", ctx, record.MaterialID(), record.LocationID(), decimal.NewFromInt(4)).
			Return(nil).Once(),
		materialRepo.On("Update", mock.Anything, line).Return(nil).Once(),
		materialRepo.On("AddDeduction", mock.Anything, mock.AnythingOfType("*material.DeductionRecord")).
			Run(func(args mock.Arguments) { reversal = args.Get(1).(*material.DeductionRecord) }).
			Return(nil).Once(),
		materialRepo.On("UpdateDeduction", mock.Anything, record).Return(nil).Once(),
		workOrderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReverseDeductionCommandHandler(factory, kernel.NewRandomIDGenerator())
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, line.UsedQuantity().IsZero())
	require.True(t, aggregate.ActualCost().IsZero())
	require.Equal(t, catalog.DeductionReversed, record.Status())
	require.NotNil(t, reversal)
	require.Equal(t, "-4", reversal.QuantityDeducted().String())
	require.Equal(t, "16", reversal.StockBefore().String())
	require.Equal(t, "20", reversal.StockAfter().String())
	require.Equal(t, catalog.DeductionAdjustment, reversal.DeductionType())

	materialRepo.AssertExpectations(t)
	workOrderRepo.AssertExpectations(t)
	stock.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReverseDeductionCommandHandler_Handle_AlreadyReversed(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	line, record := newDeductedLine(t, aggregate)
	require.NoError(t, record.MarkReversed())

	cmd, err := commands.NewReverseDeductionCommand(
		record.ID(), kernel.NewUUID(), "double click", fixtureDate.Add(time.Hour),
	)
	require.NoError(t, err)

	materialRepo := new(MockMaterialRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	stock := new(MockStockStore)
	uow := new(MockMaterialUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("StockStore").Return(stock).Once(),
		materialRepo.On("GetDeduction", ctx, record.ID()).Return(record, nil).Once(),
		materialRepo.On("Get", ctx, line.ID()).Return(line, nil).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		stock.On("StockLevel", ctx, record.MaterialID(), record.LocationID()).
			Return(decimal.NewFromInt(16), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReverseDeductionCommandHandler(factory, kernel.NewRandomIDGenerator())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, "4", line.UsedQuantity().String())

	uow.AssertExpectations(t)
}

func TestNewReverseDeductionCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewReverseDeductionCommand(
		kernel.NewUUID(), kernel.NewUUID(), "  ", fixtureDate,
	)
	require.ErrorIs(t, err, commands.ErrReasonIsRequired)
}
