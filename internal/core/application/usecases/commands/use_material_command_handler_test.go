package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUseCommand(t *testing.T, lineID kernel.UUID, quantity string) commands.UseMaterialCommand {
	t.Helper()
	cmd, err := commands.NewUseMaterialCommand(
		lineID,
		decimal.RequireFromString(quantity),
		kernel.NewUUID(),
		"BATCH-77",
		"east wing run",
		fixtureDate,
	)
	require.NoError(t, err)
	return cmd
}

func TestUseMaterialCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	line := newAllocatedLine(t, aggregate)
	cmd := newUseCommand(t, line.ID(), "4")

	materialRepo := new(MockMaterialRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	stock := new(MockStockStore)
	uow := new(MockMaterialUoW)

	var recorded *material.DeductionRecord
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("StockStore").Return(stock).Once(),
		materialRepo.On("Get", ctx, line.ID()).Return(line, nil).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		stock.On("StockLevel", ctx, line.MaterialID(), line.LocationID()).
			Return(decimal.NewFromInt(20), nil).Once(),
		stock.On("AdjustStock", ctx, line.MaterialID(), line.LocationID(), decimal.NewFromInt(-4)).
			Return(nil).Once(),
		materialRepo.On("Update", mock.Anything, line).Return(nil).Once(),
		materialRepo.On("AddDeduction", mock.Anything, mock.AnythingOfType("*material.DeductionRecord")).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(*material.DeductionRecord) }).
			Return(nil).Once(),
		workOrderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUseMaterialCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, "4", line.UsedQuantity().String())
	require.Equal(t, "50", aggregate.ActualCost().String())
	require.NotNil(t, recorded)
	require.Equal(t, "4", recorded.QuantityDeducted().String())
	require.Equal(t, "20", recorded.StockBefore().String())
	require.Equal(t, "16", recorded.StockAfter().String())

	materialRepo.AssertExpectations(t)
	workOrderRepo.AssertExpectations(t)
	stock.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUseMaterialCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	line := newAllocatedLine(t, aggregate)
	cmd := newUseCommand(t, line.ID(), "4")

	materialRepo := new(MockMaterialRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	stock := new(MockStockStore)
	uow := new(MockMaterialUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("StockStore").Return(stock).Once(),
		materialRepo.On("Get", ctx, line.ID()).Return(line, nil).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		stock.On("StockLevel", ctx, line.MaterialID(), line.LocationID()).
			Return(decimal.NewFromInt(3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUseMaterialCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
	require.True(t, line.UsedQuantity().IsZero())

	stock.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUseMaterialCommandHandler_Handle_TerminalWorkOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	line := newAllocatedLine(t, aggregate)
	require.NoError(t, aggregate.Cancel(kernel.NewUUID(), "duplicate request", fixtureDate))
	cmd := newUseCommand(t, line.ID(), "4")

	materialRepo := new(MockMaterialRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	stock := new(MockStockStore)
	uow := new(MockMaterialUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("StockStore").Return(stock).Once(),
		materialRepo.On("Get", ctx, line.ID()).Return(line, nil).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUseMaterialCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	uow.AssertExpectations(t)
}
