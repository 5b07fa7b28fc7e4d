package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProgressCommand(t *testing.T, workOrderID kernel.UUID, percentage int, hours string) commands.RecordProgressCommand {
	t.Helper()
	cmd, err := commands.NewRecordProgressCommand(
		workOrderID,
		kernel.NewUUID(),
		percentage,
		catalog.WorkPhaseUnknown,
		decimal.RequireFromString(hours),
		"fixtures replaced in the east wing",
		"west wing remaining",
		"",
		fixtureDate,
	)
	require.NoError(t, err)
	return cmd
}

func latestEntryFixture(t *testing.T, aggregate *workorder.WorkOrder, percentage int, cumulative string) *progress.ProgressEntry {
	t.Helper()
	entry, err := progress.NewProgressEntry(progress.NewProgressEntryParams{
		ID:           kernel.NewUUID(),
		TenantID:     aggregate.TenantID(),
		WorkOrderID:  aggregate.ID(),
		ReportedBy:   kernel.NewUUID(),
		ProgressDate: fixtureDate,
		Percentage:   percentage,
		Phase:        catalog.WorkPhaseUnknown,
		HoursWorked:  decimal.RequireFromString(cumulative),
	})
	require.NoError(t, err)
	return entry
}

func TestRecordProgressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	cmd := newProgressCommand(t, aggregate.ID(), 45, "3.5")

	latest := latestEntryFixture(t, aggregate, 30, "12")

	workOrderRepo := new(MockWorkOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockProgressUoW)

	var recorded *progress.ProgressEntry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		progressRepo.On("GetLatestByWorkOrder", ctx, aggregate.ID()).Return(latest, nil).Once(),
		progressRepo.On("Add", mock.Anything, mock.AnythingOfType("*progress.ProgressEntry")).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(*progress.ProgressEntry) }).
			Return(nil).Once(),
		workOrderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordProgressCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, recorded)
	require.Equal(t, 45, recorded.Percentage())
	require.Equal(t, "15.5", recorded.CumulativeHours().String())
	require.Equal(t, 45, aggregate.ProgressPercentage())

	workOrderRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordProgressCommandHandler_Handle_FirstReport(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	cmd := newProgressCommand(t, aggregate.ID(), 10, "2")

	workOrderRepo := new(MockWorkOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockProgressUoW)

	var recorded *progress.ProgressEntry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		progressRepo.On("GetLatestByWorkOrder", ctx, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("workOrderID", aggregate.ID())).Once(),
		progressRepo.On("Add", mock.Anything, mock.AnythingOfType("*progress.ProgressEntry")).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(*progress.ProgressEntry) }).
			Return(nil).Once(),
		workOrderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordProgressCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, recorded)
	require.Equal(t, "2", recorded.CumulativeHours().String())

	workOrderRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordProgressCommandHandler_Handle_DecreasingPercentage(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftWorkOrder(t)
	cmd := newProgressCommand(t, aggregate.ID(), 45, "3.5")

	latest := latestEntryFixture(t, aggregate, 60, "20")

	workOrderRepo := new(MockWorkOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockProgressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		workOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		progressRepo.On("GetLatestByWorkOrder", ctx, aggregate.ID()).Return(latest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordProgressCommandHandler(factory, kernel.NewRandomIDGenerator())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	workOrderRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
