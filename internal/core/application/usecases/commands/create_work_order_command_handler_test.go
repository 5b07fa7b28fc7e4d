package commands_test

import (
	"errors"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T) commands.CreateWorkOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateWorkOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Lobby lighting repair",
		"Replace the failed fixtures",
		catalog.CategoryCorrective,
		catalog.TypeLighting,
		catalog.PriorityMedium,
		catalog.UrgencyNormal,
		fixtureDate,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	validator := new(MockValidator)
	validator.On("Validate", "work_order", mock.Anything).Return(true, nil).Once()

	numbers := new(MockNumberGenerator)
	numbers.On("Next", ctx, cmd.TenantID(), cmd.RequestDate()).Return("WO2025030001", nil).Once()

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, validator, numbers)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	validator.AssertExpectations(t)
	numbers.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_OracleRejection(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	validator := new(MockValidator)
	validator.On("Validate", "work_order", mock.Anything).
		Return(false, []errs.FieldError{{Field: "title", Message: "too vague"}}).Once()

	factory := new(MockWorkOrderUoWFactory)
	numbers := new(MockNumberGenerator)

	h := commands.NewCreateWorkOrderCommandHandler(factory, validator, numbers)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValidationFailed)
	validator.AssertExpectations(t)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateWorkOrderCommand{} // not constructed properly
	h := commands.NewCreateWorkOrderCommandHandler(
		new(MockWorkOrderUoWFactory), new(MockValidator), new(MockNumberGenerator))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateWorkOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	validator := new(MockValidator)
	validator.On("Validate", "work_order", mock.Anything).Return(true, nil).Once()

	numbers := new(MockNumberGenerator)
	numbers.On("Next", ctx, cmd.TenantID(), cmd.RequestDate()).Return("WO2025030001", nil).Once()

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, validator, numbers)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
