package commands_test

import (
	"context"
	"errors"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/core/domain/model/progress"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}
func (m *MockWorkOrderRepository) GetByNumber(_ context.Context, _ kernel.UUID, _ string) (*workorder.WorkOrder, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockWorkOrderRepository) GetAllOpen(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, line *material.MaterialLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockMaterialRepository) Update(ctx context.Context, line *material.MaterialLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.MaterialLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.MaterialLine), args.Error(1)
}
func (m *MockMaterialRepository) GetByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*material.MaterialLine, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*material.MaterialLine), args.Error(1)
}
func (m *MockMaterialRepository) AddDeduction(ctx context.Context, record *material.DeductionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockMaterialRepository) UpdateDeduction(ctx context.Context, record *material.DeductionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockMaterialRepository) GetDeduction(ctx context.Context, id kernel.UUID) (*material.DeductionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.DeductionRecord), args.Error(1)
}
func (m *MockMaterialRepository) GetDeductionsByWorkOrder(_ context.Context, _ kernel.UUID) ([]*material.DeductionRecord, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, assignment *labor.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}
func (m *MockAssignmentRepository) Update(ctx context.Context, assignment *labor.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}
func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labor.Assignment), args.Error(1)
}
func (m *MockAssignmentRepository) GetByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*labor.Assignment, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*labor.Assignment), args.Error(1)
}
func (m *MockAssignmentRepository) AddLaborEntry(ctx context.Context, entry *labor.LaborEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAssignmentRepository) GetLaborEntriesByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]labor.RollupEntry, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]labor.RollupEntry), args.Error(1)
}

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) Add(ctx context.Context, entry *progress.ProgressEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockProgressRepository) Get(_ context.Context, _ kernel.UUID) (*progress.ProgressEntry, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProgressRepository) GetLatestByWorkOrder(ctx context.Context, workOrderID kernel.UUID) (*progress.ProgressEntry, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progress.ProgressEntry), args.Error(1)
}
func (m *MockProgressRepository) GetByWorkOrder(_ context.Context, _ kernel.UUID) ([]*progress.ProgressEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStockStore struct{ mock.Mock }

func (m *MockStockStore) StockLevel(ctx context.Context, materialID, locationID kernel.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, materialID, locationID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockStockStore) AdjustStock(ctx context.Context, materialID, locationID kernel.UUID, delta decimal.Decimal) error {
	args := m.Called(ctx, materialID, locationID, delta)
	return args.Error(0)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockMaterialUoW struct{ mock.Mock }

func (m *MockMaterialUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMaterialUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMaterialUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMaterialUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}
func (m *MockMaterialUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}
func (m *MockMaterialUoW) StockStore() ports.StockStore {
	args := m.Called()
	return args.Get(0).(ports.StockStore)
}

type MockMaterialUoWFactory struct{ mock.Mock }

func (m *MockMaterialUoWFactory) Create() commands.MaterialUoW {
	args := m.Called()
	return args.Get(0).(commands.MaterialUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}
func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockProgressUoW struct{ mock.Mock }

func (m *MockProgressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProgressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProgressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProgressUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}
func (m *MockProgressUoW) ProgressRepository() ports.ProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressRepository)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.ProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.ProgressUoW)
}

type MockCostingUoW struct{ mock.Mock }

func (m *MockCostingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCostingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCostingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCostingUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}
func (m *MockCostingUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}
func (m *MockCostingUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockCostingUoWFactory struct{ mock.Mock }

func (m *MockCostingUoWFactory) Create() commands.CostingUoW {
	args := m.Called()
	return args.Get(0).(commands.CostingUoW)
}

type MockValidator struct{ mock.Mock }

func (m *MockValidator) Validate(entityType string, fields map[string]any) (bool, []errs.FieldError) {
	args := m.Called(entityType, fields)
	if args.Get(1) == nil {
		return args.Bool(0), nil
	}
	return args.Bool(0), args.Get(1).([]errs.FieldError)
}

type MockNumberGenerator struct{ mock.Mock }

func (m *MockNumberGenerator) Next(ctx context.Context, tenantID kernel.UUID, at time.Time) (string, error) {
	args := m.Called(ctx, tenantID, at)
	return args.String(0), args.Error(1)
}
