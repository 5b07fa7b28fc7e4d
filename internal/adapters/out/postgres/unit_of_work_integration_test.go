package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/assignmentrepo"
	"workorders/internal/adapters/out/postgres/materialrepo"
	"workorders/internal/adapters/out/postgres/numbergen"
	"workorders/internal/adapters/out/postgres/progressrepo"
	"workorders/internal/adapters/out/postgres/stockstore"
	"workorders/internal/adapters/out/postgres/workorderrepo"
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&materialrepo.MaterialLineDTO{},
		&materialrepo.DeductionRecordDTO{},
		&assignmentrepo.AssignmentDTO{},
		&assignmentrepo.LaborEntryDTO{},
		&progressrepo.ProgressEntryDTO{},
		&stockstore.StockLevelDTO{},
		&numbergen.CounterDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE work_orders, material_lines, deduction_records,
		assignments, labor_entries, progress_entries, stock_levels, work_order_counters`).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.WorkOrderRepository(), "First instance should provide work-order repository")
	suite.NotNil(uow1.MaterialRepository(), "First instance should provide material repository")
	suite.NotNil(uow2.AssignmentRepository(), "Second instance should provide assignment repository")
	suite.NotNil(uow2.ProgressRepository(), "Second instance should provide progress repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_WorkOrderRoundTrip verifies a work order written within a
// transaction is restored field-for-field by a later read.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkOrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestWorkOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.WorkOrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().WorkOrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
	suite.Equal(aggregate.Number(), restored.Number())
	suite.Equal(aggregate.Title(), restored.Title())
	suite.Equal(catalog.Draft, restored.Status())
	suite.Equal(catalog.Planning, restored.Phase())
	suite.Equal(1, restored.Version())
}

// TestUnitOfWork_UpdateBumpsVersion verifies the optimistic-lock column moves
// with every update.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateBumpsVersion() {
	ctx := context.Background()

	aggregate := createTestWorkOrder(suite.T())
	repo := suite.factory.Create().WorkOrderRepository()

	err := repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = aggregate.Submit()
	suite.Require().NoError(err)
	err = repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(catalog.Pending, restored.Status())
	suite.Equal(2, restored.Version())
}

// TestUnitOfWork_ConcurrentModification verifies a writer holding a stale
// version loses the race with a typed error rather than overwriting.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentModification() {
	ctx := context.Background()

	aggregate := createTestWorkOrder(suite.T())
	repo := suite.factory.Create().WorkOrderRepository()

	err := repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	first, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = first.Submit()
	suite.Require().NoError(err)
	err = repo.Update(ctx, first)
	suite.Require().NoError(err)

	err = second.Submit()
	suite.Require().NoError(err)
	err = repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

// TestUnitOfWork_MaterialUsageTransaction verifies the material-line write,
// the deduction append, and the stock adjustment land atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MaterialUsageTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestWorkOrder(suite.T())
	line := createTestMaterialLine(suite.T(), aggregate)
	seedStock(suite.T(), suite.db, line, decimal.NewFromInt(20))

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.WorkOrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)
	err = uow.MaterialRepository().Add(ctx, line)
	suite.Require().NoError(err)

	stockBefore, err := uow.StockStore().StockLevel(ctx, line.MaterialID(), line.LocationID())
	suite.Require().NoError(err)

	usedQty := decimal.NewFromInt(4)
	actor := kernel.NewUUID()
	err = line.Use(usedQty, actor, "fitted in unit 4B", time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.MaterialRepository().Update(ctx, line)
	suite.Require().NoError(err)

	record, err := material.NewDeductionRecord(material.NewDeductionRecordParams{
		ID:               kernel.NewUUID(),
		TenantID:         line.TenantID(),
		WorkOrderID:      aggregate.ID(),
		MaterialLineID:   line.ID(),
		MaterialID:       line.MaterialID(),
		LocationID:       line.LocationID(),
		DeductionDate:    time.Now().UTC(),
		QuantityDeducted: usedQty,
		StockBefore:      stockBefore,
		StockAfter:       stockBefore.Sub(usedQty),
		DeductionType:    catalog.DeductionWorkOrder,
		DeductionReason:  "material used on work order",
		IsAutomatic:      true,
		ProcessedBy:      &actor,
		Status:           catalog.DeductionCompleted,
	})
	suite.Require().NoError(err)
	err = uow.MaterialRepository().AddDeduction(ctx, record)
	suite.Require().NoError(err)

	err = uow.StockStore().AdjustStock(ctx, line.MaterialID(), line.LocationID(), usedQty.Neg())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	restoredLine, err := newUow.MaterialRepository().Get(ctx, line.ID())
	suite.Require().NoError(err)
	suite.True(restoredLine.UsedQuantity().Equal(usedQty))
	suite.Equal(catalog.MaterialUsed, restoredLine.Status())

	history, err := newUow.MaterialRepository().GetDeductionsByWorkOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.True(history[0].StockBefore().Equal(decimal.NewFromInt(20)))
	suite.True(history[0].StockAfter().Equal(decimal.NewFromInt(16)))

	level, err := newUow.StockStore().StockLevel(ctx, line.MaterialID(), line.LocationID())
	suite.Require().NoError(err)
	suite.True(level.Equal(decimal.NewFromInt(16)))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestWorkOrder(suite.T())
	line := createTestMaterialLine(suite.T(), aggregate)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.WorkOrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)
	err = uow.MaterialRepository().Add(ctx, line)
	suite.Require().NoError(err)

	_, err = uow.WorkOrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.WorkOrderRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err, "Work order should not exist after rollback")

	_, err = newUow.MaterialRepository().Get(ctx, line.ID())
	suite.Require().Error(err, "Material line should not exist after rollback")
}

// TestUnitOfWork_StockGuard verifies the stock store rejects an adjustment
// that would drive the level negative.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StockGuard() {
	ctx := context.Background()

	aggregate := createTestWorkOrder(suite.T())
	line := createTestMaterialLine(suite.T(), aggregate)
	seedStock(suite.T(), suite.db, line, decimal.NewFromInt(3))

	store := suite.factory.Create().StockStore()

	err := store.AdjustStock(ctx, line.MaterialID(), line.LocationID(), decimal.NewFromInt(-5))
	suite.Require().ErrorIs(err, errs.ErrQuantityConstraintViolated)

	level, err := store.StockLevel(ctx, line.MaterialID(), line.LocationID())
	suite.Require().NoError(err)
	suite.True(level.Equal(decimal.NewFromInt(3)), "Level must be untouched by the rejected adjustment")
}

// TestUnitOfWork_AssignmentWithLaborJournal verifies the assignment write and
// the labor-entry append share one transaction and read back consistently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWithLaborJournal() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestWorkOrder(suite.T())
	assignment, err := labor.NewAssignment(
		kernel.NewUUID(),
		aggregate.TenantID(),
		aggregate.ID(),
		kernel.NewUUID(),
		catalog.RolePrimaryTechnician,
		catalog.AssignmentInternal,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = assignment.Accept("on my way")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AssignmentRepository().Add(ctx, assignment)
	suite.Require().NoError(err)

	entry, err := labor.NewLaborEntry(labor.NewLaborEntryParams{
		ID:            kernel.NewUUID(),
		TenantID:      assignment.TenantID(),
		WorkOrderID:   assignment.WorkOrderID(),
		AssignmentID:  assignment.ID(),
		WorkerID:      assignment.WorkerID(),
		WorkDate:      time.Now().UTC(),
		RegularHours:  decimal.NewFromInt(6),
		OvertimeHours: decimal.NewFromFloat(1.5),
		HourlyRate:    decimal.NewFromInt(30),
		OvertimeRate:  decimal.NewFromInt(45),
		Description:   "replaced corridor fixtures",
	})
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().AddLaborEntry(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	entries, err := suite.factory.Create().AssignmentRepository().
		GetLaborEntriesByWorkOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].Entry.TotalCost().Equal(decimal.RequireFromString("247.5")))
	suite.Equal(catalog.AssignmentInternal, entries[0].AssignmentType)
}

// TestNumberGenerator_SequencePerPeriod verifies numbers increment within a
// period and reset across periods.
func (suite *UnitOfWorkIntegrationTestSuite) TestNumberGenerator_SequencePerPeriod() {
	ctx := context.Background()
	generator := numbergen.NewGormNumberGenerator(suite.db)

	tenantID := kernel.NewUUID()
	march := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	first, err := generator.Next(ctx, tenantID, march)
	suite.Require().NoError(err)
	suite.Equal("WO2025030001", first)

	second, err := generator.Next(ctx, tenantID, march)
	suite.Require().NoError(err)
	suite.Equal("WO2025030002", second)

	nextPeriod, err := generator.Next(ctx, tenantID, april)
	suite.Require().NoError(err)
	suite.Equal("WO2025040001", nextPeriod)

	otherTenant, err := generator.Next(ctx, kernel.NewUUID(), march)
	suite.Require().NoError(err)
	suite.Equal("WO2025030001", otherTenant, "Counters must be scoped per tenant")
}

// createTestWorkOrder creates a valid draft work order for testing purposes.
func createTestWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	aggregate, err := workorder.NewWorkOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"WO2025030001",
		"Broken corridor lighting",
		"Fluorescent fixtures on floor 3 flicker and two are dead",
		catalog.CategoryCorrective,
		catalog.TypeLighting,
		catalog.PriorityMedium,
		catalog.UrgencyNormal,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

// createTestMaterialLine creates an allocated material line for testing purposes.
func createTestMaterialLine(t *testing.T, aggregate *workorder.WorkOrder) *material.MaterialLine {
	t.Helper()
	line, err := material.NewMaterialLine(
		kernel.NewUUID(),
		aggregate.TenantID(),
		aggregate.ID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Fluorescent tube T8 36W",
		"pcs",
		decimal.NewFromInt(10),
		decimal.NewFromFloat(12.5),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err = line.Allocate(decimal.NewFromInt(10)); err != nil {
		t.Fatal(err)
	}
	return line
}

// seedStock inserts a stock level row for the line's material and location.
func seedStock(t *testing.T, db *gorm.DB, line *material.MaterialLine, quantity decimal.Decimal) {
	t.Helper()
	err := db.Create(&stockstore.StockLevelDTO{
		MaterialID: line.MaterialID().Bytes(),
		LocationID: line.LocationID().Bytes(),
		Quantity:   quantity,
		UpdatedAt:  time.Now().UTC(),
	}).Error
	if err != nil {
		t.Fatal(err)
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
