package workorderrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database. The row's stored
// version must still match the version the aggregate was loaded with; the
// write bumps it by one. A zero-row update means another writer got there
// first and surfaces as ErrConcurrentModification.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	// Select("*") forces zero-valued columns to be written too; Updates with
	// a struct would skip them.
	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("workOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a work order by its human-readable number within a
// tenant.
func (r *GormWorkOrderRepository) GetByNumber(
	ctx context.Context,
	tenantID kernel.UUID,
	number string,
) (*workorder.WorkOrder, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND number = ?", tenantID.Bytes(), number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves all work orders in a non-terminal status.
func (r *GormWorkOrderRepository) GetAllOpen(ctx context.Context) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status NOT IN (?, ?)",
			catalog.WorkStatusCompleted.String(), catalog.WorkStatusCancelled.String()).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
