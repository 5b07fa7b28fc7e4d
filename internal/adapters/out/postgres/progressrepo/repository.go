package progressrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProgressRepository implements ProgressRepository using GORM.
type GormProgressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProgressRepository creates a new GORM progress repository.
func NewGormProgressRepository(db *gorm.DB, tracker aggregateTracker) *GormProgressRepository {
	return &GormProgressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a progress entry to the journal.
func (r *GormProgressRepository) Add(ctx context.Context, entry *progress.ProgressEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Get retrieves a progress entry by ID.
func (r *GormProgressRepository) Get(ctx context.Context, id kernel.UUID) (*progress.ProgressEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProgressEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("progressEntry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByWorkOrder retrieves the most recent entry of a work order. An
// empty journal surfaces as ErrObjectNotFound; the first report anchors its
// monotonicity check on zero instead.
func (r *GormProgressRepository) GetLatestByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) (*progress.ProgressEntry, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dto ProgressEntryDTO
	err := r.db.WithContext(ctx).
		Order("progress_date DESC, id DESC").
		First(&dto, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrderID", workOrderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByWorkOrder retrieves the full journal of a work order ordered by
// progress date.
func (r *GormProgressRepository) GetByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*progress.ProgressEntry, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProgressEntryDTO
	err := r.db.WithContext(ctx).
		Order("progress_date, id").
		Find(&dtos, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*progress.ProgressEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
