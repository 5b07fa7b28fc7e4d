package materialrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMaterialRepository creates a new GORM material repository.
func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new material line to the database.
func (r *GormMaterialRepository) Add(ctx context.Context, line *material.MaterialLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(line.ID(), line)
	return nil
}

// Update saves an existing material line, guarded by the line's version. A
// zero-row update surfaces as ErrConcurrentModification.
func (r *GormMaterialRepository) Update(ctx context.Context, line *material.MaterialLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	dto.Version = line.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&MaterialLineDTO{}).
		Where("id = ? AND version = ?", dto.ID, line.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("materialLine", line.ID().String())
	}

	r.tracker.TrackAggregate(line.ID(), line)
	return nil
}

// Get retrieves a material line by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.MaterialLine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaterialLineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("materialLine", id.String())
		}
		return nil, err
	}

	return lineToDomain(dto)
}

// GetByWorkOrder retrieves all material lines of a work order.
func (r *GormMaterialRepository) GetByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*material.MaterialLine, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MaterialLineDTO
	err := r.db.WithContext(ctx).Find(&dtos, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*material.MaterialLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// AddDeduction appends a deduction record to the audit trail.
func (r *GormMaterialRepository) AddDeduction(ctx context.Context, record *material.DeductionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := deductionFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// UpdateDeduction persists the one permitted in-place change on a deduction
// record: its status moving to REVERSED. Everything else on the row stays as
// written, which keeps the trail append-only at the column level too.
func (r *GormMaterialRepository) UpdateDeduction(ctx context.Context, record *material.DeductionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.Status() != catalog.DeductionReversed {
		return errs.NewValueIsInvalidError("status")
	}

	result := r.db.WithContext(ctx).
		Model(&DeductionRecordDTO{}).
		Where("id = ? AND status = ?", record.ID().Bytes(), catalog.DeductionCompleted.String()).
		Update("status", catalog.DeductionReversed.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("deductionRecord", record.ID().String())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetDeduction retrieves a deduction record by ID.
func (r *GormMaterialRepository) GetDeduction(
	ctx context.Context,
	id kernel.UUID,
) (*material.DeductionRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeductionRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deductionRecord", id.String())
		}
		return nil, err
	}

	return deductionToDomain(dto)
}

// GetDeductionsByWorkOrder retrieves the deduction history of a work order
// ordered by deduction date, so a reversal always follows the record it
// compensates.
func (r *GormMaterialRepository) GetDeductionsByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*material.DeductionRecord, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeductionRecordDTO
	err := r.db.WithContext(ctx).
		Order("deduction_date, id").
		Find(&dtos, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*material.DeductionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := deductionToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
