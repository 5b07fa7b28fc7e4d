package assignmentrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, assignment *labor.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(assignment.ID(), assignment)
	return nil
}

// Update saves an existing assignment, guarded by the assignment's version.
// A zero-row update surfaces as ErrConcurrentModification.
func (r *GormAssignmentRepository) Update(ctx context.Context, assignment *labor.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(assignment)
	dto.Version = assignment.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, assignment.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("assignment", assignment.ID().String())
	}

	r.tracker.TrackAggregate(assignment.ID(), assignment)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// GetByWorkOrder retrieves all assignments of a work order.
func (r *GormAssignmentRepository) GetByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*labor.Assignment, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("assigned_date, id").
		Find(&dtos, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*labor.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		assignment, err := assignmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

// AddLaborEntry appends an immutable labor entry to the journal.
func (r *GormAssignmentRepository) AddLaborEntry(ctx context.Context, entry *labor.LaborEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetLaborEntriesByWorkOrder retrieves all labor entries of a work order
// paired with their assignment's sourcing type, ready for labor.Rollup.
func (r *GormAssignmentRepository) GetLaborEntriesByWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]labor.RollupEntry, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var entryDTOs []LaborEntryDTO
	err := r.db.WithContext(ctx).
		Order("work_date, id").
		Find(&entryDTOs, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	// Sourcing types come from the assignments rather than a join so the
	// entries stay plain DTO reads.
	var assignmentDTOs []AssignmentDTO
	err = r.db.WithContext(ctx).Find(&assignmentDTOs, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	typesByAssignment := make(map[uuid.UUID]string, len(assignmentDTOs))
	for _, dto := range assignmentDTOs {
		typesByAssignment[dto.ID] = dto.AssignmentType
	}

	entries := make([]labor.RollupEntry, 0, len(entryDTOs))
	for _, dto := range entryDTOs {
		entry, err := entryToDomain(dto)
		if err != nil {
			return nil, err
		}

		typeName, ok := typesByAssignment[dto.AssignmentID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("assignment", dto.AssignmentID.String())
		}
		sourcing, err := catalog.AssignmentTypeFromString(typeName)
		if err != nil {
			return nil, err
		}

		entries = append(entries, labor.RollupEntry{Entry: entry, AssignmentType: sourcing})
	}

	return entries, nil
}
