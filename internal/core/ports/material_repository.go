package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
)

// MaterialRepository defines the persistence contract for material lines and
// their deduction audit trail.
type MaterialRepository interface {
	// Add persists a new material line.
	Add(ctx context.Context, line *material.MaterialLine) error

	// Update persists changes to an existing material line using the line's
	// version for optimistic locking.
	Update(ctx context.Context, line *material.MaterialLine) error

	// Get retrieves a material line by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*material.MaterialLine, error)

	// GetByWorkOrder retrieves all material lines of a work order.
	GetByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*material.MaterialLine, error)

	// AddDeduction appends a deduction record to the audit trail. Records are
	// append-only; there is no delete.
	AddDeduction(ctx context.Context, record *material.DeductionRecord) error

	// UpdateDeduction persists the one permitted in-place change on a
	// deduction record: its status moving to REVERSED.
	UpdateDeduction(ctx context.Context, record *material.DeductionRecord) error

	// GetDeduction retrieves a deduction record by its unique identifier.
	GetDeduction(ctx context.Context, id kernel.UUID) (*material.DeductionRecord, error)

	// GetDeductionsByWorkOrder retrieves the deduction history of a work
	// order ordered by deduction date.
	GetDeductionsByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*material.DeductionRecord, error)
}
