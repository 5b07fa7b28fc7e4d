package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"
)

// ProgressRepository defines the persistence contract for the append-only
// progress journal.
type ProgressRepository interface {
	// Add appends a progress entry to the journal.
	Add(ctx context.Context, entry *progress.ProgressEntry) error

	// Get retrieves a progress entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*progress.ProgressEntry, error)

	// GetLatestByWorkOrder retrieves the most recent entry of a work order,
	// or ErrObjectNotFound when the journal is empty. New entries anchor
	// their monotonicity check on it.
	GetLatestByWorkOrder(ctx context.Context, workOrderID kernel.UUID) (*progress.ProgressEntry, error)

	// GetByWorkOrder retrieves the full journal of a work order ordered by
	// progress date.
	GetByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*progress.ProgressEntry, error)
}
