package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
)

// AssignmentRepository defines the persistence contract for worker
// assignments and their labor entries.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, assignment *labor.Assignment) error

	// Update persists changes to an existing assignment using the
	// assignment's version for optimistic locking.
	Update(ctx context.Context, assignment *labor.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error)

	// GetByWorkOrder retrieves all assignments of a work order.
	GetByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*labor.Assignment, error)

	// AddLaborEntry appends an immutable labor entry. Entries are never
	// updated; corrections append a new entry.
	AddLaborEntry(ctx context.Context, entry *labor.LaborEntry) error

	// GetLaborEntriesByWorkOrder retrieves all labor entries of a work order
	// paired with their assignment's sourcing type, ready for the cost
	// rollup.
	GetLaborEntriesByWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]labor.RollupEntry, error)
}
