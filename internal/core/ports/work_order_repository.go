// Package ports defines the contracts between the work-order core and
// infrastructure: repositories, the unit of work, the stock store, the
// validation oracle, and generators. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates.
type WorkOrderRepository interface {
	// Add persists a new work-order aggregate to storage.
	// The aggregate must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work-order aggregate using the
	// aggregate's version for optimistic locking. A concurrent writer having
	// bumped the version first surfaces as ErrConcurrentModification.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work-order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetByNumber retrieves a work order by its human-readable number within
	// a tenant.
	GetByNumber(ctx context.Context, tenantID kernel.UUID, number string) (*workorder.WorkOrder, error)

	// GetAllOpen retrieves all work orders in a non-terminal status.
	// Used by the read side and by the overdue-escalation job.
	GetAllOpen(ctx context.Context) ([]*workorder.WorkOrder, error)
}
