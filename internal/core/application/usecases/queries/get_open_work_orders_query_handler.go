package queries

import (
	"context"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenWorkOrdersQueryHandler lists a tenant's non-terminal work orders
// ordered by request date, oldest first.
type GetOpenWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenWorkOrdersQueryHandler creates a handler for open work-order
// listings.
func NewGetOpenWorkOrdersQueryHandler(db *gorm.DB) GetOpenWorkOrdersQueryHandler {
	return GetOpenWorkOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open work orders of the tenant.
// Completed and cancelled orders are excluded.
func (h GetOpenWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenWorkOrdersQuery,
) ([]GetOpenWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			title,
			status,
			priority,
			urgency,
			phase,
			progress_percentage,
			request_date,
			assigned_to
		FROM work_orders
		WHERE tenant_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY request_date
	`, query.TenantID().String(),
		catalog.WorkStatusCompleted.String(),
		catalog.WorkStatusCancelled.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenWorkOrdersQueryResponse
		var id uuid.UUID
		var assignedTo uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Title,
			&resp.Status,
			&resp.Priority,
			&resp.Urgency,
			&resp.Phase,
			&resp.ProgressPercentage,
			&resp.RequestDate,
			&assignedTo,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if assignedTo.Valid {
			workerID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssignedTo = &workerID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
