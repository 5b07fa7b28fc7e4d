package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler reads a single work order row straight from the
// database, bypassing the aggregate.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for single work-order reads.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the query. A missing row surfaces as ErrObjectNotFound.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (GetWorkOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tenant_id,
			number,
			title,
			description,
			category,
			work_type,
			priority,
			urgency,
			status,
			approval_status,
			phase,
			progress_percentage,
			request_date,
			actual_start_date,
			actual_end_date,
			assigned_to,
			assigned_team,
			estimated_cost,
			actual_cost,
			quality_rating,
			version
		FROM work_orders
		WHERE id = ?
	`, query.WorkOrderID().String()).Row()

	var resp GetWorkOrderQueryResponse
	var id, tenantID uuid.UUID
	var assignedTo uuid.NullUUID

	err := row.Scan(
		&id,
		&tenantID,
		&resp.Number,
		&resp.Title,
		&resp.Description,
		&resp.Category,
		&resp.WorkType,
		&resp.Priority,
		&resp.Urgency,
		&resp.Status,
		&resp.ApprovalStatus,
		&resp.Phase,
		&resp.ProgressPercentage,
		&resp.RequestDate,
		&resp.ActualStartDate,
		&resp.ActualEndDate,
		&assignedTo,
		&resp.AssignedTeam,
		&resp.EstimatedCost,
		&resp.ActualCost,
		&resp.QualityRating,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkOrderQueryResponse{}, errs.NewObjectNotFoundError("workOrderID", query.WorkOrderID())
	}
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	if resp.TenantID, err = kernel.UUIDFromBytes(tenantID[:]); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	if assignedTo.Valid {
		workerID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
		if idErr != nil {
			return GetWorkOrderQueryResponse{}, idErr
		}
		resp.AssignedTo = &workerID
	}

	return resp, nil
}
