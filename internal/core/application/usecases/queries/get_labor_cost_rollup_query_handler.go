package queries

import (
	"context"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLaborCostRollupQueryHandler computes the labor-cost rollup of a work
// order. It reads the raw labor entries joined with their assignment's
// sourcing type, restores them through the domain constructors, and hands the
// aggregation to labor.Rollup: the same math the materialized rollup job
// uses, so the ad-hoc read can never drift from it.
type GetLaborCostRollupQueryHandler struct {
	db *gorm.DB
}

// NewGetLaborCostRollupQueryHandler creates a handler for rollup reads.
func NewGetLaborCostRollupQueryHandler(db *gorm.DB) GetLaborCostRollupQueryHandler {
	return GetLaborCostRollupQueryHandler{db: db}
}

// Handle executes the rollup query. A work order with no labor entries yields
// a zero rollup, not an error.
func (h GetLaborCostRollupQueryHandler) Handle(
	ctx context.Context,
	query GetLaborCostRollupQuery,
) (GetLaborCostRollupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLaborCostRollupQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			le.id,
			le.tenant_id,
			le.work_order_id,
			le.assignment_id,
			le.worker_id,
			le.work_date,
			le.regular_hours,
			le.overtime_hours,
			le.hourly_rate,
			le.overtime_rate,
			a.assignment_type
		FROM labor_entries le
		JOIN assignments a ON a.id = le.assignment_id
		WHERE le.work_order_id = ?
		ORDER BY le.work_date, le.id
	`, query.WorkOrderID().String()).Rows()
	if err != nil {
		return GetLaborCostRollupQueryResponse{}, err
	}
	defer rows.Close()

	entries := make([]labor.RollupEntry, 0)
	for rows.Next() {
		var id, tenantID, workOrderID, assignmentID, workerID uuid.UUID
		var workDate time.Time
		var regular, overtime, rate, overtimeRate decimal.Decimal
		var assignmentType string

		err = rows.Scan(
			&id,
			&tenantID,
			&workOrderID,
			&assignmentID,
			&workerID,
			&workDate,
			&regular,
			&overtime,
			&rate,
			&overtimeRate,
			&assignmentType,
		)
		if err != nil {
			return GetLaborCostRollupQueryResponse{}, err
		}

		entry, restoreErr := labor.RestoreLaborEntry(labor.NewLaborEntryParams{
			ID:            mustKernelUUID(id),
			TenantID:      mustKernelUUID(tenantID),
			WorkOrderID:   mustKernelUUID(workOrderID),
			AssignmentID:  mustKernelUUID(assignmentID),
			WorkerID:      mustKernelUUID(workerID),
			WorkDate:      workDate,
			RegularHours:  regular,
			OvertimeHours: overtime,
			HourlyRate:    rate,
			OvertimeRate:  overtimeRate,
		})
		if restoreErr != nil {
			return GetLaborCostRollupQueryResponse{}, restoreErr
		}

		sourcing, typeErr := catalog.AssignmentTypeFromString(assignmentType)
		if typeErr != nil {
			return GetLaborCostRollupQueryResponse{}, typeErr
		}

		entries = append(entries, labor.RollupEntry{Entry: entry, AssignmentType: sourcing})
	}

	if err = rows.Err(); err != nil {
		return GetLaborCostRollupQueryResponse{}, err
	}

	rollup := labor.Rollup(query.WorkOrderID(), entries)

	return GetLaborCostRollupQueryResponse{
		WorkOrderID:           rollup.WorkOrderID,
		TotalRegularHours:     rollup.TotalRegularHours,
		TotalOvertimeHours:    rollup.TotalOvertimeHours,
		TotalWorkHours:        rollup.TotalWorkHours,
		TotalRegularCost:      rollup.TotalRegularCost,
		TotalOvertimeCost:     rollup.TotalOvertimeCost,
		TotalLaborCost:        rollup.TotalLaborCost,
		WorkerCount:           rollup.WorkerCount,
		ContractorCount:       rollup.ContractorCount,
		AverageHourlyRate:     rollup.AverageHourlyRate,
		InternalLaborCost:     rollup.InternalLaborCost,
		ExternalLaborCost:     rollup.ExternalLaborCost,
		ContractorCost:        rollup.ContractorCost,
		InternalCostPercent:   rollup.InternalCostPercent,
		ExternalCostPercent:   rollup.ExternalCostPercent,
		ContractorCostPercent: rollup.ContractorCostPercent,
	}, nil
}

// mustKernelUUID converts a database uuid to the domain form. The database
// only ever holds values written from valid domain ids.
func mustKernelUUID(id uuid.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		panic(err)
	}
	return converted
}
