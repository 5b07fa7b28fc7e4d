package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeductionHistoryQueryHandler reads the append-only deduction trail of a
// work order from the database.
type GetDeductionHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeductionHistoryQueryHandler creates a handler for deduction-history
// reads.
func NewGetDeductionHistoryQueryHandler(db *gorm.DB) GetDeductionHistoryQueryHandler {
	return GetDeductionHistoryQueryHandler{db: db}
}

// Handle executes the query. The trail comes back in deduction-date order, so
// a reversal always follows the record it compensates.
func (h GetDeductionHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeductionHistoryQuery,
) ([]GetDeductionHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetDeductionHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			material_line_id,
			material_id,
			location_id,
			deduction_date,
			quantity_deducted,
			stock_before,
			stock_after,
			batch_number,
			deduction_type,
			deduction_reason,
			is_automatic,
			status
		FROM deduction_records
		WHERE work_order_id = ?
		ORDER BY deduction_date, id
	`, query.WorkOrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeductionHistoryQueryResponse
		var id, lineID, materialID, locationID uuid.UUID

		err = rows.Scan(
			&id,
			&lineID,
			&materialID,
			&locationID,
			&resp.DeductionDate,
			&resp.QuantityDeducted,
			&resp.StockBefore,
			&resp.StockAfter,
			&resp.BatchNumber,
			&resp.DeductionType,
			&resp.DeductionReason,
			&resp.IsAutomatic,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.MaterialLineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if resp.MaterialID, err = kernel.UUIDFromBytes(materialID[:]); err != nil {
			return nil, err
		}
		if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}

		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
