package services

import (
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// StockDeductor is the domain service that pairs material consumption with
// its stock audit trail. Every successful Deduct mutates the material line
// and produces exactly one balanced DeductionRecord; the caller persists both
// in the same transaction so the ledger and the audit log never diverge.
//
// Reversal never edits a written record: Reverse produces a compensating
// record with the negated quantity and flips the original's status to
// REVERSED.
type StockDeductor struct {
	ids kernel.IDGenerator
}

// NewStockDeductor creates a stock deductor drawing record ids from the
// supplied generator.
func NewStockDeductor(ids kernel.IDGenerator) (StockDeductor, error) {
	if ids == nil {
		return StockDeductor{}, errs.NewValueIsRequiredError("ids")
	}
	return StockDeductor{ids: ids}, nil
}

// Deduct consumes quantity units from the material line and emits the
// matching deduction record. stockBefore is the warehouse stock level read
// inside the current transaction; the deduction is rejected when it would
// drive stock negative, and the line is left untouched in that case.
func (s StockDeductor) Deduct(
	line *material.MaterialLine,
	quantity decimal.Decimal,
	stockBefore decimal.Decimal,
	batchNumber string,
	usedBy kernel.UUID,
	notes string,
	at time.Time,
) (*material.DeductionRecord, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}

	if stockBefore.LessThan(quantity) {
		return nil, errs.NewQuantityConstraintError("deduct", quantity.String(), stockBefore.String())
	}

	if err := line.Use(quantity, usedBy, notes, at); err != nil {
		return nil, err
	}

	return material.NewDeductionRecord(material.NewDeductionRecordParams{
		ID:               s.ids.NewID(),
		TenantID:         line.TenantID(),
		WorkOrderID:      line.WorkOrderID(),
		MaterialLineID:   line.ID(),
		MaterialID:       line.MaterialID(),
		LocationID:       line.LocationID(),
		DeductionDate:    at,
		QuantityDeducted: quantity,
		StockBefore:      stockBefore,
		StockAfter:       stockBefore.Sub(quantity),
		BatchNumber:      batchNumber,
		DeductionType:    catalog.DeductionWorkOrder,
		DeductionReason:  notes,
		IsAutomatic:      true,
		ProcessedBy:      &usedBy,
		Status:           catalog.DeductionCompleted,
	})
}

// Reverse compensates an earlier deduction. It returns the new compensating
// record and marks the original REVERSED; the caller persists both together.
// stockBefore is the stock level at reversal time.
func (s StockDeductor) Reverse(
	record *material.DeductionRecord,
	stockBefore decimal.Decimal,
	reason string,
	processedBy *kernel.UUID,
	at time.Time,
) (*material.DeductionRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	reversal, err := record.Reverse(s.ids.NewID(), stockBefore, reason, processedBy, at)
	if err != nil {
		return nil, err
	}

	if err = record.MarkReversed(); err != nil {
		return nil, err
	}

	return reversal, nil
}
