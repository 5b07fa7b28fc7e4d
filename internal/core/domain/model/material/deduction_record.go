package material

import (
	"errors"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeductionRecordIsNotConstructed is returned when a DeductionRecord
	// was not created through NewDeductionRecord or RestoreDeductionRecord.
	ErrDeductionRecordIsNotConstructed = errors.New("DeductionRecord must be created via NewDeductionRecord or RestoreDeductionRecord constructor")
)

// DeductionRecord is one immutable audit entry of a stock movement caused by
// material consumption. stockAfter == stockBefore - quantityDeducted holds
// exactly; the record is never edited after creation. A reversal writes a
// compensating record with the negated quantity, and the original record is
// the only thing that changes: its status moves to REVERSED.
type DeductionRecord struct {
	id       kernel.UUID
	tenantID kernel.UUID

	workOrderID    kernel.UUID
	materialLineID kernel.UUID
	materialID     kernel.UUID
	locationID     kernel.UUID

	deductionDate    time.Time
	quantityDeducted decimal.Decimal
	stockBefore      decimal.Decimal
	stockAfter       decimal.Decimal

	batchNumber   string
	serialNumbers []string

	deductionType   catalog.DeductionType
	deductionReason string

	// isAutomatic distinguishes deductions emitted by use() from manual
	// corrections entered by a person.
	isAutomatic bool
	processedBy *kernel.UUID

	status catalog.DeductionStatus

	guard guard.ConstructorGuard
}

// NewDeductionRecordParams carries the inputs for a new deduction record.
type NewDeductionRecordParams struct {
	ID       kernel.UUID
	TenantID kernel.UUID

	WorkOrderID    kernel.UUID
	MaterialLineID kernel.UUID
	MaterialID     kernel.UUID
	LocationID     kernel.UUID

	DeductionDate    time.Time
	QuantityDeducted decimal.Decimal
	StockBefore      decimal.Decimal
	StockAfter       decimal.Decimal

	BatchNumber   string
	SerialNumbers []string

	DeductionType   catalog.DeductionType
	DeductionReason string

	IsAutomatic bool
	ProcessedBy *kernel.UUID

	Status catalog.DeductionStatus
}

// NewDeductionRecord creates an immutable deduction record. The stock
// snapshot must balance exactly: StockAfter == StockBefore -
// QuantityDeducted. The quantity must be non-zero; a negative quantity is
// only produced by Reverse and credits stock back.
func NewDeductionRecord(params NewDeductionRecordParams) (*DeductionRecord, error) {
	record := &DeductionRecord{
		deductionDate:   params.DeductionDate,
		batchNumber:     params.BatchNumber,
		serialNumbers:   append([]string(nil), params.SerialNumbers...),
		deductionReason: params.DeductionReason,
		isAutomatic:     params.IsAutomatic,
		processedBy:     params.ProcessedBy,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setIdentity(params.ID, params.TenantID, params.WorkOrderID,
			params.MaterialLineID, params.MaterialID, params.LocationID),
		record.setSnapshot(params.QuantityDeducted, params.StockBefore, params.StockAfter),
		record.setType(params.DeductionType),
		record.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreDeductionRecord reconstructs a record from persistent storage,
// re-checking the snapshot invariant.
func RestoreDeductionRecord(params NewDeductionRecordParams) (*DeductionRecord, error) {
	return NewDeductionRecord(params)
}

// Validate ensures the record was built through a constructor.
func (d *DeductionRecord) Validate() error {
	if d == nil {
		return ErrDeductionRecordIsNotConstructed
	}
	return d.guard.Validate(ErrDeductionRecordIsNotConstructed)
}

// IsEqual compares two records by id.
func (d *DeductionRecord) IsEqual(other *DeductionRecord) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (d *DeductionRecord) ID() kernel.UUID { return d.id }

// TenantID returns the owning tenant's identifier.
func (d *DeductionRecord) TenantID() kernel.UUID { return d.tenantID }

// WorkOrderID returns the work order the consumption belongs to.
func (d *DeductionRecord) WorkOrderID() kernel.UUID { return d.workOrderID }

// MaterialLineID returns the material line that triggered the deduction.
func (d *DeductionRecord) MaterialLineID() kernel.UUID { return d.materialLineID }

// MaterialID returns the warehouse material reference.
func (d *DeductionRecord) MaterialID() kernel.UUID { return d.materialID }

// LocationID returns the storage location the stock moved at.
func (d *DeductionRecord) LocationID() kernel.UUID { return d.locationID }

// DeductionDate returns when the deduction happened.
func (d *DeductionRecord) DeductionDate() time.Time { return d.deductionDate }

// QuantityDeducted returns the deducted quantity. Negative for a
// compensating reversal record.
func (d *DeductionRecord) QuantityDeducted() decimal.Decimal { return d.quantityDeducted }

// StockBefore returns the stock level before the deduction.
func (d *DeductionRecord) StockBefore() decimal.Decimal { return d.stockBefore }

// StockAfter returns the stock level after the deduction.
func (d *DeductionRecord) StockAfter() decimal.Decimal { return d.stockAfter }

// BatchNumber returns the batch reference, if any.
func (d *DeductionRecord) BatchNumber() string { return d.batchNumber }

// SerialNumbers returns a copy of the serial number references.
func (d *DeductionRecord) SerialNumbers() []string {
	return append([]string(nil), d.serialNumbers...)
}

// DeductionType returns why the stock was deducted.
func (d *DeductionRecord) DeductionType() catalog.DeductionType { return d.deductionType }

// DeductionReason returns the free-text reason.
func (d *DeductionRecord) DeductionReason() string { return d.deductionReason }

// IsAutomatic reports whether the deduction was emitted automatically.
func (d *DeductionRecord) IsAutomatic() bool { return d.isAutomatic }

// ProcessedBy returns who processed a manual deduction, or nil.
func (d *DeductionRecord) ProcessedBy() *kernel.UUID { return d.processedBy }

// Status returns the record status.
func (d *DeductionRecord) Status() catalog.DeductionStatus { return d.status }

// IsReversal reports whether this record credits stock back.
func (d *DeductionRecord) IsReversal() bool { return d.quantityDeducted.IsNegative() }

// Reverse builds the compensating record that credits the deducted quantity
// back to stock. stockBefore is the stock level at reversal time; the
// compensation carries the negated quantity so its own snapshot invariant
// still balances. The original record is not touched here; the caller marks
// it REVERSED in the same transaction via MarkReversed.
func (d *DeductionRecord) Reverse(
	id kernel.UUID,
	stockBefore decimal.Decimal,
	reason string,
	processedBy *kernel.UUID,
	at time.Time,
) (*DeductionRecord, error) {
	if d.IsReversal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("deductionRecord",
			fmt.Errorf("record %s is already a reversal", d.id))
	}
	if d.status == catalog.DeductionReversed {
		return nil, errs.NewValueIsInvalidErrorWithCause("deductionRecord",
			fmt.Errorf("record %s was already reversed", d.id))
	}

	return NewDeductionRecord(NewDeductionRecordParams{
		ID:               id,
		TenantID:         d.tenantID,
		WorkOrderID:      d.workOrderID,
		MaterialLineID:   d.materialLineID,
		MaterialID:       d.materialID,
		LocationID:       d.locationID,
		DeductionDate:    at,
		QuantityDeducted: d.quantityDeducted.Neg(),
		StockBefore:      stockBefore,
		StockAfter:       stockBefore.Add(d.quantityDeducted),
		BatchNumber:      d.batchNumber,
		SerialNumbers:    d.serialNumbers,
		DeductionType:    catalog.DeductionAdjustment,
		DeductionReason:  reason,
		IsAutomatic:      false,
		ProcessedBy:      processedBy,
		Status:           catalog.DeductionCompleted,
	})
}

// MarkReversed flags the original record once its compensation was written.
// This is the only permitted in-place change on a deduction record.
func (d *DeductionRecord) MarkReversed() error {
	if d.IsReversal() {
		return errs.NewValueIsInvalidErrorWithCause("deductionRecord",
			fmt.Errorf("record %s is a reversal and cannot be reversed", d.id))
	}
	if d.status == catalog.DeductionReversed {
		return errs.NewValueIsInvalidErrorWithCause("deductionRecord",
			fmt.Errorf("record %s was already reversed", d.id))
	}
	d.status = catalog.DeductionReversed
	return nil
}

func (d *DeductionRecord) setIdentity(id, tenantID, workOrderID, materialLineID, materialID, locationID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		workOrderID.Validate(),
		materialLineID.Validate(),
		materialID.Validate(),
		locationID.Validate(),
	); err != nil {
		return err
	}
	d.id = id
	d.tenantID = tenantID
	d.workOrderID = workOrderID
	d.materialLineID = materialLineID
	d.materialID = materialID
	d.locationID = locationID
	return nil
}

func (d *DeductionRecord) setSnapshot(quantity, stockBefore, stockAfter decimal.Decimal) error {
	if quantity.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("quantityDeducted",
			errors.New("quantity must be non-zero"))
	}
	if stockBefore.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("stockBefore",
			fmt.Errorf("%s is negative", stockBefore))
	}
	if stockAfter.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("stockAfter",
			fmt.Errorf("%s is negative", stockAfter))
	}
	if !stockAfter.Equal(stockBefore.Sub(quantity)) {
		return errs.NewValueIsInvalidErrorWithCause("stockAfter",
			fmt.Errorf("%s does not equal %s - %s", stockAfter, stockBefore, quantity))
	}
	d.quantityDeducted = quantity
	d.stockBefore = stockBefore
	d.stockAfter = stockAfter
	return nil
}

func (d *DeductionRecord) setType(deductionType catalog.DeductionType) error {
	if err := deductionType.Validate(); err != nil {
		return err
	}
	d.deductionType = deductionType
	return nil
}

func (d *DeductionRecord) setStatus(status catalog.DeductionStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
