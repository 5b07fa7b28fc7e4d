// Package materialrepo provides data transfer objects and mapping functions
// for material-line persistence, including the append-only deduction audit
// trail that shadows every stock movement.
package materialrepo

import (
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialLineDTO represents the database structure for persisting material
// lines.
type MaterialLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	MaterialID  uuid.UUID `gorm:"type:uuid"`
	LocationID  uuid.UUID `gorm:"type:uuid"`

	MaterialCode  string
	MaterialName  string
	Category      string
	Specification string
	UnitOfMeasure string

	RequiredQuantity  decimal.Decimal `gorm:"type:numeric"`
	AllocatedQuantity decimal.Decimal `gorm:"type:numeric"`
	UsedQuantity      decimal.Decimal `gorm:"type:numeric"`
	ReturnedQuantity  decimal.Decimal `gorm:"type:numeric"`
	WasteQuantity     decimal.Decimal `gorm:"type:numeric"`

	UnitCost           decimal.Decimal `gorm:"type:numeric"`
	TotalEstimatedCost decimal.Decimal `gorm:"type:numeric"`
	TotalActualCost    decimal.Decimal `gorm:"type:numeric"`

	SupplierName        string
	PurchaseOrderNumber string

	Status            string
	ProcurementStatus string

	RequestedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time

	QualityCheckRequired bool
	QualityCheckPassed   bool
	QualityNotes         string

	UsageDate  *time.Time
	UsedBy     *uuid.UUID `gorm:"type:uuid"`
	UsageNotes string

	WasteReason  string
	ReturnReason string

	Version int
}

// TableName overrides GORM's default naming to use "material_lines".
func (MaterialLineDTO) TableName() string {
	return "material_lines"
}

// DeductionRecordDTO represents the database structure for the deduction
// audit trail. Rows are append-only; the only in-place change ever written is
// the status flip to REVERSED.
type DeductionRecordDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID    uuid.UUID `gorm:"type:uuid;index"`
	MaterialLineID uuid.UUID `gorm:"type:uuid;index"`
	MaterialID     uuid.UUID `gorm:"type:uuid"`
	LocationID     uuid.UUID `gorm:"type:uuid"`

	DeductionDate    time.Time
	QuantityDeducted decimal.Decimal `gorm:"type:numeric"`
	StockBefore      decimal.Decimal `gorm:"type:numeric"`
	StockAfter       decimal.Decimal `gorm:"type:numeric"`

	BatchNumber   string
	SerialNumbers []string `gorm:"serializer:json"`

	DeductionType   string
	DeductionReason string

	IsAutomatic bool
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`

	Status string
}

// TableName overrides GORM's default naming to use "deduction_records".
func (DeductionRecordDTO) TableName() string {
	return "deduction_records"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// lineFromDomain converts a material line to its database representation.
func lineFromDomain(line *material.MaterialLine) MaterialLineDTO {
	return MaterialLineDTO{
		ID:          line.ID().Bytes(),
		TenantID:    line.TenantID().Bytes(),
		WorkOrderID: line.WorkOrderID().Bytes(),
		MaterialID:  line.MaterialID().Bytes(),
		LocationID:  line.LocationID().Bytes(),

		MaterialCode:  line.MaterialCode(),
		MaterialName:  line.MaterialName(),
		Category:      line.Category(),
		Specification: line.Specification(),
		UnitOfMeasure: line.UnitOfMeasure(),

		RequiredQuantity:  line.RequiredQuantity(),
		AllocatedQuantity: line.AllocatedQuantity(),
		UsedQuantity:      line.UsedQuantity(),
		ReturnedQuantity:  line.ReturnedQuantity(),
		WasteQuantity:     line.WasteQuantity(),

		UnitCost:           line.UnitCost(),
		TotalEstimatedCost: line.TotalEstimatedCost(),
		TotalActualCost:    line.TotalActualCost(),

		SupplierName:        line.SupplierName(),
		PurchaseOrderNumber: line.PurchaseOrderNumber(),

		Status:            line.Status().String(),
		ProcurementStatus: line.ProcurementStatus().String(),

		RequestedDeliveryDate: line.RequestedDeliveryDate(),
		ActualDeliveryDate:    line.ActualDeliveryDate(),

		QualityCheckRequired: line.QualityCheckRequired(),
		QualityCheckPassed:   line.QualityCheckPassed(),
		QualityNotes:         line.QualityNotes(),

		UsageDate:  line.UsageDate(),
		UsedBy:     optionalID(line.UsedBy()),
		UsageNotes: line.UsageNotes(),

		WasteReason:  line.WasteReason(),
		ReturnReason: line.ReturnReason(),

		Version: line.Version(),
	}
}

// lineToDomain converts a database DTO back to a material line.
func lineToDomain(dto MaterialLineDTO) (*material.MaterialLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	workOrderID, err := kernel.UUIDFromBytes(dto.WorkOrderID[:])
	if err != nil {
		return nil, err
	}
	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	status, err := catalog.MaterialStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	procurementStatus, err := catalog.ProcurementStatusFromString(dto.ProcurementStatus)
	if err != nil {
		return nil, err
	}

	usedBy, err := optionalDomainID(dto.UsedBy)
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterialLine(material.RestoreMaterialLineParams{
		ID:          id,
		TenantID:    tenantID,
		WorkOrderID: workOrderID,
		MaterialID:  materialID,
		LocationID:  locationID,

		MaterialCode:  dto.MaterialCode,
		MaterialName:  dto.MaterialName,
		Category:      dto.Category,
		Specification: dto.Specification,
		UnitOfMeasure: dto.UnitOfMeasure,

		RequiredQuantity:  dto.RequiredQuantity,
		AllocatedQuantity: dto.AllocatedQuantity,
		UsedQuantity:      dto.UsedQuantity,
		ReturnedQuantity:  dto.ReturnedQuantity,
		WasteQuantity:     dto.WasteQuantity,

		UnitCost:           dto.UnitCost,
		TotalEstimatedCost: dto.TotalEstimatedCost,
		TotalActualCost:    dto.TotalActualCost,

		SupplierName:        dto.SupplierName,
		PurchaseOrderNumber: dto.PurchaseOrderNumber,

		Status:            status,
		ProcurementStatus: procurementStatus,

		RequestedDeliveryDate: dto.RequestedDeliveryDate,
		ActualDeliveryDate:    dto.ActualDeliveryDate,

		QualityCheckRequired: dto.QualityCheckRequired,
		QualityCheckPassed:   dto.QualityCheckPassed,
		QualityNotes:         dto.QualityNotes,

		UsageDate:  dto.UsageDate,
		UsedBy:     usedBy,
		UsageNotes: dto.UsageNotes,

		WasteReason:  dto.WasteReason,
		ReturnReason: dto.ReturnReason,

		Version: dto.Version,
	})
}

// deductionFromDomain converts a deduction record to its database
// representation.
func deductionFromDomain(record *material.DeductionRecord) DeductionRecordDTO {
	return DeductionRecordDTO{
		ID:             record.ID().Bytes(),
		TenantID:       record.TenantID().Bytes(),
		WorkOrderID:    record.WorkOrderID().Bytes(),
		MaterialLineID: record.MaterialLineID().Bytes(),
		MaterialID:     record.MaterialID().Bytes(),
		LocationID:     record.LocationID().Bytes(),

		DeductionDate:    record.DeductionDate(),
		QuantityDeducted: record.QuantityDeducted(),
		StockBefore:      record.StockBefore(),
		StockAfter:       record.StockAfter(),

		BatchNumber:   record.BatchNumber(),
		SerialNumbers: record.SerialNumbers(),

		DeductionType:   record.DeductionType().String(),
		DeductionReason: record.DeductionReason(),

		IsAutomatic: record.IsAutomatic(),
		ProcessedBy: optionalID(record.ProcessedBy()),

		Status: record.Status().String(),
	}
}

// deductionToDomain converts a database DTO back to a deduction record.
func deductionToDomain(dto DeductionRecordDTO) (*material.DeductionRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	workOrderID, err := kernel.UUIDFromBytes(dto.WorkOrderID[:])
	if err != nil {
		return nil, err
	}
	materialLineID, err := kernel.UUIDFromBytes(dto.MaterialLineID[:])
	if err != nil {
		return nil, err
	}
	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	deductionType, err := catalog.DeductionTypeFromString(dto.DeductionType)
	if err != nil {
		return nil, err
	}
	status, err := catalog.DeductionStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	processedBy, err := optionalDomainID(dto.ProcessedBy)
	if err != nil {
		return nil, err
	}

	return material.RestoreDeductionRecord(material.NewDeductionRecordParams{
		ID:             id,
		TenantID:       tenantID,
		WorkOrderID:    workOrderID,
		MaterialLineID: materialLineID,
		MaterialID:     materialID,
		LocationID:     locationID,

		DeductionDate:    dto.DeductionDate,
		QuantityDeducted: dto.QuantityDeducted,
		StockBefore:      dto.StockBefore,
		StockAfter:       dto.StockAfter,

		BatchNumber:   dto.BatchNumber,
		SerialNumbers: dto.SerialNumbers,

		DeductionType:   deductionType,
		DeductionReason: dto.DeductionReason,

		IsAutomatic: dto.IsAutomatic,
		ProcessedBy: processedBy,

		Status: status,
	})
}
