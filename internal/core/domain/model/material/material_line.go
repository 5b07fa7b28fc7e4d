package material

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMaterialLineIsNotConstructed is returned when a MaterialLine was not
	// created through NewMaterialLine or RestoreMaterialLine.
	ErrMaterialLineIsNotConstructed = errors.New("MaterialLine must be created via NewMaterialLine or RestoreMaterialLine constructor")
)

// MaterialLine tracks one material on one work order from requirement through
// allocation, consumption, and return.
//
// Quantity invariants (checked before any mutation):
//   - usedQuantity + returnedQuantity + wasteQuantity <= allocatedQuantity
//   - allocatedQuantity <= requiredQuantity
//   - quantities never decrease; stock is only handed back via Return or
//     RecordWaste
//
// Actual cost is authoritative as usedQuantity * unitCost and is recomputed
// on every mutation of usedQuantity.
type MaterialLine struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	workOrderID kernel.UUID

	// materialID references the warehouse material this line consumes.
	materialID kernel.UUID
	// locationID is the storage location stock is deducted from.
	locationID kernel.UUID

	materialCode  string
	materialName  string
	category      string
	specification string
	unitOfMeasure string

	requiredQuantity  decimal.Decimal
	allocatedQuantity decimal.Decimal
	usedQuantity      decimal.Decimal
	returnedQuantity  decimal.Decimal
	wasteQuantity     decimal.Decimal

	unitCost           decimal.Decimal
	totalEstimatedCost decimal.Decimal
	totalActualCost    decimal.Decimal

	supplierName        string
	purchaseOrderNumber string

	status            catalog.MaterialStatus
	procurementStatus catalog.ProcurementStatus

	requestedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	qualityCheckRequired bool
	qualityCheckPassed   bool
	qualityNotes         string

	usageDate  *time.Time
	usedBy     *kernel.UUID
	usageNotes string

	wasteReason  string
	returnReason string

	version int

	guard guard.ConstructorGuard
}

// NewMaterialLine creates a material line in REQUIRED status with PENDING
// procurement and no allocation. The estimated cost is derived immediately
// as requiredQuantity * unitCost.
func NewMaterialLine(
	id kernel.UUID,
	tenantID kernel.UUID,
	workOrderID kernel.UUID,
	materialID kernel.UUID,
	locationID kernel.UUID,
	materialName string,
	unitOfMeasure string,
	requiredQuantity decimal.Decimal,
	unitCost decimal.Decimal,
) (*MaterialLine, error) {
	line := &MaterialLine{
		status:            catalog.MaterialRequired,
		procurementStatus: catalog.ProcurementPending,
		version:           1,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setIdentity(id, tenantID, workOrderID, materialID, locationID),
		line.setMaterialName(materialName),
		line.setUnitOfMeasure(unitOfMeasure),
		line.setRequiredQuantity(requiredQuantity),
		line.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	line.totalEstimatedCost = line.requiredQuantity.Mul(line.unitCost)
	return line, nil
}

// RestoreMaterialLineParams carries the full persisted state of a line.
type RestoreMaterialLineParams struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	WorkOrderID kernel.UUID
	MaterialID  kernel.UUID
	LocationID  kernel.UUID

	MaterialCode  string
	MaterialName  string
	Category      string
	Specification string
	UnitOfMeasure string

	RequiredQuantity  decimal.Decimal
	AllocatedQuantity decimal.Decimal
	UsedQuantity      decimal.Decimal
	ReturnedQuantity  decimal.Decimal
	WasteQuantity     decimal.Decimal

	UnitCost           decimal.Decimal
	TotalEstimatedCost decimal.Decimal
	TotalActualCost    decimal.Decimal

	SupplierName        string
	PurchaseOrderNumber string

	Status            catalog.MaterialStatus
	ProcurementStatus catalog.ProcurementStatus

	RequestedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time

	QualityCheckRequired bool
	QualityCheckPassed   bool
	QualityNotes         string

	UsageDate  *time.Time
	UsedBy     *kernel.UUID
	UsageNotes string

	WasteReason  string
	ReturnReason string

	Version int
}

// RestoreMaterialLine reconstructs a material line from persistent storage,
// re-checking the quantity invariant against the restored values.
func RestoreMaterialLine(params RestoreMaterialLineParams) (*MaterialLine, error) {
	line := &MaterialLine{
		materialCode:          params.MaterialCode,
		category:              params.Category,
		specification:         params.Specification,
		supplierName:          params.SupplierName,
		purchaseOrderNumber:   params.PurchaseOrderNumber,
		totalEstimatedCost:    params.TotalEstimatedCost,
		totalActualCost:       params.TotalActualCost,
		requestedDeliveryDate: params.RequestedDeliveryDate,
		actualDeliveryDate:    params.ActualDeliveryDate,
		qualityCheckRequired:  params.QualityCheckRequired,
		qualityCheckPassed:    params.QualityCheckPassed,
		qualityNotes:          params.QualityNotes,
		usageDate:             params.UsageDate,
		usedBy:                params.UsedBy,
		usageNotes:            params.UsageNotes,
		wasteReason:           params.WasteReason,
		returnReason:          params.ReturnReason,
		version:               params.Version,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setIdentity(params.ID, params.TenantID, params.WorkOrderID, params.MaterialID, params.LocationID),
		line.setMaterialName(params.MaterialName),
		line.setUnitOfMeasure(params.UnitOfMeasure),
		line.setRequiredQuantity(params.RequiredQuantity),
		line.setUnitCost(params.UnitCost),
		line.setQuantities(params.AllocatedQuantity, params.UsedQuantity, params.ReturnedQuantity, params.WasteQuantity),
		line.setStatuses(params.Status, params.ProcurementStatus),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was built through a constructor.
func (m *MaterialLine) Validate() error {
	if m == nil {
		return ErrMaterialLineIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialLineIsNotConstructed)
}

// IsEqual compares two material lines by id.
func (m *MaterialLine) IsEqual(other *MaterialLine) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (m *MaterialLine) ID() kernel.UUID { return m.id }

// TenantID returns the owning tenant's identifier.
func (m *MaterialLine) TenantID() kernel.UUID { return m.tenantID }

// WorkOrderID returns the owning work order's identifier.
func (m *MaterialLine) WorkOrderID() kernel.UUID { return m.workOrderID }

// MaterialID returns the warehouse material reference.
func (m *MaterialLine) MaterialID() kernel.UUID { return m.materialID }

// LocationID returns the storage location stock is deducted from.
func (m *MaterialLine) LocationID() kernel.UUID { return m.locationID }

// MaterialCode returns the material code.
func (m *MaterialLine) MaterialCode() string { return m.materialCode }

// MaterialName returns the material name.
func (m *MaterialLine) MaterialName() string { return m.materialName }

// Category returns the material category label.
func (m *MaterialLine) Category() string { return m.category }

// Specification returns the free-text specification.
func (m *MaterialLine) Specification() string { return m.specification }

// UnitOfMeasure returns the unit quantities are expressed in.
func (m *MaterialLine) UnitOfMeasure() string { return m.unitOfMeasure }

// RequiredQuantity returns how much the work order needs.
func (m *MaterialLine) RequiredQuantity() decimal.Decimal { return m.requiredQuantity }

// AllocatedQuantity returns how much was reserved.
func (m *MaterialLine) AllocatedQuantity() decimal.Decimal { return m.allocatedQuantity }

// UsedQuantity returns how much was consumed.
func (m *MaterialLine) UsedQuantity() decimal.Decimal { return m.usedQuantity }

// ReturnedQuantity returns how much was handed back.
func (m *MaterialLine) ReturnedQuantity() decimal.Decimal { return m.returnedQuantity }

// WasteQuantity returns how much was written off.
func (m *MaterialLine) WasteQuantity() decimal.Decimal { return m.wasteQuantity }

// UnitCost returns the cost per unit.
func (m *MaterialLine) UnitCost() decimal.Decimal { return m.unitCost }

// TotalEstimatedCost returns requiredQuantity * unitCost.
func (m *MaterialLine) TotalEstimatedCost() decimal.Decimal { return m.totalEstimatedCost }

// TotalActualCost returns usedQuantity * unitCost.
func (m *MaterialLine) TotalActualCost() decimal.Decimal { return m.totalActualCost }

// SupplierName returns the supplier name.
func (m *MaterialLine) SupplierName() string { return m.supplierName }

// PurchaseOrderNumber returns the purchase order reference.
func (m *MaterialLine) PurchaseOrderNumber() string { return m.purchaseOrderNumber }

// Status returns the material status.
func (m *MaterialLine) Status() catalog.MaterialStatus { return m.status }

// ProcurementStatus returns the procurement status.
func (m *MaterialLine) ProcurementStatus() catalog.ProcurementStatus { return m.procurementStatus }

// RequestedDeliveryDate returns the requested delivery date, or nil.
func (m *MaterialLine) RequestedDeliveryDate() *time.Time { return m.requestedDeliveryDate }

// ActualDeliveryDate returns the actual delivery date, or nil.
func (m *MaterialLine) ActualDeliveryDate() *time.Time { return m.actualDeliveryDate }

// QualityCheckRequired reports whether delivery needs a quality check.
func (m *MaterialLine) QualityCheckRequired() bool { return m.qualityCheckRequired }

// QualityCheckPassed reports the outcome of the last quality check.
func (m *MaterialLine) QualityCheckPassed() bool { return m.qualityCheckPassed }

// QualityNotes returns the quality check notes.
func (m *MaterialLine) QualityNotes() string { return m.qualityNotes }

// UsageDate returns when the material was last used, or nil.
func (m *MaterialLine) UsageDate() *time.Time { return m.usageDate }

// UsedBy returns who last used the material, or nil.
func (m *MaterialLine) UsedBy() *kernel.UUID { return m.usedBy }

// UsageNotes returns the last usage notes.
func (m *MaterialLine) UsageNotes() string { return m.usageNotes }

// WasteReason returns the last waste reason.
func (m *MaterialLine) WasteReason() string { return m.wasteReason }

// ReturnReason returns the last return reason.
func (m *MaterialLine) ReturnReason() string { return m.returnReason }

// Version returns the optimistic-lock version.
func (m *MaterialLine) Version() int { return m.version }

// SetProcurementDetails records the supplier and purchase references.
func (m *MaterialLine) SetProcurementDetails(code, category, specification, supplier, purchaseOrderNumber string) {
	m.materialCode = code
	m.category = category
	m.specification = specification
	m.supplierName = supplier
	m.purchaseOrderNumber = purchaseOrderNumber
}

// RequireQualityCheck flags the line for a delivery quality check.
func (m *MaterialLine) RequireQualityCheck(specification string) {
	m.qualityCheckRequired = true
	if specification != "" {
		m.specification = specification
	}
}

// RemainingQuantity returns allocated - used - returned - waste. The
// operation preconditions keep it from ever going negative.
func (m *MaterialLine) RemainingQuantity() decimal.Decimal {
	return m.allocatedQuantity.
		Sub(m.usedQuantity).
		Sub(m.returnedQuantity).
		Sub(m.wasteQuantity)
}

// Allocate reserves stock for the work order. The quantity must be positive,
// must not exceed the required quantity, and must cover what was already
// consumed or handed back.
func (m *MaterialLine) Allocate(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("allocatedQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if quantity.GreaterThan(m.requiredQuantity) {
		return errs.NewQuantityConstraintError("allocate", quantity.String(), m.requiredQuantity.String())
	}
	consumed := m.usedQuantity.Add(m.returnedQuantity).Add(m.wasteQuantity)
	if quantity.LessThan(consumed) {
		return errs.NewQuantityConstraintError("allocate", consumed.String(), quantity.String())
	}

	newStatus, err := m.status.Transition(catalog.MaterialAllocated)
	if err != nil {
		return err
	}

	m.status = newStatus
	m.allocatedQuantity = quantity
	return nil
}

// Use consumes allocated stock. The quantity must be positive and must not
// exceed the remaining quantity. Usage metadata is stamped and the actual
// cost recomputed as usedQuantity * unitCost.
//
// The caller is responsible for emitting the matching DeductionRecord in the
// same transaction; see services.StockDeductor.
func (m *MaterialLine) Use(quantity decimal.Decimal, actor kernel.UUID, notes string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("usedQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if remaining := m.RemainingQuantity(); quantity.GreaterThan(remaining) {
		return errs.NewQuantityConstraintError("use", quantity.String(), remaining.String())
	}

	newStatus, err := m.status.Transition(catalog.MaterialUsed)
	if err != nil {
		return err
	}

	m.status = newStatus
	m.usedQuantity = m.usedQuantity.Add(quantity)
	m.totalActualCost = m.usedQuantity.Mul(m.unitCost)
	m.usedBy = &actor
	m.usageDate = &at
	m.usageNotes = notes
	return nil
}

// RevertUse credits consumed quantity back to the allocation when a stock
// deduction is reversed. The quantity must be positive and must not exceed
// what was used. The actual cost is recomputed; the status machine is left
// alone, the ledger quantities carry the correction.
func (m *MaterialLine) RevertUse(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("usedQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if quantity.GreaterThan(m.usedQuantity) {
		return errs.NewQuantityConstraintError("revert", quantity.String(), m.usedQuantity.String())
	}

	m.usedQuantity = m.usedQuantity.Sub(quantity)
	m.totalActualCost = m.usedQuantity.Mul(m.unitCost)
	return nil
}

// Return hands unconsumed allocation back to the warehouse. The quantity
// must be positive and must not exceed the remaining quantity.
func (m *MaterialLine) Return(quantity decimal.Decimal, reason string) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("returnedQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if remaining := m.RemainingQuantity(); quantity.GreaterThan(remaining) {
		return errs.NewQuantityConstraintError("return", quantity.String(), remaining.String())
	}

	newStatus, err := m.status.Transition(catalog.MaterialReturned)
	if err != nil {
		return err
	}

	m.status = newStatus
	m.returnedQuantity = m.returnedQuantity.Add(quantity)
	m.returnReason = reason
	return nil
}

// RecordWaste writes off part of the allocation, e.g. breakage or offcuts.
// Waste does not change the material status; it regularly accompanies USED.
func (m *MaterialLine) RecordWaste(quantity decimal.Decimal, reason string) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("wasteQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if remaining := m.RemainingQuantity(); quantity.GreaterThan(remaining) {
		return errs.NewQuantityConstraintError("waste", quantity.String(), remaining.String())
	}

	m.wasteQuantity = m.wasteQuantity.Add(quantity)
	m.wasteReason = reason
	return nil
}

// MarkDelivered records the delivery and advances both status machines to
// DELIVERED.
func (m *MaterialLine) MarkDelivered(deliveryDate time.Time) error {
	newStatus, err := m.status.Transition(catalog.MaterialDelivered)
	if err != nil {
		return err
	}
	newProcurement, err := m.procurementStatus.Transition(catalog.ProcurementDelivered)
	if err != nil {
		return err
	}

	m.status = newStatus
	m.procurementStatus = newProcurement
	m.actualDeliveryDate = &deliveryDate
	return nil
}

// RequestProcurement moves procurement to REQUESTED with an optional
// requested delivery date.
func (m *MaterialLine) RequestProcurement(requestedDelivery *time.Time) error {
	newProcurement, err := m.procurementStatus.Transition(catalog.ProcurementRequested)
	if err != nil {
		return err
	}
	newStatus, err := m.status.Transition(catalog.MaterialRequested)
	if err != nil {
		return err
	}

	m.procurementStatus = newProcurement
	m.status = newStatus
	m.requestedDeliveryDate = requestedDelivery
	return nil
}

// PerformQualityCheck records the check outcome. A pass checks the delivery
// in, advancing procurement to RECEIVED when the machine allows it.
func (m *MaterialLine) PerformQualityCheck(passed bool, notes string) error {
	m.qualityCheckPassed = passed
	m.qualityNotes = notes

	if passed && m.procurementStatus.CanTransitionTo(catalog.ProcurementReceived) {
		newProcurement, err := m.procurementStatus.Transition(catalog.ProcurementReceived)
		if err != nil {
			return err
		}
		m.procurementStatus = newProcurement
	}
	return nil
}

// Cancel closes the line from any non-terminal status.
func (m *MaterialLine) Cancel() error {
	newStatus, err := m.status.Transition(catalog.MaterialCancelled)
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

func (m *MaterialLine) setIdentity(id, tenantID, workOrderID, materialID, locationID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		workOrderID.Validate(),
		materialID.Validate(),
		locationID.Validate(),
	); err != nil {
		return err
	}
	m.id = id
	m.tenantID = tenantID
	m.workOrderID = workOrderID
	m.materialID = materialID
	m.locationID = locationID
	return nil
}

func (m *MaterialLine) setMaterialName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("materialName")
	}
	m.materialName = name
	return nil
}

func (m *MaterialLine) setUnitOfMeasure(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return errs.NewValueIsRequiredError("unitOfMeasure")
	}
	m.unitOfMeasure = unit
	return nil
}

func (m *MaterialLine) setRequiredQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("requiredQuantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	m.requiredQuantity = quantity
	return nil
}

func (m *MaterialLine) setUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitCost",
			fmt.Errorf("%s is negative", cost))
	}
	m.unitCost = cost
	return nil
}

func (m *MaterialLine) setQuantities(allocated, used, returned, waste decimal.Decimal) error {
	for name, q := range map[string]decimal.Decimal{
		"allocatedQuantity": allocated,
		"usedQuantity":      used,
		"returnedQuantity":  returned,
		"wasteQuantity":     waste,
	} {
		if q.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", q))
		}
	}
	if allocated.GreaterThan(m.requiredQuantity) {
		return errs.NewQuantityConstraintError("restore", allocated.String(), m.requiredQuantity.String())
	}
	if consumed := used.Add(returned).Add(waste); consumed.GreaterThan(allocated) {
		return errs.NewQuantityConstraintError("restore", consumed.String(), allocated.String())
	}
	m.allocatedQuantity = allocated
	m.usedQuantity = used
	m.returnedQuantity = returned
	m.wasteQuantity = waste
	return nil
}

func (m *MaterialLine) setStatuses(status catalog.MaterialStatus, procurement catalog.ProcurementStatus) error {
	if err := errors.Join(status.Validate(), procurement.Validate()); err != nil {
		return err
	}
	m.status = status
	m.procurementStatus = procurement
	return nil
}
