// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. It implements the repository pattern for the
// work-order aggregate, handling the conversion between domain entities and
// database representations.
package workorderrepo

import (
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderDTO represents the database structure for persisting work-order
// aggregates. Classification and status fields are stored in their catalog
// string forms so the read side can render them without decoding.
type WorkOrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Number   string    `gorm:"index:idx_work_orders_tenant_number,unique,composite:tenant"`

	Title       string
	Description string

	Category string
	WorkType string
	Priority string
	Urgency  string

	Status         string `gorm:"index"`
	ApprovalStatus string
	Phase          string

	ProgressPercentage int

	BuildingID    *uuid.UUID `gorm:"type:uuid"`
	UnitID        *uuid.UUID `gorm:"type:uuid"`
	AssetID       *uuid.UUID `gorm:"type:uuid"`
	FaultReportID *uuid.UUID `gorm:"type:uuid"`

	RequestedBy   *uuid.UUID `gorm:"type:uuid"`
	RequestDate   time.Time
	RequestReason string
	WorkLocation  string
	WorkScope     string

	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time

	EstimatedDurationHours decimal.Decimal `gorm:"type:numeric"`

	AssignedTo     *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTeam   string
	AssignmentDate *time.Time

	ActualStartDate     *time.Time
	ActualEndDate       *time.Time
	ActualDurationHours decimal.Decimal `gorm:"type:numeric"`

	EstimatedCost  decimal.Decimal `gorm:"type:numeric"`
	ApprovedBudget decimal.Decimal `gorm:"type:numeric"`
	ActualCost     decimal.Decimal `gorm:"type:numeric"`

	CompletionNotes      string
	QualityRating        decimal.Decimal `gorm:"type:numeric"`
	CustomerSatisfaction decimal.Decimal `gorm:"type:numeric"`

	FollowUpRequired bool
	FollowUpDate     *time.Time
	FollowUpNotes    string

	ApprovedBy    *uuid.UUID `gorm:"type:uuid"`
	ApprovalDate  *time.Time
	ApprovalNotes string

	ClosedBy      *uuid.UUID `gorm:"type:uuid"`
	ClosedDate    *time.Time
	ClosureReason string

	Version int
}

// TableName overrides GORM's default naming to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
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

// fromDomain converts a work-order aggregate to its database representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:       aggregate.ID().Bytes(),
		TenantID: aggregate.TenantID().Bytes(),
		Number:   aggregate.Number(),

		Title:       aggregate.Title(),
		Description: aggregate.Description(),

		Category: aggregate.Category().String(),
		WorkType: aggregate.WorkType().String(),
		Priority: aggregate.Priority().String(),
		Urgency:  aggregate.Urgency().String(),

		Status:         aggregate.Status().String(),
		ApprovalStatus: aggregate.ApprovalStatus().String(),
		Phase:          aggregate.Phase().String(),

		ProgressPercentage: aggregate.ProgressPercentage(),

		BuildingID:    optionalID(aggregate.BuildingID()),
		UnitID:        optionalID(aggregate.UnitID()),
		AssetID:       optionalID(aggregate.AssetID()),
		FaultReportID: optionalID(aggregate.FaultReportID()),

		RequestedBy:   optionalID(aggregate.RequestedBy()),
		RequestDate:   aggregate.RequestDate(),
		RequestReason: aggregate.RequestReason(),
		WorkLocation:  aggregate.WorkLocation(),
		WorkScope:     aggregate.WorkScope(),

		ScheduledStartDate: aggregate.ScheduledStartDate(),
		ScheduledEndDate:   aggregate.ScheduledEndDate(),

		EstimatedDurationHours: aggregate.EstimatedDurationHours(),

		AssignedTo:     optionalID(aggregate.AssignedTo()),
		AssignedTeam:   aggregate.AssignedTeam(),
		AssignmentDate: aggregate.AssignmentDate(),

		ActualStartDate:     aggregate.ActualStartDate(),
		ActualEndDate:       aggregate.ActualEndDate(),
		ActualDurationHours: aggregate.ActualDurationHours(),

		EstimatedCost:  aggregate.EstimatedCost(),
		ApprovedBudget: aggregate.ApprovedBudget(),
		ActualCost:     aggregate.ActualCost(),

		CompletionNotes:      aggregate.CompletionNotes(),
		QualityRating:        aggregate.QualityRating(),
		CustomerSatisfaction: aggregate.CustomerSatisfaction(),

		FollowUpRequired: aggregate.FollowUpRequired(),
		FollowUpDate:     aggregate.FollowUpDate(),
		FollowUpNotes:    aggregate.FollowUpNotes(),

		ApprovedBy:    optionalID(aggregate.ApprovedBy()),
		ApprovalDate:  aggregate.ApprovalDate(),
		ApprovalNotes: aggregate.ApprovalNotes(),

		ClosedBy:      optionalID(aggregate.ClosedBy()),
		ClosedDate:    aggregate.ClosedDate(),
		ClosureReason: aggregate.ClosureReason(),

		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO back to a work-order aggregate using
// RestoreWorkOrder, so a stored row that violates a domain invariant cannot
// be restored silently.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	category, err := catalog.WorkCategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}
	workType, err := catalog.WorkTypeFromString(dto.WorkType)
	if err != nil {
		return nil, err
	}
	priority, err := catalog.WorkPriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}
	urgency, err := catalog.WorkUrgencyFromString(dto.Urgency)
	if err != nil {
		return nil, err
	}
	status, err := catalog.WorkStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	approvalStatus, err := catalog.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}
	phase, err := catalog.WorkPhaseFromString(dto.Phase)
	if err != nil {
		return nil, err
	}

	buildingID, err := optionalDomainID(dto.BuildingID)
	if err != nil {
		return nil, err
	}
	unitID, err := optionalDomainID(dto.UnitID)
	if err != nil {
		return nil, err
	}
	assetID, err := optionalDomainID(dto.AssetID)
	if err != nil {
		return nil, err
	}
	faultReportID, err := optionalDomainID(dto.FaultReportID)
	if err != nil {
		return nil, err
	}
	requestedBy, err := optionalDomainID(dto.RequestedBy)
	if err != nil {
		return nil, err
	}
	assignedTo, err := optionalDomainID(dto.AssignedTo)
	if err != nil {
		return nil, err
	}
	approvedBy, err := optionalDomainID(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}
	closedBy, err := optionalDomainID(dto.ClosedBy)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(workorder.RestoreWorkOrderParams{
		ID:       id,
		TenantID: tenantID,
		Number:   dto.Number,

		Title:       dto.Title,
		Description: dto.Description,

		Category: category,
		WorkType: workType,
		Priority: priority,
		Urgency:  urgency,

		Status:         status,
		ApprovalStatus: approvalStatus,
		Phase:          phase,

		ProgressPercentage: dto.ProgressPercentage,

		BuildingID:    buildingID,
		UnitID:        unitID,
		AssetID:       assetID,
		FaultReportID: faultReportID,

		RequestedBy:   requestedBy,
		RequestDate:   dto.RequestDate,
		RequestReason: dto.RequestReason,
		WorkLocation:  dto.WorkLocation,
		WorkScope:     dto.WorkScope,

		ScheduledStartDate: dto.ScheduledStartDate,
		ScheduledEndDate:   dto.ScheduledEndDate,

		EstimatedDurationHours: dto.EstimatedDurationHours,

		AssignedTo:     assignedTo,
		AssignedTeam:   dto.AssignedTeam,
		AssignmentDate: dto.AssignmentDate,

		ActualStartDate:     dto.ActualStartDate,
		ActualEndDate:       dto.ActualEndDate,
		ActualDurationHours: dto.ActualDurationHours,

		EstimatedCost:  dto.EstimatedCost,
		ApprovedBudget: dto.ApprovedBudget,
		ActualCost:     dto.ActualCost,

		CompletionNotes:      dto.CompletionNotes,
		QualityRating:        dto.QualityRating,
		CustomerSatisfaction: dto.CustomerSatisfaction,

		FollowUpRequired: dto.FollowUpRequired,
		FollowUpDate:     dto.FollowUpDate,
		FollowUpNotes:    dto.FollowUpNotes,

		ApprovedBy:    approvedBy,
		ApprovalDate:  dto.ApprovalDate,
		ApprovalNotes: dto.ApprovalNotes,

		ClosedBy:      closedBy,
		ClosedDate:    dto.ClosedDate,
		ClosureReason: dto.ClosureReason,

		Version: dto.Version,
	})
}
