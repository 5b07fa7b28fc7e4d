// Package assignmentrepo provides data transfer objects and mapping
// functions for assignment persistence and the append-only labor journal.
package assignmentrepo

import (
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentDTO represents the database structure for persisting worker
// assignments.
type AssignmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	WorkerID    uuid.UUID `gorm:"type:uuid;index"`

	Role           string
	AssignmentType string

	AssignedDate      time.Time
	ExpectedStartDate *time.Time
	ExpectedEndDate   *time.Time

	Status           string
	AcceptanceStatus string

	AllocatedHours decimal.Decimal `gorm:"type:numeric"`
	ActualHours    decimal.Decimal `gorm:"type:numeric"`
	WorkPercentage int

	AssignmentNotes string
	AcceptanceNotes string
	CompletionNotes string

	PerformanceRating decimal.Decimal `gorm:"type:numeric"`
	QualityScore      decimal.Decimal `gorm:"type:numeric"`
	TimelinessScore   decimal.Decimal `gorm:"type:numeric"`

	CompletedDate *time.Time
	CompletedBy   *uuid.UUID `gorm:"type:uuid"`

	Version int
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// LaborEntryDTO represents the database structure for the append-only labor
// journal. Entries are never updated; corrections append a new entry.
type LaborEntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID  uuid.UUID `gorm:"type:uuid;index"`
	AssignmentID uuid.UUID `gorm:"type:uuid;index"`
	WorkerID     uuid.UUID `gorm:"type:uuid"`

	WorkDate     time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes int

	RegularHours  decimal.Decimal `gorm:"type:numeric"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric"`
	HourlyRate    decimal.Decimal `gorm:"type:numeric"`
	OvertimeRate  decimal.Decimal `gorm:"type:numeric"`
	TotalCost     decimal.Decimal `gorm:"type:numeric"`

	Description string

	ProductivityScore decimal.Decimal `gorm:"type:numeric"`
	QualityScore      decimal.Decimal `gorm:"type:numeric"`
	SafetyScore       decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "labor_entries".
func (LaborEntryDTO) TableName() string {
	return "labor_entries"
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

// assignmentFromDomain converts an assignment to its database representation.
func assignmentFromDomain(assignment *labor.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          assignment.ID().Bytes(),
		TenantID:    assignment.TenantID().Bytes(),
		WorkOrderID: assignment.WorkOrderID().Bytes(),
		WorkerID:    assignment.WorkerID().Bytes(),

		Role:           assignment.Role().String(),
		AssignmentType: assignment.AssignmentType().String(),

		AssignedDate:      assignment.AssignedDate(),
		ExpectedStartDate: assignment.ExpectedStartDate(),
		ExpectedEndDate:   assignment.ExpectedEndDate(),

		Status:           assignment.Status().String(),
		AcceptanceStatus: assignment.AcceptanceStatus().String(),

		AllocatedHours: assignment.AllocatedHours(),
		ActualHours:    assignment.ActualHours(),
		WorkPercentage: assignment.WorkPercentage(),

		AssignmentNotes: assignment.AssignmentNotes(),
		AcceptanceNotes: assignment.AcceptanceNotes(),
		CompletionNotes: assignment.CompletionNotes(),

		PerformanceRating: assignment.PerformanceRating(),
		QualityScore:      assignment.QualityScore(),
		TimelinessScore:   assignment.TimelinessScore(),

		CompletedDate: assignment.CompletedDate(),
		CompletedBy:   optionalID(assignment.CompletedBy()),

		Version: assignment.Version(),
	}
}

// assignmentToDomain converts a database DTO back to an assignment.
func assignmentToDomain(dto AssignmentDTO) (*labor.Assignment, error) {
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
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	role, err := catalog.AssignmentRoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	assignmentType, err := catalog.AssignmentTypeFromString(dto.AssignmentType)
	if err != nil {
		return nil, err
	}
	status, err := catalog.AssignmentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	acceptanceStatus, err := catalog.AcceptanceStatusFromString(dto.AcceptanceStatus)
	if err != nil {
		return nil, err
	}

	completedBy, err := optionalDomainID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}

	return labor.RestoreAssignment(labor.RestoreAssignmentParams{
		ID:          id,
		TenantID:    tenantID,
		WorkOrderID: workOrderID,
		WorkerID:    workerID,

		Role:           role,
		AssignmentType: assignmentType,

		AssignedDate:      dto.AssignedDate,
		ExpectedStartDate: dto.ExpectedStartDate,
		ExpectedEndDate:   dto.ExpectedEndDate,

		Status:           status,
		AcceptanceStatus: acceptanceStatus,

		AllocatedHours: dto.AllocatedHours,
		ActualHours:    dto.ActualHours,
		WorkPercentage: dto.WorkPercentage,

		AssignmentNotes: dto.AssignmentNotes,
		AcceptanceNotes: dto.AcceptanceNotes,
		CompletionNotes: dto.CompletionNotes,

		PerformanceRating: dto.PerformanceRating,
		QualityScore:      dto.QualityScore,
		TimelinessScore:   dto.TimelinessScore,

		CompletedDate: dto.CompletedDate,
		CompletedBy:   completedBy,

		Version: dto.Version,
	})
}

// entryFromDomain converts a labor entry to its database representation.
func entryFromDomain(entry *labor.LaborEntry) LaborEntryDTO {
	return LaborEntryDTO{
		ID:           entry.ID().Bytes(),
		TenantID:     entry.TenantID().Bytes(),
		WorkOrderID:  entry.WorkOrderID().Bytes(),
		AssignmentID: entry.AssignmentID().Bytes(),
		WorkerID:     entry.WorkerID().Bytes(),

		WorkDate:     entry.WorkDate(),
		StartTime:    entry.StartTime(),
		EndTime:      entry.EndTime(),
		BreakMinutes: entry.BreakMinutes(),

		RegularHours:  entry.RegularHours(),
		OvertimeHours: entry.OvertimeHours(),
		HourlyRate:    entry.HourlyRate(),
		OvertimeRate:  entry.OvertimeRate(),
		TotalCost:     entry.TotalCost(),

		Description: entry.Description(),

		ProductivityScore: entry.ProductivityScore(),
		QualityScore:      entry.QualityScore(),
		SafetyScore:       entry.SafetyScore(),
	}
}

// entryToDomain converts a database DTO back to a labor entry. TotalCost is
// not restored directly; RestoreLaborEntry recomputes it from hours and
// rates.
func entryToDomain(dto LaborEntryDTO) (*labor.LaborEntry, error) {
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
	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return labor.RestoreLaborEntry(labor.NewLaborEntryParams{
		ID:           id,
		TenantID:     tenantID,
		WorkOrderID:  workOrderID,
		AssignmentID: assignmentID,
		WorkerID:     workerID,

		WorkDate:     dto.WorkDate,
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		BreakMinutes: dto.BreakMinutes,

		RegularHours:  dto.RegularHours,
		OvertimeHours: dto.OvertimeHours,
		HourlyRate:    dto.HourlyRate,
		OvertimeRate:  dto.OvertimeRate,

		Description: dto.Description,

		ProductivityScore: dto.ProductivityScore,
		QualityScore:      dto.QualityScore,
		SafetyScore:       dto.SafetyScore,
	})
}
