// Package progressrepo provides data transfer objects and mapping functions
// for the append-only progress journal.
package progressrepo

import (
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// toolRecord, photoRecord and documentRecord are the JSON shapes of the
// attachment references. They are kept separate from the domain records so
// the stored form does not depend on domain-internal types.
type toolRecord struct {
	ToolID uuid.UUID `json:"tool_id"`
	Name   string    `json:"name"`
}

type photoRecord struct {
	PhotoID uuid.UUID `json:"photo_id"`
	URL     string    `json:"url"`
}

type documentRecord struct {
	DocumentID uuid.UUID `json:"document_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
}

// ProgressEntryDTO represents the database structure for persisting progress
// entries. The journal is append-only; rows are never updated.
type ProgressEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	ReportedBy  uuid.UUID `gorm:"type:uuid"`

	ProgressDate time.Time
	Percentage   int
	Phase        string

	WorkCompleted     string
	WorkRemaining     string
	IssuesEncountered string

	HoursWorked     decimal.Decimal `gorm:"type:numeric"`
	CumulativeHours decimal.Decimal `gorm:"type:numeric"`

	CheckpointsCompleted int
	IssuesFound          int
	IssuesResolved       int

	Tools     []toolRecord     `gorm:"serializer:json"`
	Photos    []photoRecord    `gorm:"serializer:json"`
	Documents []documentRecord `gorm:"serializer:json"`

	NextSteps              string
	ExpectedCompletionDate *time.Time

	SupervisorReviewed bool
	SupervisorNotes    string
}

// TableName overrides GORM's default naming to use "progress_entries".
func (ProgressEntryDTO) TableName() string {
	return "progress_entries"
}

// fromDomain converts a progress entry to its database representation.
func fromDomain(entry *progress.ProgressEntry) ProgressEntryDTO {
	tools := make([]toolRecord, 0, len(entry.Tools()))
	for _, tool := range entry.Tools() {
		tools = append(tools, toolRecord{ToolID: tool.ToolID.Bytes(), Name: tool.Name})
	}
	photos := make([]photoRecord, 0, len(entry.Photos()))
	for _, photo := range entry.Photos() {
		photos = append(photos, photoRecord{PhotoID: photo.PhotoID.Bytes(), URL: photo.URL})
	}
	documents := make([]documentRecord, 0, len(entry.Documents()))
	for _, document := range entry.Documents() {
		documents = append(documents, documentRecord{
			DocumentID: document.DocumentID.Bytes(),
			Name:       document.Name,
			URL:        document.URL,
		})
	}

	return ProgressEntryDTO{
		ID:          entry.ID().Bytes(),
		TenantID:    entry.TenantID().Bytes(),
		WorkOrderID: entry.WorkOrderID().Bytes(),
		ReportedBy:  entry.ReportedBy().Bytes(),

		ProgressDate: entry.ProgressDate(),
		Percentage:   entry.Percentage(),
		Phase:        entry.Phase().String(),

		WorkCompleted:     entry.WorkCompleted(),
		WorkRemaining:     entry.WorkRemaining(),
		IssuesEncountered: entry.IssuesEncountered(),

		HoursWorked:     entry.HoursWorked(),
		CumulativeHours: entry.CumulativeHours(),

		CheckpointsCompleted: entry.CheckpointsCompleted(),
		IssuesFound:          entry.IssuesFound(),
		IssuesResolved:       entry.IssuesResolved(),

		Tools:     tools,
		Photos:    photos,
		Documents: documents,

		NextSteps:              entry.NextSteps(),
		ExpectedCompletionDate: entry.ExpectedCompletionDate(),

		SupervisorReviewed: entry.SupervisorReviewed(),
		SupervisorNotes:    entry.SupervisorNotes(),
	}
}

// toDomain converts a database DTO back to a progress entry.
func toDomain(dto ProgressEntryDTO) (*progress.ProgressEntry, error) {
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
	reportedBy, err := kernel.UUIDFromBytes(dto.ReportedBy[:])
	if err != nil {
		return nil, err
	}

	phase, err := catalog.WorkPhaseFromString(dto.Phase)
	if err != nil {
		return nil, err
	}

	tools := make([]progress.ToolRecord, 0, len(dto.Tools))
	for _, tool := range dto.Tools {
		toolID, idErr := kernel.UUIDFromBytes(tool.ToolID[:])
		if idErr != nil {
			return nil, idErr
		}
		tools = append(tools, progress.ToolRecord{ToolID: toolID, Name: tool.Name})
	}
	photos := make([]progress.PhotoRecord, 0, len(dto.Photos))
	for _, photo := range dto.Photos {
		photoID, idErr := kernel.UUIDFromBytes(photo.PhotoID[:])
		if idErr != nil {
			return nil, idErr
		}
		photos = append(photos, progress.PhotoRecord{PhotoID: photoID, URL: photo.URL})
	}
	documents := make([]progress.DocumentRecord, 0, len(dto.Documents))
	for _, document := range dto.Documents {
		documentID, idErr := kernel.UUIDFromBytes(document.DocumentID[:])
		if idErr != nil {
			return nil, idErr
		}
		documents = append(documents, progress.DocumentRecord{
			DocumentID: documentID,
			Name:       document.Name,
			URL:        document.URL,
		})
	}

	return progress.RestoreProgressEntry(progress.RestoreProgressEntryParams{
		ID:          id,
		TenantID:    tenantID,
		WorkOrderID: workOrderID,
		ReportedBy:  reportedBy,

		ProgressDate: dto.ProgressDate,
		Percentage:   dto.Percentage,
		Phase:        phase,

		WorkCompleted:     dto.WorkCompleted,
		WorkRemaining:     dto.WorkRemaining,
		IssuesEncountered: dto.IssuesEncountered,

		HoursWorked:     dto.HoursWorked,
		CumulativeHours: dto.CumulativeHours,

		CheckpointsCompleted: dto.CheckpointsCompleted,
		IssuesFound:          dto.IssuesFound,
		IssuesResolved:       dto.IssuesResolved,

		Tools:     tools,
		Photos:    photos,
		Documents: documents,

		NextSteps:              dto.NextSteps,
		ExpectedCompletionDate: dto.ExpectedCompletionDate,

		SupervisorReviewed: dto.SupervisorReviewed,
		SupervisorNotes:    dto.SupervisorNotes,
	})
}
