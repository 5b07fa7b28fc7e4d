package http

import (
	"time"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateWorkOrderRequest is the body of POST /api/v1/work-orders.
type CreateWorkOrderRequest struct {
	TenantID    string     `json:"tenant_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	WorkType    string     `json:"work_type"`
	Priority    string     `json:"priority"`
	Urgency     string     `json:"urgency"`
	RequestDate *time.Time `json:"request_date,omitempty"`
}

// CreateWorkOrderResponse returns the identifier of the new work order.
type CreateWorkOrderResponse struct {
	ID string `json:"id"`
}

// ApprovalDecisionRequest is the body of the approve and reject endpoints.
// Notes are optional for approval; the reject endpoint requires a reason in
// the same field.
type ApprovalDecisionRequest struct {
	DeciderID string `json:"decider_id"`
	Notes     string `json:"notes"`
}

// StartWorkOrderRequest is the body of POST /api/v1/work-orders/:id/start.
// StartedAt defaults to the current time when omitted.
type StartWorkOrderRequest struct {
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// CompleteWorkOrderRequest is the body of POST /api/v1/work-orders/:id/complete.
// QualityRating is an optional decimal string between 1 and 5.
type CompleteWorkOrderRequest struct {
	Notes         string     `json:"notes"`
	QualityRating *string    `json:"quality_rating,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// CancelWorkOrderRequest is the body of POST /api/v1/work-orders/:id/cancel.
type CancelWorkOrderRequest struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

// UseMaterialRequest is the body of POST /api/v1/material-lines/:id/use.
// Quantity is a decimal string; UsedAt defaults to the current time.
type UseMaterialRequest struct {
	Quantity    string     `json:"quantity"`
	UsedBy      string     `json:"used_by"`
	BatchNumber string     `json:"batch_number"`
	Notes       string     `json:"notes"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
}

// AssignWorkerRequest is the body of POST /api/v1/work-orders/:id/assign.
// AssignedAt defaults to the current time when omitted.
type AssignWorkerRequest struct {
	WorkerID       string     `json:"worker_id"`
	AssignmentType string     `json:"assignment_type"`
	Team           string     `json:"team"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
}

// RecordProgressRequest is the body of POST /api/v1/work-orders/:id/progress.
// An empty phase lets the progress percentage pick it.
type RecordProgressRequest struct {
	ReportedBy    string     `json:"reported_by"`
	Percentage    int        `json:"percentage"`
	Phase         string     `json:"phase,omitempty"`
	HoursWorked   string     `json:"hours_worked"`
	WorkCompleted string     `json:"work_completed"`
	WorkRemaining string     `json:"work_remaining"`
	Issues        string     `json:"issues"`
	ReportedAt    *time.Time `json:"reported_at,omitempty"`
}

// AddMaterialLineRequest is the body of POST /api/v1/work-orders/:id/material-lines.
// Quantities and costs are decimal strings.
type AddMaterialLineRequest struct {
	MaterialID       string `json:"material_id"`
	LocationID       string `json:"location_id"`
	MaterialName     string `json:"material_name"`
	UnitOfMeasure    string `json:"unit_of_measure"`
	RequiredQuantity string `json:"required_quantity"`
	UnitCost         string `json:"unit_cost"`
}

// AddMaterialLineResponse returns the identifier of the new material line.
type AddMaterialLineResponse struct {
	ID string `json:"id"`
}

// AllocateMaterialRequest is the body of POST /api/v1/material-lines/:id/allocate.
type AllocateMaterialRequest struct {
	Quantity string `json:"quantity"`
}

// QuantityWithReasonRequest is the body of the material return and waste
// endpoints.
type QuantityWithReasonRequest struct {
	Quantity string `json:"quantity"`
	Reason   string `json:"reason"`
}

// QualityCheckRequest is the body of POST /api/v1/material-lines/:id/quality-check.
type QualityCheckRequest struct {
	Passed bool   `json:"passed"`
	Notes  string `json:"notes"`
}

// ReverseDeductionRequest is the body of POST /api/v1/deductions/:id/reverse.
type ReverseDeductionRequest struct {
	ProcessedBy string `json:"processed_by"`
	Reason      string `json:"reason"`
}

// RespondToAssignmentRequest is the body of POST /api/v1/assignments/:id/respond.
// Notes are mandatory when declining.
type RespondToAssignmentRequest struct {
	Accepted bool   `json:"accepted"`
	Notes    string `json:"notes"`
}

// CompleteAssignmentRequest is the body of POST /api/v1/assignments/:id/complete.
type CompleteAssignmentRequest struct {
	Notes       string     `json:"notes"`
	CompletedBy *string    `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// EvaluateAssignmentRequest is the body of POST /api/v1/assignments/:id/evaluate.
// Scores are decimal strings on the 0..10 scale, the rating 0..5.
type EvaluateAssignmentRequest struct {
	PerformanceRating string `json:"performance_rating"`
	QualityScore      string `json:"quality_score"`
	TimelinessScore   string `json:"timeliness_score"`
}

// RecordLaborEntryRequest is the body of POST /api/v1/assignments/:id/labor-entries.
// Hours, rates, and scores are decimal strings; empty scores mean unscored.
type RecordLaborEntryRequest struct {
	WorkDate     time.Time  `json:"work_date"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	BreakMinutes int        `json:"break_minutes"`

	RegularHours  string `json:"regular_hours"`
	OvertimeHours string `json:"overtime_hours"`
	HourlyRate    string `json:"hourly_rate"`
	OvertimeRate  string `json:"overtime_rate"`

	Description string `json:"description"`

	ProductivityScore string `json:"productivity_score,omitempty"`
	QualityScore      string `json:"quality_score,omitempty"`
	SafetyScore       string `json:"safety_score,omitempty"`
}

// WorkOrderResponse is the detail view of one work order.
type WorkOrderResponse struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenant_id"`
	Number             string     `json:"number"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	WorkType           string     `json:"work_type"`
	Priority           string     `json:"priority"`
	Urgency            string     `json:"urgency"`
	Status             string     `json:"status"`
	ApprovalStatus     string     `json:"approval_status"`
	Phase              string     `json:"phase"`
	ProgressPercentage int        `json:"progress_percentage"`
	RequestDate        time.Time  `json:"request_date"`
	ActualStartDate    *time.Time `json:"actual_start_date,omitempty"`
	ActualEndDate      *time.Time `json:"actual_end_date,omitempty"`
	AssignedTo         *string    `json:"assigned_to,omitempty"`
	AssignedTeam       string     `json:"assigned_team,omitempty"`
	EstimatedCost      string     `json:"estimated_cost"`
	ActualCost         string     `json:"actual_cost"`
	QualityRating      string     `json:"quality_rating"`
	Version            int        `json:"version"`
}

// OpenWorkOrderResponse is one row in the open work-order listing.
type OpenWorkOrderResponse struct {
	ID                 string    `json:"id"`
	Number             string    `json:"number"`
	Title              string    `json:"title"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	Urgency            string    `json:"urgency"`
	Phase              string    `json:"phase"`
	ProgressPercentage int       `json:"progress_percentage"`
	RequestDate        time.Time `json:"request_date"`
	AssignedTo         *string   `json:"assigned_to,omitempty"`
}

// DeductionResponse is one record in a work order's deduction audit trail.
// A negative quantity marks a reversal entry.
type DeductionResponse struct {
	ID               string    `json:"id"`
	MaterialLineID   string    `json:"material_line_id"`
	MaterialID       string    `json:"material_id"`
	LocationID       string    `json:"location_id"`
	DeductionDate    time.Time `json:"deduction_date"`
	QuantityDeducted string    `json:"quantity_deducted"`
	StockBefore      string    `json:"stock_before"`
	StockAfter       string    `json:"stock_after"`
	BatchNumber      string    `json:"batch_number,omitempty"`
	DeductionType    string    `json:"deduction_type"`
	DeductionReason  string    `json:"deduction_reason,omitempty"`
	IsAutomatic      bool      `json:"is_automatic"`
	Status           string    `json:"status"`
}

// LaborCostRollupResponse is the aggregated labor cost picture of one work
// order. Percentages are of the total labor cost, two decimal places.
type LaborCostRollupResponse struct {
	WorkOrderID string `json:"work_order_id"`

	TotalRegularHours  string `json:"total_regular_hours"`
	TotalOvertimeHours string `json:"total_overtime_hours"`
	TotalWorkHours     string `json:"total_work_hours"`

	TotalRegularCost  string `json:"total_regular_cost"`
	TotalOvertimeCost string `json:"total_overtime_cost"`
	TotalLaborCost    string `json:"total_labor_cost"`

	WorkerCount     int `json:"worker_count"`
	ContractorCount int `json:"contractor_count"`

	AverageHourlyRate string `json:"average_hourly_rate"`

	InternalLaborCost string `json:"internal_labor_cost"`
	ExternalLaborCost string `json:"external_labor_cost"`
	ContractorCost    string `json:"contractor_cost"`

	InternalCostPercent   string `json:"internal_cost_percent"`
	ExternalCostPercent   string `json:"external_cost_percent"`
	ContractorCostPercent string `json:"contractor_cost_percent"`
}
