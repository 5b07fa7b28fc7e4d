// Package http exposes the work-order use cases over a REST API built on
// echo. Handlers translate wire requests into commands and queries, and map
// core errors onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateWorkOrder   commands.CreateWorkOrderCommandHandler
	SubmitWorkOrder   commands.SubmitWorkOrderCommandHandler
	AssignWorker      commands.AssignWorkerCommandHandler
	ApproveWorkOrder  commands.ApproveWorkOrderCommandHandler
	RejectWorkOrder   commands.RejectWorkOrderCommandHandler
	StartWorkOrder    commands.StartWorkOrderCommandHandler
	PauseWorkOrder    commands.PauseWorkOrderCommandHandler
	ResumeWorkOrder   commands.ResumeWorkOrderCommandHandler
	RecordProgress    commands.RecordProgressCommandHandler
	CompleteWorkOrder commands.CompleteWorkOrderCommandHandler
	CancelWorkOrder   commands.CancelWorkOrderCommandHandler

	AddMaterialLine     commands.AddMaterialLineCommandHandler
	AllocateMaterial    commands.AllocateMaterialCommandHandler
	UseMaterial         commands.UseMaterialCommandHandler
	ReturnMaterial      commands.ReturnMaterialCommandHandler
	RecordWaste         commands.RecordWasteCommandHandler
	PerformQualityCheck commands.PerformQualityCheckCommandHandler
	ReverseDeduction    commands.ReverseDeductionCommandHandler

	RespondToAssignment commands.RespondToAssignmentCommandHandler
	StartAssignment     commands.StartAssignmentCommandHandler
	CompleteAssignment  commands.CompleteAssignmentCommandHandler
	EvaluateAssignment  commands.EvaluateAssignmentCommandHandler
	RecordLaborEntry    commands.RecordLaborEntryCommandHandler

	GetWorkOrder        queries.GetWorkOrderQueryHandler
	GetOpenWorkOrders   queries.GetOpenWorkOrdersQueryHandler
	GetDeductionHistory queries.GetDeductionHistoryQueryHandler
	GetLaborCostRollup  queries.GetLaborCostRollupQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders", s.GetOpenWorkOrders)
	api.GET("/work-orders/:id", s.GetWorkOrder)
	api.POST("/work-orders/:id/submit", s.SubmitWorkOrder)
	api.POST("/work-orders/:id/assign", s.AssignWorker)
	api.POST("/work-orders/:id/approve", s.ApproveWorkOrder)
	api.POST("/work-orders/:id/reject", s.RejectWorkOrder)
	api.POST("/work-orders/:id/start", s.StartWorkOrder)
	api.POST("/work-orders/:id/pause", s.PauseWorkOrder)
	api.POST("/work-orders/:id/resume", s.ResumeWorkOrder)
	api.POST("/work-orders/:id/progress", s.RecordProgress)
	api.POST("/work-orders/:id/complete", s.CompleteWorkOrder)
	api.POST("/work-orders/:id/cancel", s.CancelWorkOrder)
	api.POST("/work-orders/:id/material-lines", s.AddMaterialLine)
	api.GET("/work-orders/:id/deductions", s.GetDeductionHistory)
	api.GET("/work-orders/:id/labor-rollup", s.GetLaborCostRollup)
	api.POST("/material-lines/:id/allocate", s.AllocateMaterial)
	api.POST("/material-lines/:id/use", s.UseMaterial)
	api.POST("/material-lines/:id/return", s.ReturnMaterial)
	api.POST("/material-lines/:id/waste", s.RecordWaste)
	api.POST("/material-lines/:id/quality-check", s.PerformQualityCheck)
	api.POST("/deductions/:id/reverse", s.ReverseDeduction)
	api.POST("/assignments/:id/respond", s.RespondToAssignment)
	api.POST("/assignments/:id/start", s.StartAssignment)
	api.POST("/assignments/:id/complete", s.CompleteAssignment)
	api.POST("/assignments/:id/evaluate", s.EvaluateAssignment)
	api.POST("/assignments/:id/labor-entries", s.RecordLaborEntry)
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, err := kernel.UUIDFromString(req.TenantID)
	if err != nil {
		return badRequest(ctx, "Invalid tenant_id: "+err.Error())
	}

	category, err := catalog.WorkCategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid category: "+err.Error())
	}
	workType, err := catalog.WorkTypeFromString(req.WorkType)
	if err != nil {
		return badRequest(ctx, "Invalid work_type: "+err.Error())
	}
	priority, err := catalog.WorkPriorityFromString(req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+err.Error())
	}
	urgency, err := catalog.WorkUrgencyFromString(req.Urgency)
	if err != nil {
		return badRequest(ctx, "Invalid urgency: "+err.Error())
	}

	requestDate := time.Now()
	if req.RequestDate != nil {
		requestDate = *req.RequestDate
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		workOrderID,
		tenantID,
		req.Title,
		req.Description,
		category,
		workType,
		priority,
		urgency,
		requestDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid work-order data: "+err.Error())
	}

	if err = s.handlers.CreateWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateWorkOrderResponse{ID: workOrderID.String()})
}

// GetWorkOrder handles GET /api/v1/work-orders/:id.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	query, err := queries.NewGetWorkOrderQuery(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	wo, err := s.handlers.GetWorkOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := WorkOrderResponse{
		ID:                 wo.ID.String(),
		TenantID:           wo.TenantID.String(),
		Number:             wo.Number,
		Title:              wo.Title,
		Description:        wo.Description,
		Category:           wo.Category,
		WorkType:           wo.WorkType,
		Priority:           wo.Priority,
		Urgency:            wo.Urgency,
		Status:             wo.Status,
		ApprovalStatus:     wo.ApprovalStatus,
		Phase:              wo.Phase,
		ProgressPercentage: wo.ProgressPercentage,
		RequestDate:        wo.RequestDate,
		ActualStartDate:    wo.ActualStartDate,
		ActualEndDate:      wo.ActualEndDate,
		AssignedTo:         optionalIDString(wo.AssignedTo),
		AssignedTeam:       wo.AssignedTeam,
		EstimatedCost:      wo.EstimatedCost.String(),
		ActualCost:         wo.ActualCost.String(),
		QualityRating:      wo.QualityRating.String(),
		Version:            wo.Version,
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOpenWorkOrders handles GET /api/v1/work-orders?tenant_id=...
func (s *Server) GetOpenWorkOrders(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.QueryParam("tenant_id"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant_id: "+err.Error())
	}

	query, err := queries.NewGetOpenWorkOrdersQuery(tenantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	workOrders, err := s.handlers.GetOpenWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := make([]OpenWorkOrderResponse, len(workOrders))
	for i, wo := range workOrders {
		resp[i] = OpenWorkOrderResponse{
			ID:                 wo.ID.String(),
			Number:             wo.Number,
			Title:              wo.Title,
			Status:             wo.Status,
			Priority:           wo.Priority,
			Urgency:            wo.Urgency,
			Phase:              wo.Phase,
			ProgressPercentage: wo.ProgressPercentage,
			RequestDate:        wo.RequestDate,
			AssignedTo:         optionalIDString(wo.AssignedTo),
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// SubmitWorkOrder handles POST /api/v1/work-orders/:id/submit.
func (s *Server) SubmitWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	cmd, err := commands.NewSubmitWorkOrderCommand(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SubmitWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveWorkOrder handles POST /api/v1/work-orders/:id/approve.
func (s *Server) ApproveWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req ApprovalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	approverID, err := kernel.UUIDFromString(req.DeciderID)
	if err != nil {
		return badRequest(ctx, "Invalid decider_id: "+err.Error())
	}

	cmd, err := commands.NewApproveWorkOrderCommand(workOrderID, approverID, req.Notes, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if err = s.handlers.ApproveWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectWorkOrder handles POST /api/v1/work-orders/:id/reject.
func (s *Server) RejectWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req ApprovalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rejectorID, err := kernel.UUIDFromString(req.DeciderID)
	if err != nil {
		return badRequest(ctx, "Invalid decider_id: "+err.Error())
	}

	cmd, err := commands.NewRejectWorkOrderCommand(workOrderID, rejectorID, req.Notes, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if err = s.handlers.RejectWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWorkOrder handles POST /api/v1/work-orders/:id/start.
func (s *Server) StartWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req StartWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	startedAt := time.Now()
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}

	cmd, err := commands.NewStartWorkOrderCommand(workOrderID, startedAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.StartWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWorkOrder handles POST /api/v1/work-orders/:id/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req CompleteWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var qualityRating *decimal.Decimal
	if req.QualityRating != nil {
		rating, ratingErr := decimal.NewFromString(*req.QualityRating)
		if ratingErr != nil {
			return badRequest(ctx, "Invalid quality_rating: "+ratingErr.Error())
		}
		qualityRating = &rating
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	cmd, err := commands.NewCompleteWorkOrderCommand(workOrderID, req.Notes, qualityRating, completedAt)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err = s.handlers.CompleteWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelWorkOrder handles POST /api/v1/work-orders/:id/cancel.
func (s *Server) CancelWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req CancelWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id: "+err.Error())
	}

	cmd, err := commands.NewCancelWorkOrderCommand(workOrderID, actorID, req.Reason, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.handlers.CancelWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UseMaterial handles POST /api/v1/material-lines/:id/use.
func (s *Server) UseMaterial(ctx echo.Context) error {
	materialLineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid material-line id: "+err.Error())
	}

	var req UseMaterialRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	usedBy, err := kernel.UUIDFromString(req.UsedBy)
	if err != nil {
		return badRequest(ctx, "Invalid used_by: "+err.Error())
	}

	usedAt := time.Now()
	if req.UsedAt != nil {
		usedAt = *req.UsedAt
	}

	cmd, err := commands.NewUseMaterialCommand(materialLineID, quantity, usedBy, req.BatchNumber, req.Notes, usedAt)
	if err != nil {
		return badRequest(ctx, "Invalid usage data: "+err.Error())
	}

	if err = s.handlers.UseMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWorker handles POST /api/v1/work-orders/:id/assign.
func (s *Server) AssignWorker(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req AssignWorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker_id: "+err.Error())
	}

	assignmentType, err := catalog.AssignmentTypeFromString(req.AssignmentType)
	if err != nil {
		return badRequest(ctx, "Invalid assignment_type: "+err.Error())
	}

	assignedAt := time.Now()
	if req.AssignedAt != nil {
		assignedAt = *req.AssignedAt
	}

	cmd, err := commands.NewAssignWorkerCommand(workOrderID, workerID, assignmentType, req.Team, assignedAt)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.handlers.AssignWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PauseWorkOrder handles POST /api/v1/work-orders/:id/pause.
func (s *Server) PauseWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	cmd, err := commands.NewPauseWorkOrderCommand(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.PauseWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeWorkOrder handles POST /api/v1/work-orders/:id/resume.
func (s *Server) ResumeWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	cmd, err := commands.NewResumeWorkOrderCommand(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ResumeWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordProgress handles POST /api/v1/work-orders/:id/progress.
func (s *Server) RecordProgress(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req RecordProgressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reportedBy, err := kernel.UUIDFromString(req.ReportedBy)
	if err != nil {
		return badRequest(ctx, "Invalid reported_by: "+err.Error())
	}

	phase := catalog.WorkPhaseUnknown
	if req.Phase != "" {
		if phase, err = catalog.WorkPhaseFromString(req.Phase); err != nil {
			return badRequest(ctx, "Invalid phase: "+err.Error())
		}
	}

	hoursWorked, err := decimalField(req.HoursWorked)
	if err != nil {
		return badRequest(ctx, "Invalid hours_worked: "+err.Error())
	}

	reportedAt := time.Now()
	if req.ReportedAt != nil {
		reportedAt = *req.ReportedAt
	}

	cmd, err := commands.NewRecordProgressCommand(
		workOrderID,
		reportedBy,
		req.Percentage,
		phase,
		hoursWorked,
		req.WorkCompleted,
		req.WorkRemaining,
		req.Issues,
		reportedAt,
	)
	if err != nil {
		return badRequest(ctx, "Invalid progress data: "+err.Error())
	}

	if err = s.handlers.RecordProgress.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMaterialLine handles POST /api/v1/work-orders/:id/material-lines.
func (s *Server) AddMaterialLine(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	var req AddMaterialLineRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	materialID, err := kernel.UUIDFromString(req.MaterialID)
	if err != nil {
		return badRequest(ctx, "Invalid material_id: "+err.Error())
	}
	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return badRequest(ctx, "Invalid location_id: "+err.Error())
	}

	requiredQuantity, err := decimal.NewFromString(req.RequiredQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid required_quantity: "+err.Error())
	}
	unitCost, err := decimal.NewFromString(req.UnitCost)
	if err != nil {
		return badRequest(ctx, "Invalid unit_cost: "+err.Error())
	}

	materialLineID := kernel.NewUUID()
	cmd, err := commands.NewAddMaterialLineCommand(
		materialLineID,
		workOrderID,
		materialID,
		locationID,
		req.MaterialName,
		req.UnitOfMeasure,
		requiredQuantity,
		unitCost,
	)
	if err != nil {
		return badRequest(ctx, "Invalid material-line data: "+err.Error())
	}

	if err = s.handlers.AddMaterialLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddMaterialLineResponse{ID: materialLineID.String()})
}

// AllocateMaterial handles POST /api/v1/material-lines/:id/allocate.
func (s *Server) AllocateMaterial(ctx echo.Context) error {
	materialLineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid material-line id: "+err.Error())
	}

	var req AllocateMaterialRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewAllocateMaterialCommand(materialLineID, quantity)
	if err != nil {
		return badRequest(ctx, "Invalid allocation data: "+err.Error())
	}

	if err = s.handlers.AllocateMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnMaterial handles POST /api/v1/material-lines/:id/return.
func (s *Server) ReturnMaterial(ctx echo.Context) error {
	materialLineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid material-line id: "+err.Error())
	}

	var req QuantityWithReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewReturnMaterialCommand(materialLineID, quantity, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid return data: "+err.Error())
	}

	if err = s.handlers.ReturnMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordWaste handles POST /api/v1/material-lines/:id/waste.
func (s *Server) RecordWaste(ctx echo.Context) error {
	materialLineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid material-line id: "+err.Error())
	}

	var req QuantityWithReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewRecordWasteCommand(materialLineID, quantity, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid waste data: "+err.Error())
	}

	if err = s.handlers.RecordWaste.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PerformQualityCheck handles POST /api/v1/material-lines/:id/quality-check.
func (s *Server) PerformQualityCheck(ctx echo.Context) error {
	materialLineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid material-line id: "+err.Error())
	}

	var req QualityCheckRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPerformQualityCheckCommand(materialLineID, req.Passed, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid quality-check data: "+err.Error())
	}

	if err = s.handlers.PerformQualityCheck.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReverseDeduction handles POST /api/v1/deductions/:id/reverse.
func (s *Server) ReverseDeduction(ctx echo.Context) error {
	deductionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid deduction id: "+err.Error())
	}

	var req ReverseDeductionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processedBy, err := kernel.UUIDFromString(req.ProcessedBy)
	if err != nil {
		return badRequest(ctx, "Invalid processed_by: "+err.Error())
	}

	cmd, err := commands.NewReverseDeductionCommand(deductionID, processedBy, req.Reason, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid reversal data: "+err.Error())
	}

	if err = s.handlers.ReverseDeduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondToAssignment handles POST /api/v1/assignments/:id/respond.
func (s *Server) RespondToAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	var req RespondToAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRespondToAssignmentCommand(assignmentID, req.Accepted, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid response data: "+err.Error())
	}

	if err = s.handlers.RespondToAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartAssignment handles POST /api/v1/assignments/:id/start.
func (s *Server) StartAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	cmd, err := commands.NewStartAssignmentCommand(assignmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.StartAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAssignment handles POST /api/v1/assignments/:id/complete.
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	var req CompleteAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var completedBy *kernel.UUID
	if req.CompletedBy != nil {
		id, idErr := kernel.UUIDFromString(*req.CompletedBy)
		if idErr != nil {
			return badRequest(ctx, "Invalid completed_by: "+idErr.Error())
		}
		completedBy = &id
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	cmd, err := commands.NewCompleteAssignmentCommand(assignmentID, req.Notes, completedBy, completedAt)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err = s.handlers.CompleteAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EvaluateAssignment handles POST /api/v1/assignments/:id/evaluate.
func (s *Server) EvaluateAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	var req EvaluateAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	performanceRating, err := decimal.NewFromString(req.PerformanceRating)
	if err != nil {
		return badRequest(ctx, "Invalid performance_rating: "+err.Error())
	}
	qualityScore, err := decimal.NewFromString(req.QualityScore)
	if err != nil {
		return badRequest(ctx, "Invalid quality_score: "+err.Error())
	}
	timelinessScore, err := decimal.NewFromString(req.TimelinessScore)
	if err != nil {
		return badRequest(ctx, "Invalid timeliness_score: "+err.Error())
	}

	cmd, err := commands.NewEvaluateAssignmentCommand(assignmentID, performanceRating, qualityScore, timelinessScore)
	if err != nil {
		return badRequest(ctx, "Invalid evaluation data: "+err.Error())
	}

	if err = s.handlers.EvaluateAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordLaborEntry handles POST /api/v1/assignments/:id/labor-entries.
func (s *Server) RecordLaborEntry(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	var req RecordLaborEntryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	regularHours, err := decimalField(req.RegularHours)
	if err != nil {
		return badRequest(ctx, "Invalid regular_hours: "+err.Error())
	}
	overtimeHours, err := decimalField(req.OvertimeHours)
	if err != nil {
		return badRequest(ctx, "Invalid overtime_hours: "+err.Error())
	}
	hourlyRate, err := decimalField(req.HourlyRate)
	if err != nil {
		return badRequest(ctx, "Invalid hourly_rate: "+err.Error())
	}
	overtimeRate, err := decimalField(req.OvertimeRate)
	if err != nil {
		return badRequest(ctx, "Invalid overtime_rate: "+err.Error())
	}
	productivityScore, err := decimalField(req.ProductivityScore)
	if err != nil {
		return badRequest(ctx, "Invalid productivity_score: "+err.Error())
	}
	qualityScore, err := decimalField(req.QualityScore)
	if err != nil {
		return badRequest(ctx, "Invalid quality_score: "+err.Error())
	}
	safetyScore, err := decimalField(req.SafetyScore)
	if err != nil {
		return badRequest(ctx, "Invalid safety_score: "+err.Error())
	}

	cmd, err := commands.NewRecordLaborEntryCommand(commands.RecordLaborEntryCommandParams{
		AssignmentID:      assignmentID,
		WorkDate:          req.WorkDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		BreakMinutes:      req.BreakMinutes,
		RegularHours:      regularHours,
		OvertimeHours:     overtimeHours,
		HourlyRate:        hourlyRate,
		OvertimeRate:      overtimeRate,
		Description:       req.Description,
		ProductivityScore: productivityScore,
		QualityScore:      qualityScore,
		SafetyScore:       safetyScore,
	})
	if err != nil {
		return badRequest(ctx, "Invalid labor-entry data: "+err.Error())
	}

	if err = s.handlers.RecordLaborEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeductionHistory handles GET /api/v1/work-orders/:id/deductions.
func (s *Server) GetDeductionHistory(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	query, err := queries.NewGetDeductionHistoryQuery(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	records, err := s.handlers.GetDeductionHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := make([]DeductionResponse, len(records))
	for i, record := range records {
		resp[i] = DeductionResponse{
			ID:               record.ID.String(),
			MaterialLineID:   record.MaterialLineID.String(),
			MaterialID:       record.MaterialID.String(),
			LocationID:       record.LocationID.String(),
			DeductionDate:    record.DeductionDate,
			QuantityDeducted: record.QuantityDeducted.String(),
			StockBefore:      record.StockBefore.String(),
			StockAfter:       record.StockAfter.String(),
			BatchNumber:      record.BatchNumber,
			DeductionType:    record.DeductionType,
			DeductionReason:  record.DeductionReason,
			IsAutomatic:      record.IsAutomatic,
			Status:           record.Status,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetLaborCostRollup handles GET /api/v1/work-orders/:id/labor-rollup.
func (s *Server) GetLaborCostRollup(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work-order id: "+err.Error())
	}

	query, err := queries.NewGetLaborCostRollupQuery(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rollup, err := s.handlers.GetLaborCostRollup.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := LaborCostRollupResponse{
		WorkOrderID:           rollup.WorkOrderID.String(),
		TotalRegularHours:     rollup.TotalRegularHours.String(),
		TotalOvertimeHours:    rollup.TotalOvertimeHours.String(),
		TotalWorkHours:        rollup.TotalWorkHours.String(),
		TotalRegularCost:      rollup.TotalRegularCost.String(),
		TotalOvertimeCost:     rollup.TotalOvertimeCost.String(),
		TotalLaborCost:        rollup.TotalLaborCost.String(),
		WorkerCount:           rollup.WorkerCount,
		ContractorCount:       rollup.ContractorCount,
		AverageHourlyRate:     rollup.AverageHourlyRate.String(),
		InternalLaborCost:     rollup.InternalLaborCost.String(),
		ExternalLaborCost:     rollup.ExternalLaborCost.String(),
		ContractorCost:        rollup.ContractorCost.String(),
		InternalCostPercent:   rollup.InternalCostPercent.String(),
		ExternalCostPercent:   rollup.ExternalCostPercent.String(),
		ContractorCostPercent: rollup.ContractorCostPercent.String(),
	}

	return ctx.JSON(http.StatusOK, resp)
}

// decimalField parses a decimal wire field, treating an empty string as zero.
func decimalField(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a core error onto the HTTP status the client should see.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValidationFailed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrApprovalRequired),
		errors.Is(err, errs.ErrQuantityConstraintViolated):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
