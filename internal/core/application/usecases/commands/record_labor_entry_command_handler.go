package commands

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
)

// RecordLaborEntryCommandHandler appends an immutable labor entry to the
// assignment's timesheet and folds its hours into the assignment's actual
// hours, so the running total and the entry journal move together.
type RecordLaborEntryCommandHandler struct {
	uowFactory AssignmentUoWFactory
	ids        kernel.IDGenerator
}

// NewRecordLaborEntryCommandHandler creates a handler for labor entries.
func NewRecordLaborEntryCommandHandler(uowFactory AssignmentUoWFactory, ids kernel.IDGenerator) RecordLaborEntryCommandHandler {
	return RecordLaborEntryCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the labor entry command.
func (h RecordLaborEntryCommandHandler) Handle(ctx context.Context, cmd RecordLaborEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	assignment, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	entry, err := labor.NewLaborEntry(labor.NewLaborEntryParams{
		ID:           h.ids.NewID(),
		TenantID:     assignment.TenantID(),
		WorkOrderID:  assignment.WorkOrderID(),
		AssignmentID: assignment.ID(),
		WorkerID:     assignment.WorkerID(),

		WorkDate:     cmd.WorkDate(),
		StartTime:    cmd.StartTime(),
		EndTime:      cmd.EndTime(),
		BreakMinutes: cmd.BreakMinutes(),

		RegularHours:  cmd.RegularHours(),
		OvertimeHours: cmd.OvertimeHours(),
		HourlyRate:    cmd.HourlyRate(),
		OvertimeRate:  cmd.OvertimeRate(),

		Description: cmd.Description(),

		ProductivityScore: cmd.ProductivityScore(),
		QualityScore:      cmd.QualityScore(),
		SafetyScore:       cmd.SafetyScore(),
	})
	if err != nil {
		return err
	}

	if err = assignment.RecordActualHours(assignment.ActualHours().Add(entry.TotalHours())); err != nil {
		return err
	}

	if err = assignmentRepo.AddLaborEntry(ctx, entry); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
