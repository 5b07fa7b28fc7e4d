package commands

import (
	"context"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
)

// AssignWorkerCommandHandler puts a worker on a work order. It advances a
// PENDING order to SCHEDULED, opens a new primary assignment awaiting the
// worker's response, and retires any previous primary assignment as
// REASSIGNED, all in one transaction.
type AssignWorkerCommandHandler struct {
	uowFactory AssignmentUoWFactory
	ids        kernel.IDGenerator
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
func NewAssignWorkerCommandHandler(uowFactory AssignmentUoWFactory, ids kernel.IDGenerator) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the worker assignment command.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
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

	workOrderRepo := uow.WorkOrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignWorker(cmd.WorkerID(), cmd.Team(), cmd.AssignedAt()); err != nil {
		return err
	}

	existing, err := assignmentRepo.GetByWorkOrder(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}
	for _, previous := range existing {
		if previous.Role() != catalog.RolePrimaryTechnician || previous.Status().IsTerminal() {
			continue
		}
		if err = previous.Reassign(); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	assignment, err := labor.NewAssignment(
		h.ids.NewID(),
		aggregate.TenantID(),
		aggregate.ID(),
		cmd.WorkerID(),
		catalog.RolePrimaryTechnician,
		cmd.AssignmentType(),
		cmd.AssignedAt(),
	)
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, assignment); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
