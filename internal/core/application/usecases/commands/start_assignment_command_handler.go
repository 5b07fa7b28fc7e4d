package commands

import (
	"context"
)

// StartAssignmentCommandHandler moves an accepted assignment into progress.
type StartAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewStartAssignmentCommandHandler creates a handler for starting
// assignments.
func NewStartAssignmentCommandHandler(uowFactory AssignmentUoWFactory) StartAssignmentCommandHandler {
	return StartAssignmentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the start command.
func (h StartAssignmentCommandHandler) Handle(ctx context.Context, cmd StartAssignmentCommand) error {
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

	if err = assignment.StartWork(); err != nil {
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
