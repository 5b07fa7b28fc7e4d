package commands

import (
	"context"
)

// CompleteAssignmentCommandHandler closes an in-progress assignment at 100%
// work percentage.
type CompleteAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCompleteAssignmentCommandHandler creates a handler for assignment
// completion.
func NewCompleteAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the completion command.
func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) error {
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

	if err = assignment.Complete(cmd.Notes(), cmd.CompletedBy(), cmd.CompletedAt()); err != nil {
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
