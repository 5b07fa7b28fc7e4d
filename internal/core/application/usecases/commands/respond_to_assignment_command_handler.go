package commands

import (
	"context"
)

// RespondToAssignmentCommandHandler applies a worker's accept or decline to
// the assignment.
type RespondToAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRespondToAssignmentCommandHandler creates a handler for assignment
// responses.
func NewRespondToAssignmentCommandHandler(uowFactory AssignmentUoWFactory) RespondToAssignmentCommandHandler {
	return RespondToAssignmentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the response command.
func (h RespondToAssignmentCommandHandler) Handle(ctx context.Context, cmd RespondToAssignmentCommand) error {
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

	if cmd.Accepted() {
		err = assignment.Accept(cmd.Notes())
	} else {
		err = assignment.Decline(cmd.Notes())
	}
	if err != nil {
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
