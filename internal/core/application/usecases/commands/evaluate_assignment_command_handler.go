package commands

import (
	"context"
)

// EvaluateAssignmentCommandHandler records the evaluation scores on a
// completed assignment.
type EvaluateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewEvaluateAssignmentCommandHandler creates a handler for assignment
// evaluation.
func NewEvaluateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) EvaluateAssignmentCommandHandler {
	return EvaluateAssignmentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the evaluation command.
func (h EvaluateAssignmentCommandHandler) Handle(ctx context.Context, cmd EvaluateAssignmentCommand) error {
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

	if err = assignment.Evaluate(cmd.PerformanceRating(), cmd.QualityScore(), cmd.TimelinessScore()); err != nil {
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
