package commands

import (
	"context"
)

// PerformQualityCheckCommandHandler records an inspection result on a
// material line that requires a quality check.
type PerformQualityCheckCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewPerformQualityCheckCommandHandler creates a handler for quality checks.
func NewPerformQualityCheckCommandHandler(uowFactory MaterialUoWFactory) PerformQualityCheckCommandHandler {
	return PerformQualityCheckCommandHandler{uowFactory: uowFactory}
}

// Handle processes the quality check command.
func (h PerformQualityCheckCommandHandler) Handle(ctx context.Context, cmd PerformQualityCheckCommand) error {
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

	materialRepo := uow.MaterialRepository()

	line, err := materialRepo.Get(ctx, cmd.MaterialLineID())
	if err != nil {
		return err
	}

	if err = line.PerformQualityCheck(cmd.Passed(), cmd.Notes()); err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, line); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
