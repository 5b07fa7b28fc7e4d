package commands

import (
	"context"
)

// EscalateOverdueCommandHandler bumps the priority of every open work order
// whose response deadline has passed without work starting. Each urgency
// carries a response window; once it elapses the order climbs one priority
// step per sweep until work begins or the priority tops out.
type EscalateOverdueCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewEscalateOverdueCommandHandler creates a handler for the overdue
// escalation sweep.
func NewEscalateOverdueCommandHandler(uowFactory WorkOrderUoWFactory) EscalateOverdueCommandHandler {
	return EscalateOverdueCommandHandler{uowFactory: uowFactory}
}

// Handle processes the escalation sweep command.
func (h EscalateOverdueCommandHandler) Handle(ctx context.Context, cmd EscalateOverdueCommand) error {
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

	repo := uow.WorkOrderRepository()

	aggregates, err := repo.GetAllOpen(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		if !aggregate.IsResponseOverdue(cmd.Now()) {
			continue
		}

		if err = aggregate.Escalate(); err != nil {
			return err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
