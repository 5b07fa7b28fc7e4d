package commands

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler handles the business logic for opening a work
// order. It consults the validation oracle, draws the next work-order number
// for the tenant and period, and persists the new aggregate in DRAFT status.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	validator  ports.Validator
	numbers    ports.WorkOrderNumberGenerator
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	validator ports.Validator,
	numbers ports.WorkOrderNumberGenerator,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		numbers:    numbers,
	}
}

// Handle processes the work-order creation command. The oracle's verdict is
// checked before anything is written; a negative verdict surfaces as
// ErrValidationFailed with the per-field details.
func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ok, fieldErrors := h.validator.Validate("work_order", map[string]any{
		"title":       cmd.Title(),
		"description": cmd.Description(),
		"category":    cmd.Category().String(),
		"workType":    cmd.WorkType().String(),
		"priority":    cmd.Priority().String(),
		"urgency":     cmd.Urgency().String(),
	})
	if !ok {
		return errs.NewValidationFailedError("work_order", fieldErrors)
	}

	number, err := h.numbers.Next(ctx, cmd.TenantID(), cmd.RequestDate())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(),
		cmd.TenantID(),
		number,
		cmd.Title(),
		cmd.Description(),
		cmd.Category(),
		cmd.WorkType(),
		cmd.Priority(),
		cmd.Urgency(),
		cmd.RequestDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
