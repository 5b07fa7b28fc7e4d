package commands

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RecordProgressCommandHandler appends a snapshot to the work order's
// progress journal and mirrors the result onto the aggregate. The journal is
// the sole writer of the aggregate's live progress/phase fields; reaching 100
// completes the work order. Journal append and aggregate update are one
// transaction.
type RecordProgressCommandHandler struct {
	uowFactory ProgressUoWFactory
	ids        kernel.IDGenerator
}

// NewRecordProgressCommandHandler creates a handler for progress reports.
func NewRecordProgressCommandHandler(uowFactory ProgressUoWFactory, ids kernel.IDGenerator) RecordProgressCommandHandler {
	return RecordProgressCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the progress report. The new entry anchors its
// monotonicity and running-sum checks on the latest recorded entry of the
// same work order.
func (h RecordProgressCommandHandler) Handle(ctx context.Context, cmd RecordProgressCommand) error {
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
	progressRepo := uow.ProgressRepository()

	aggregate, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	previousPercentage := 0
	previousCumulative := decimal.Zero
	latest, err := progressRepo.GetLatestByWorkOrder(ctx, cmd.WorkOrderID())
	switch {
	case err == nil:
		previousPercentage = latest.Percentage()
		previousCumulative = latest.CumulativeHours()
	case errors.Is(err, errs.ErrObjectNotFound):
		// first report for this work order
	default:
		return err
	}

	entry, err := progress.NewProgressEntry(progress.NewProgressEntryParams{
		ID:                      h.ids.NewID(),
		TenantID:                aggregate.TenantID(),
		WorkOrderID:             aggregate.ID(),
		ReportedBy:              cmd.ReportedBy(),
		ProgressDate:            cmd.ReportedAt(),
		Percentage:              cmd.Percentage(),
		Phase:                   cmd.Phase(),
		HoursWorked:             cmd.HoursWorked(),
		PreviousPercentage:      previousPercentage,
		PreviousCumulativeHours: previousCumulative,
		WorkCompleted:           cmd.WorkCompleted(),
		WorkRemaining:           cmd.WorkRemaining(),
		Issues:                  cmd.Issues(),
	})
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProgress(entry.Percentage(), entry.Phase(), cmd.ReportedAt()); err != nil {
		return err
	}

	if err = progressRepo.Add(ctx, entry); err != nil {
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
