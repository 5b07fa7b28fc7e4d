package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CostReconciliationJob periodically recomputes the actual cost of every open
// work order from its material and labor ledgers. The stored figure on the
// aggregate is a derived mirror of the ledgers, so the sweep only corrects
// drift; a clean system is a no-op pass.
type CostReconciliationJob struct {
	handler commands.ReconcileCostsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCostReconciliationJob creates a new job for reconciling work-order costs.
func NewCostReconciliationJob(handler commands.ReconcileCostsCommandHandler, logger *slog.Logger) *CostReconciliationJob {
	return &CostReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cost_reconciliation_job"),
	}
}

// Start begins the cost reconciliation job to run every ten minutes.
func (j *CostReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileCostsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to create reconciliation command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cost reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cost reconciliation job started (running every ten minutes)")
	return nil
}

// Stop stops the cost reconciliation job.
func (j *CostReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cost reconciliation job stopped")
}
