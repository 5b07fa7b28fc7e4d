package jobs

import (
	"context"
	"log/slog"
	"time"

	"workorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueEscalationJob periodically raises the priority of open work orders
// whose urgency response window elapsed without work starting. Runs every
// minute so an overdue order is escalated shortly after its deadline passes.
type OverdueEscalationJob struct {
	handler commands.EscalateOverdueCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueEscalationJob creates a new job for escalating overdue work orders.
func NewOverdueEscalationJob(handler commands.EscalateOverdueCommandHandler, logger *slog.Logger) *OverdueEscalationJob {
	return &OverdueEscalationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_escalation_job"),
	}
}

// Start begins the overdue escalation job to run every minute.
func (j *OverdueEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewEscalateOverdueCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to create escalation command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue escalation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue escalation job started (running every minute)")
	return nil
}

// Stop stops the overdue escalation job.
func (j *OverdueEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue escalation job stopped")
}
