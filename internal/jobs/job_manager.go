package jobs

import (
	"fmt"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueEscalationJob  *OverdueEscalationJob
	costReconciliationJob *CostReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	escalateOverdueHandler commands.EscalateOverdueCommandHandler,
	reconcileCostsHandler commands.ReconcileCostsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueEscalationJob:  NewOverdueEscalationJob(escalateOverdueHandler, logger),
		costReconciliationJob: NewCostReconciliationJob(reconcileCostsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueEscalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue escalation job: %w", err)
	}

	if err := jm.costReconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueEscalationJob.Stop()
		return fmt.Errorf("failed to start cost reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.costReconciliationJob.Stop()
	jm.overdueEscalationJob.Stop()
}
