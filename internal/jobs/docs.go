// Package jobs provides scheduled background tasks for the work-order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the maintenance service.
//
// # Available Jobs
//
// 1. OverdueEscalationJob - Runs every minute to raise the priority of open work orders whose urgency response window has elapsed
// 2. CostReconciliationJob - Runs every ten minutes to recompute actual costs from the material and labor ledgers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(escalateOverdueHandler, reconcileCostsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The escalation job uses "0 * * * * *" (every minute) so overdue orders are
// bumped shortly after their response deadline passes. The reconciliation job
// uses "0 */10 * * * *" (every ten minutes); the stored cost figures are
// derived mirrors of the ledgers, so a tighter schedule buys nothing.
//
// # Error Handling
//
// - Both jobs log failures and retry on the next tick; a sweep is idempotent
// - Failed job starts will stop any already running jobs
package jobs
