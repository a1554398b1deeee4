// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the assignment engine.
//
// # Available Jobs
//
// 1. AssignmentJob - Runs on a configurable schedule to assign pending orders
// to available partners
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runAssignmentsHandler, "*/30 * * * * *", logger)
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
// The assignment job uses cron expressions with seconds precision, so
// "*/30 * * * * *" runs every thirty seconds. The schedule comes from
// configuration; pending orders that miss one run are picked up by the next.
//
// # Error Handling
//
//   - Per-order assignment failures are recorded in the ledger by the command
//     handler and reported in the run summary, not treated as job errors
//   - Infrastructure errors are logged and the job keeps its schedule
//   - Failed job starts will stop any already running jobs
package jobs
