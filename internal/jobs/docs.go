// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order acceptance.
//
// # Available Jobs
//
// 1. StuckOrderReportJob - Runs every minute to surface orders stranded in
// the accepted status and to count orders parked in acceptance failure
// statuses
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stuckOrdersHandler, failureCountsHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job only reads; failures are logged and the next tick retries.
// Failed job starts will stop any already running jobs.
package jobs
