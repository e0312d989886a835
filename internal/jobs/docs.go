// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the kitchen monitor.
//
// # Available Jobs
//
// 1. OrderWatchJob - Scans the order store every few seconds and logs status
// changes and newly arrived orders since the previous scan.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listHandler, detector, 10, logger)
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
// The watch job uses the cron expression "@every Ns" where N comes from
// configuration. The first scan only records a baseline, so a restart never
// replays the whole store as fresh notifications.
//
// # Error Handling
//
// Scan failures are logged and the next tick retries from the last good
// baseline; a single failed scan never stops the job.
package jobs
