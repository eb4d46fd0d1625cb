// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order progression.
//
// # Available Jobs
//
// 1. OrderProgressJob - Runs every 15 seconds to advance undelivered orders through
// their lifecycle, attaching a transit waypoint when an order leaves the kitchen
// and refreshing delivery estimates on every transition
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, logger)
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
// The progress job uses the cron expression "*/15 * * * * *", advancing every
// undelivered order one stage per tick. A freshly placed order therefore reaches
// the delivered state in under a minute.
//
// # Error Handling
//
//   - Progress job logs all errors as they indicate system issues
//   - Failed job starts will stop any already running jobs
package jobs
