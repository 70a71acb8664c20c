// Package jobs provides the background tasks of the shop service.
//
// # Available Jobs
//
// RetentionJob deletes orders older than the order retention window (7 days by default)
// and notifications older than the notification retention window (3 days by default).
// It runs once when started and then on its cron schedule, "@every 24h" by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatcher, retentionJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll(shutdownCtx)
//
// # Error Handling
//
// The two sweeps are independent: each has its own transaction and its own failure
// counter, and neither failure stops the schedule. Overlapping passes are skipped.
package jobs
