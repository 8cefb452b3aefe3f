// Package jobs provides scheduled background tasks for the courier service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AssignmentSweepJob runs the assignment of free orders for every courier on a schedule.
// Assignment is otherwise only triggered by POST /orders/assign, so the sweep picks up
// orders imported after a courier's last request.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.AssignmentSweepSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field ("0 */5 * * * *") or
// descriptors ("@every 30s"). An empty schedule disables the sweep. Overlapping runs are
// skipped rather than queued.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. Failures for single couriers
// (for example a stored vehicle type that is no longer supported) do not stop the sweep.
package jobs
