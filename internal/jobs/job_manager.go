package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentSweepJob *AssignmentSweepJob
}

// NewJobManager creates a job manager. An empty sweepSchedule disables the assignment
// sweep, leaving assignment to explicit requests only.
func NewJobManager(sweepHandler SweepAssignmentsHandler, sweepSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if sweepSchedule != "" {
		jm.assignmentSweepJob = NewAssignmentSweepJob(sweepHandler, sweepSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.assignmentSweepJob == nil {
		return nil
	}
	if err := jm.assignmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.assignmentSweepJob != nil {
		jm.assignmentSweepJob.Stop()
	}
}
