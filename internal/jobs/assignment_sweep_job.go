package jobs

import (
	"context"
	"log/slog"

	"courierapi/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SweepAssignmentsHandler runs one assignment pass over every courier.
type SweepAssignmentsHandler interface {
	Handle(ctx context.Context, cmd commands.SweepAssignmentsCommand) (int, error)
}

// AssignmentSweepJob periodically assigns free orders to every courier, so that orders
// imported after a courier's last assignment request do not wait for the next one.
type AssignmentSweepJob struct {
	handler  SweepAssignmentsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentSweepJob creates the sweep job. schedule is a cron expression with a leading
// seconds field, e.g. "*/30 * * * * *", or a descriptor such as "@every 1m".
// A run that is still in progress when the next one is due makes the next one skip.
func NewAssignmentSweepJob(handler SweepAssignmentsHandler, schedule string, logger *slog.Logger) *AssignmentSweepJob {
	logger = logger.With("component", "assignment_sweep_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))

	return &AssignmentSweepJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Start schedules the job. It fails for an unparsable schedule.
func (j *AssignmentSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment sweep job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running sweep to finish.
func (j *AssignmentSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Assignment sweep job stopped")
}

func (j *AssignmentSweepJob) run() {
	ctx := context.Background()

	couriers, err := j.handler.Handle(ctx, commands.NewSweepAssignmentsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment sweep failed", "error", err, "couriers", couriers)
		return
	}
	j.logger.DebugContext(ctx, "Assignment sweep finished", "couriers", couriers)
}
