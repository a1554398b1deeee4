package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentJob runs the assignment engine over the pending order queue on a
// schedule. Each run processes every pending order; per-order failures are
// recorded in the ledger by the handler, so the job only logs run summaries
// and infrastructure errors.
type AssignmentJob struct {
	handler  commands.RunAssignmentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentJob creates a job running batch assignments on the given cron
// schedule with seconds precision, for example "*/30 * * * * *".
func NewAssignmentJob(
	handler commands.RunAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentJob {
	return &AssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "assignment_job"),
	}
}

// Start schedules the job and begins execution.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. Runs already in flight finish on their own.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}

func (j *AssignmentJob) run() {
	ctx := context.Background()
	cmd := commands.NewRunAssignmentsCommand()

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment run failed", "error", err)
		return
	}

	if result.Processed == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Assignment run finished",
		"processed", result.Processed,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"errored", result.Errored,
	)

	for _, attemptErr := range result.Errors {
		j.logger.ErrorContext(ctx, "Assignment attempt errored",
			"order_id", attemptErr.OrderID.String(),
			"error", attemptErr.Err,
		)
	}
}
