package jobs

import (
	"context"
	"time"

	"kirim/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// overdueSweepSchedule fires at 03:00 UTC every night.
const overdueSweepSchedule = "0 0 3 * * *"

// OverdueSweepJob flips pending invoices past their due date to overdue,
// demoting tenants with an unpaid subscription to past-due standing.
type OverdueSweepJob struct {
	handler commands.MarkOverdueInvoicesCommandHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewOverdueSweepJob creates the nightly overdue sweep job.
func NewOverdueSweepJob(
	handler commands.MarkOverdueInvoicesCommandHandler, logger zerolog.Logger,
) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With().Str("component", "overdue_sweep_job").Logger(),
	}
}

// Start schedules the job.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("overdue sweep job started")
	return nil
}

// Stop stops the job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("overdue sweep job stopped")
}

func (j *OverdueSweepJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewMarkOverdueInvoicesCommand(time.Now().UTC())
	if err != nil {
		j.logger.Error().Err(err).Msg("overdue sweep command rejected")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error().Err(err).Msg("overdue sweep failed")
		return
	}

	if result.MarkedOverdue > 0 {
		j.logger.Info().Int("markedOverdue", result.MarkedOverdue).Msg("overdue sweep finished")
	}
}
