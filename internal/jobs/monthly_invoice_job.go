package jobs

import (
	"context"
	"time"

	"kirim/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// monthlyInvoiceSchedule fires at 02:00 UTC on the first of every month.
const monthlyInvoiceSchedule = "0 0 2 1 * *"

// MonthlyInvoiceJob issues the month's subscription invoices. Generation is
// idempotent per tenant and period, so an extra run after a restart is
// harmless.
type MonthlyInvoiceJob struct {
	handler commands.GenerateMonthlyInvoicesCommandHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewMonthlyInvoiceJob creates the monthly subscription billing job.
func NewMonthlyInvoiceJob(
	handler commands.GenerateMonthlyInvoicesCommandHandler, logger zerolog.Logger,
) *MonthlyInvoiceJob {
	return &MonthlyInvoiceJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With().Str("component", "monthly_invoice_job").Logger(),
	}
}

// Start schedules the job.
func (j *MonthlyInvoiceJob) Start() error {
	_, err := j.cron.AddFunc(monthlyInvoiceSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("monthly invoice job started")
	return nil
}

// Stop stops the job.
func (j *MonthlyInvoiceJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("monthly invoice job stopped")
}

func (j *MonthlyInvoiceJob) run() {
	ctx := context.Background()
	now := time.Now().UTC()

	cmd, err := commands.NewGenerateMonthlyInvoicesCommand(now.Year(), now.Month())
	if err != nil {
		j.logger.Error().Err(err).Msg("monthly invoice command rejected")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error().Err(err).Msg("monthly invoice run failed")
		return
	}

	j.logger.Info().
		Int("generated", result.Generated).
		Int("skipped", result.Skipped).
		Str("period", now.Format("2006-01")).
		Msg("monthly invoice run finished")
}
