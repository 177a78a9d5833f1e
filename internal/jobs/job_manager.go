package jobs

import (
	"fmt"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/ports"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	monthlyInvoiceJob *MonthlyInvoiceJob
	overdueSweepJob   *OverdueSweepJob
	webhookRetryJob   *WebhookRetryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	generateInvoicesHandler commands.GenerateMonthlyInvoicesCommandHandler,
	markOverdueHandler commands.MarkOverdueInvoicesCommandHandler,
	notificationHandler commands.ProcessPaymentNotificationCommandHandler,
	retryQueue ports.RetryQueue,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		monthlyInvoiceJob: NewMonthlyInvoiceJob(generateInvoicesHandler, logger),
		overdueSweepJob:   NewOverdueSweepJob(markOverdueHandler, logger),
		webhookRetryJob:   NewWebhookRetryJob(notificationHandler, retryQueue, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.monthlyInvoiceJob.Start(); err != nil {
		return fmt.Errorf("failed to start monthly invoice job: %w", err)
	}

	if err := jm.overdueSweepJob.Start(); err != nil {
		jm.monthlyInvoiceJob.Stop()
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}

	if err := jm.webhookRetryJob.Start(); err != nil {
		jm.overdueSweepJob.Stop()
		jm.monthlyInvoiceJob.Stop()
		return fmt.Errorf("failed to start webhook retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.webhookRetryJob.Stop()
	jm.overdueSweepJob.Stop()
	jm.monthlyInvoiceJob.Stop()
}
