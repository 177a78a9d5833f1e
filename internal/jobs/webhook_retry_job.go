package jobs

import (
	"context"
	"time"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	// webhookRetrySchedule drains the queue every five seconds.
	webhookRetrySchedule = "*/5 * * * * *"

	// webhookRetryBatchSize bounds how many due tasks one drain picks up.
	webhookRetryBatchSize = 50
)

// WebhookRetryJob reprocesses payment notifications whose earlier attempts
// hit infrastructure failures. The notification handler reschedules or
// dead-letters on its own, so a failed attempt here needs no follow-up.
type WebhookRetryJob struct {
	handler    commands.ProcessPaymentNotificationCommandHandler
	retryQueue ports.RetryQueue
	cron       *cron.Cron
	logger     zerolog.Logger
}

// NewWebhookRetryJob creates the retry queue drain job.
func NewWebhookRetryJob(
	handler commands.ProcessPaymentNotificationCommandHandler,
	retryQueue ports.RetryQueue,
	logger zerolog.Logger,
) *WebhookRetryJob {
	return &WebhookRetryJob{
		handler:    handler,
		retryQueue: retryQueue,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With().Str("component", "webhook_retry_job").Logger(),
	}
}

// Start schedules the job.
func (j *WebhookRetryJob) Start() error {
	_, err := j.cron.AddFunc(webhookRetrySchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("webhook retry job started")
	return nil
}

// Stop stops the job.
func (j *WebhookRetryJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("webhook retry job stopped")
}

func (j *WebhookRetryJob) run() {
	ctx := context.Background()

	tasks, err := j.retryQueue.PopDue(ctx, time.Now().UTC(), webhookRetryBatchSize)
	if err != nil {
		j.logger.Error().Err(err).Msg("retry queue drain failed")
		return
	}

	for _, task := range tasks {
		cmd, cmdErr := commands.NewProcessPaymentNotificationCommand(task.ID, task.Payload, task.Attempt)
		if cmdErr != nil {
			j.logger.Error().Err(cmdErr).Str("taskId", task.ID).Msg("retry task rejected")
			continue
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.Warn().Err(handleErr).
				Str("taskId", task.ID).
				Int("attempt", task.Attempt).
				Msg("notification retry failed")
		}
	}
}
