// Package jobs provides the scheduled background tasks of the billing and
// reconciliation pipeline, implemented on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. MonthlyInvoiceJob - issues one subscription invoice per billable tenant
// at the start of each month
// 2. OverdueSweepJob - flips pending invoices past their due date to overdue
// every night
// 3. WebhookRetryJob - drains due payment notifications from the retry queue
// every few seconds
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		generateInvoicesHandler, markOverdueHandler,
//		notificationHandler, retryQueue, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal().Err(err).Msg("failed to start jobs")
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Business errors inside a run are logged and swallowed; one bad tenant or
// notification never stops a sweep. Failed job starts stop any already
// running jobs.
package jobs
