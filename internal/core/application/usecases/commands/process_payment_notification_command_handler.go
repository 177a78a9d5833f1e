package commands

import (
	"context"
	"encoding/json"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/services"
	"kirim/internal/core/ports"
	"kirim/internal/pkg/errs"
)

const (
	// maxNotificationAttempts bounds webhook reprocessing before a
	// notification is parked in the dead-letter store.
	maxNotificationAttempts = 10

	retryBaseDelay = time.Second
	retryMaxDelay  = 5 * time.Minute
)

// retryDelay returns the exponential backoff delay after the given attempt:
// 1s, 2s, 4s, ... capped at five minutes.
func retryDelay(attempt int) time.Duration {
	delay := retryBaseDelay
	for i := 1; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}

// gatewayNotification is the wire shape of a payment gateway webhook.
type gatewayNotification struct {
	TransactionID     string `json:"transaction_id"`
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

// ProcessPaymentNotificationResult reports the outcome of one attempt.
type ProcessPaymentNotificationResult struct {
	InvoiceID kernel.UUID
	PublicID  string
	NewStatus invoice.Status
	Applied   bool
}

// ProcessPaymentNotificationCommandHandler is the single entry point for
// payment gateway webhooks. It authenticates the payload by signature, maps
// the gateway status to an invoice status and funnels settlements through
// the payment confirmation command. Transient failures are rescheduled on
// the retry queue with exponential backoff; exhausted notifications land in
// the dead-letter store for manual reconciliation.
type ProcessPaymentNotificationCommandHandler struct {
	uowFactory     BillingUoWFactory
	confirmHandler ConfirmPaymentCommandHandler
	retryQueue     ports.RetryQueue
	failures       ports.WebhookFailureStore
	serverKey      string
}

// NewProcessPaymentNotificationCommandHandler creates a handler for gateway
// webhooks.
func NewProcessPaymentNotificationCommandHandler(
	uowFactory BillingUoWFactory,
	confirmHandler ConfirmPaymentCommandHandler,
	retryQueue ports.RetryQueue,
	failures ports.WebhookFailureStore,
	serverKey string,
) ProcessPaymentNotificationCommandHandler {
	return ProcessPaymentNotificationCommandHandler{
		uowFactory:     uowFactory,
		confirmHandler: confirmHandler,
		retryQueue:     retryQueue,
		failures:       failures,
		serverKey:      serverKey,
	}
}

// Handle processes one webhook attempt. Malformed payloads, bad signatures
// and unknown invoices are permanent failures and are never retried; only
// infrastructure errors are rescheduled.
func (h *ProcessPaymentNotificationCommandHandler) Handle(
	ctx context.Context, cmd ProcessPaymentNotificationCommand,
) (ProcessPaymentNotificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessPaymentNotificationResult{}, err
	}

	notification, err := h.parse(cmd.Payload())
	if err != nil {
		return ProcessPaymentNotificationResult{}, err
	}

	if err = notification.VerifySignature(h.serverKey); err != nil {
		return ProcessPaymentNotificationResult{}, err
	}

	publicID, err := notification.InvoicePublicID()
	if err != nil {
		return ProcessPaymentNotificationResult{}, err
	}

	result, err := h.apply(ctx, notification, publicID)
	if err != nil && errs.KindOf(err) == errs.KindInternal {
		if scheduleErr := h.scheduleRetry(ctx, cmd, err); scheduleErr != nil {
			return ProcessPaymentNotificationResult{}, scheduleErr
		}
	}
	return result, err
}

func (h *ProcessPaymentNotificationCommandHandler) parse(payload []byte) (services.PaymentNotification, error) {
	var wire gatewayNotification
	if err := json.Unmarshal(payload, &wire); err != nil {
		return services.PaymentNotification{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	return services.PaymentNotification{
		TransactionID:     wire.TransactionID,
		TransactionTime:   wire.TransactionTime,
		TransactionStatus: wire.TransactionStatus,
		StatusCode:        wire.StatusCode,
		GrossAmount:       wire.GrossAmount,
		PaymentType:       wire.PaymentType,
		OrderRef:          wire.OrderID,
		FraudStatus:       wire.FraudStatus,
		SignatureKey:      wire.SignatureKey,
	}, nil
}

// apply inspects the current invoice state and applies the target status.
// Notifications that would not change anything succeed as no-ops so the
// gateway stops redelivering them.
func (h *ProcessPaymentNotificationCommandHandler) apply(
	ctx context.Context, notification services.PaymentNotification, publicID string,
) (ProcessPaymentNotificationResult, error) {
	current, err := h.loadInvoice(ctx, publicID)
	if err != nil {
		return ProcessPaymentNotificationResult{}, err
	}

	result := ProcessPaymentNotificationResult{
		InvoiceID: current.ID(),
		PublicID:  publicID,
		NewStatus: current.Status(),
	}

	switch target := notification.TargetStatus(); target {
	case invoice.StatusPaid:
		if current.Status() == invoice.StatusPaid {
			return result, nil
		}
		return h.confirm(ctx, notification, publicID, result)

	case invoice.StatusCancelled:
		if current.Status().IsTerminal() {
			return result, nil
		}
		return h.cancel(ctx, publicID, result)

	default:
		return result, nil
	}
}

func (h *ProcessPaymentNotificationCommandHandler) loadInvoice(
	ctx context.Context, publicID string,
) (*invoice.Invoice, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.InvoiceRepository().GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return current, nil
}

func (h *ProcessPaymentNotificationCommandHandler) confirm(
	ctx context.Context, notification services.PaymentNotification, publicID string,
	result ProcessPaymentNotificationResult,
) (ProcessPaymentNotificationResult, error) {
	confirmCmd, err := NewConfirmPaymentCommand(publicID, h.paidAt(notification))
	if err != nil {
		return result, err
	}

	confirmed, err := h.confirmHandler.Handle(ctx, confirmCmd)
	if err != nil {
		// A concurrent confirmation won the race; the payment is in.
		if errs.KindOf(err) == errs.KindConflict {
			result.NewStatus = invoice.StatusPaid
			return result, nil
		}
		return result, err
	}

	result.NewStatus = confirmed.NewStatus
	result.Applied = true
	return result, nil
}

func (h *ProcessPaymentNotificationCommandHandler) cancel(
	ctx context.Context, publicID string, result ProcessPaymentNotificationResult,
) (ProcessPaymentNotificationResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.InvoiceRepository().GetByPublicID(ctx, publicID)
	if err != nil {
		return result, err
	}

	if err = current.MarkCancelled(); err != nil {
		return result, err
	}

	if err = uow.InvoiceRepository().Update(ctx, current); err != nil {
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	result.NewStatus = invoice.StatusCancelled
	result.Applied = true
	return result, nil
}

// paidAt parses the gateway's transaction time, falling back to the
// processing time when it is absent or malformed.
func (h *ProcessPaymentNotificationCommandHandler) paidAt(notification services.PaymentNotification) time.Time {
	if ts, err := time.Parse("2006-01-02 15:04:05", notification.TransactionTime); err == nil {
		return ts.UTC()
	}
	return time.Now().UTC()
}

// scheduleRetry re-enqueues the notification with backoff, or parks it in
// the dead-letter store once attempts are exhausted.
func (h *ProcessPaymentNotificationCommandHandler) scheduleRetry(
	ctx context.Context, cmd ProcessPaymentNotificationCommand, cause error,
) error {
	if cmd.Attempt() >= maxNotificationAttempts {
		return h.failures.Add(ctx, ports.WebhookFailure{
			ID:       cmd.TaskID(),
			Payload:  cmd.Payload(),
			Reason:   cause.Error(),
			Attempts: cmd.Attempt(),
			FailedAt: time.Now().UTC(),
		})
	}

	task := ports.RetryTask{
		ID:      cmd.TaskID(),
		Payload: cmd.Payload(),
		Attempt: cmd.Attempt() + 1,
	}
	return h.retryQueue.Enqueue(ctx, task, time.Now().UTC().Add(retryDelay(cmd.Attempt())))
}
