package ports

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/order"
)

// TrackingNotifier pushes order status changes to tracking subscribers.
// Delivery is best effort and happens after the owning transaction commits;
// implementations must never fail the calling operation.
type TrackingNotifier interface {
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order)
}

// CounterStore is a shared atomic counter with expiry, used for
// fixed-window rate limiting across instances.
type CounterStore interface {
	// IncrWithTTL atomically increments the counter at key and returns the
	// new value. The key's TTL is set on first increment.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RetryTask is a deferred webhook-processing attempt.
type RetryTask struct {
	// ID identifies the task across attempts; retries of the same
	// notification share an ID.
	ID string

	// Payload is the raw notification body to reprocess.
	Payload []byte

	// Attempt counts processing attempts so far, starting at 1.
	Attempt int
}

// RetryQueue holds failed webhook notifications for delayed reprocessing.
type RetryQueue interface {
	// Enqueue schedules a task to become due at runAt.
	Enqueue(ctx context.Context, task RetryTask, runAt time.Time) error

	// PopDue atomically removes and returns up to limit tasks due at now.
	PopDue(ctx context.Context, now time.Time, limit int) ([]RetryTask, error)
}

// WebhookFailure is a notification whose retries were exhausted, parked for
// manual reconciliation.
type WebhookFailure struct {
	ID       string
	Payload  []byte
	Reason   string
	Attempts int
	FailedAt time.Time
}

// WebhookFailureStore is the dead-letter sink for exhausted notifications.
type WebhookFailureStore interface {
	Add(ctx context.Context, failure WebhookFailure) error
}
