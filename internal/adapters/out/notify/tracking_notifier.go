// Package notify implements the tracking notifier collaborator. The current
// implementation publishes status changes to the log stream; a push channel
// can replace it behind the same port.
package notify

import (
	"context"

	"kirim/internal/core/domain/model/order"

	"github.com/rs/zerolog"
)

// LogTrackingNotifier reports order status changes through structured logs.
// Notification is best effort: it has no error path back to the caller.
type LogTrackingNotifier struct {
	logger zerolog.Logger
}

// NewLogTrackingNotifier creates a log-backed tracking notifier.
func NewLogTrackingNotifier(logger zerolog.Logger) *LogTrackingNotifier {
	return &LogTrackingNotifier{logger: logger}
}

// NotifyOrderStatusChanged publishes the order's current status under its
// public tracking ID.
func (n *LogTrackingNotifier) NotifyOrderStatusChanged(_ context.Context, aggregate *order.Order) {
	if aggregate == nil {
		return
	}

	n.logger.Info().
		Str("trackingId", aggregate.TrackingID()).
		Str("status", aggregate.Status().String()).
		Msg("order status changed")
}
