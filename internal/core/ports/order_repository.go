// Package ports defines repository and collaborator interfaces for the
// application core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their stops; field reports are appended
// as immutable rows referencing the order.
type OrderRepository interface {
	// Add persists a new order aggregate with its stops.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, complete
	// with all of its stops. Implementations lock the order row for the
	// transaction so concurrent status transitions serialize.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID string) (*order.Order, error)

	// AddReport appends a field report for an order.
	AddReport(ctx context.Context, report *order.Report) error
}
