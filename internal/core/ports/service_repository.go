package ports

import (
	"context"

	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/kernel"
)

// ServiceRepository defines the read contract for the delivery-service
// catalog. The core only prices against services; catalog management is
// handled elsewhere.
type ServiceRepository interface {
	// Get retrieves a delivery service with its rate card.
	Get(ctx context.Context, id kernel.UUID) (*catalog.DeliveryService, error)
}
