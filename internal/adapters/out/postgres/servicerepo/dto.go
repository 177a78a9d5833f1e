// Package servicerepo reads the delivery-service catalog. The core only
// prices against services, so this package exposes no write operations.
package servicerepo

import (
	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ServiceDTO is the database row for a delivery service with its rate card.
type ServiceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Listed   bool
	BaseFee  *int64
	FeePerKm *int64
}

// TableName overrides GORM's default naming to use "delivery_services".
func (ServiceDTO) TableName() string {
	return "delivery_services"
}

func toDomain(dto ServiceDTO) (*catalog.DeliveryService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var rateCard *catalog.RateCard
	if dto.BaseFee != nil && dto.FeePerKm != nil {
		rateCard = &catalog.RateCard{
			BaseFee:  *dto.BaseFee,
			FeePerKm: *dto.FeePerKm,
		}
	}

	return catalog.NewDeliveryService(id, tenantID, dto.Name, dto.Listed, rateCard)
}
