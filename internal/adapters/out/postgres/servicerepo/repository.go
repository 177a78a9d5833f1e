package servicerepo

import (
	"context"
	"errors"

	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM service repository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Get retrieves a delivery service with its rate card.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.DeliveryService, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
