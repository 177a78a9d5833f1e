package auditrepo

import (
	"context"

	"kirim/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends an audit record. Runs inside the caller's transaction so the
// record commits or rolls back with the change it describes.
func (r *GormAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
