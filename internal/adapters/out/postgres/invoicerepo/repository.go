package invoicerepo

import (
	"context"
	"errors"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing invoice. Only the mutable columns are
// written; amount and identity stay as created.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "paid_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID. The row is locked for the remainder of
// the transaction.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPublicID retrieves an invoice by its public reference with the same
// row lock as Get.
func (r *GormInvoiceRepository) GetByPublicID(ctx context.Context, publicID string) (*invoice.Invoice, error) {
	if publicID == "" {
		return nil, errs.NewValueIsRequiredError("publicID")
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", publicID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetSubscriptionPastDue retrieves pending subscription invoices whose due
// date has passed.
func (r *GormInvoiceRepository) GetSubscriptionPastDue(
	ctx context.Context, now time.Time,
) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "invoice_type = ? AND status = ? AND due_date < ?",
			invoice.TypeSubscription.String(), invoice.StatusPending.String(), now).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// ExistsSubscriptionForPeriod reports whether the tenant already has a
// subscription invoice for the billing period.
func (r *GormInvoiceRepository) ExistsSubscriptionForPeriod(
	ctx context.Context, tenantID kernel.UUID, period string,
) (bool, error) {
	if err := tenantID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("tenant_id = ? AND invoice_type = ? AND description = ?",
			tenantID.Bytes(), invoice.TypeSubscription.String(), invoice.SubscriptionDescription(period)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
