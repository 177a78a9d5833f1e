// Package invoicerepo persists invoice aggregates, mapping between the
// domain model and database rows.
package invoicerepo

import (
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO is the database row for an invoice aggregate. Type and status
// are stored as their wire names.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PublicID    string    `gorm:"type:varchar(32);uniqueIndex"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	InvoiceType string    `gorm:"type:varchar(32)"`
	Status      string    `gorm:"type:varchar(16);index"`
	Amount      int64
	Currency    string `gorm:"type:varchar(3)"`
	Description string
	PaymentCode string
	DueDate     time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:          aggregate.ID().Bytes(),
		PublicID:    aggregate.PublicID(),
		TenantID:    aggregate.TenantID().Bytes(),
		InvoiceType: aggregate.Type().String(),
		Status:      aggregate.Status().String(),
		Amount:      aggregate.Amount(),
		Currency:    aggregate.Currency(),
		Description: aggregate.Description(),
		PaymentCode: aggregate.PaymentCode(),
		DueDate:     aggregate.DueDate(),
		PaidAt:      aggregate.PaidAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	invoiceType, err := invoice.TypeFromString(dto.InvoiceType)
	if err != nil {
		return nil, err
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		dto.PublicID,
		tenantID,
		invoiceType,
		status,
		dto.Amount,
		dto.Currency,
		dto.Description,
		dto.PaymentCode,
		dto.DueDate,
		dto.PaidAt,
		dto.CreatedAt,
	)
}
