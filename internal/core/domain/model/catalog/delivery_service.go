// Package catalog provides the read-side DeliveryService model with its rate
// card. Catalog management (creation, editing, vehicle types) lives outside
// the core; the quote engine only needs listing visibility and pricing.
package catalog

import (
	"errors"
	"fmt"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrDeliveryServiceIsNotConstructed is returned when a DeliveryService was
// not created through the NewDeliveryService factory method.
var ErrDeliveryServiceIsNotConstructed = errors.New(
	"DeliveryService must be created via NewDeliveryService constructor")

// RateCard is the pricing of a delivery service in whole currency units.
type RateCard struct {
	// BaseFee is charged once per order.
	BaseFee int64

	// FeePerKm is charged per kilometre of total route distance.
	FeePerKm int64
}

// DeliveryService is a tenant-owned offering customers order deliveries
// against. Listed services are quotable by anyone; unlisted ones only by
// their owning tenant.
type DeliveryService struct {
	id       kernel.UUID
	tenantID kernel.UUID
	name     string
	listed   bool
	rateCard *RateCard

	isConstructed bool
}

// NewDeliveryService creates a validated DeliveryService. rateCard may be
// nil for services without pricing; quoting such a service fails.
func NewDeliveryService(
	id, tenantID kernel.UUID, name string, listed bool, rateCard *RateCard,
) (*DeliveryService, error) {
	svc := &DeliveryService{
		listed:        listed,
		isConstructed: true,
	}

	if err := errors.Join(
		svc.setID(id),
		svc.setTenantID(tenantID),
		svc.setName(name),
		svc.setRateCard(rateCard),
	); err != nil {
		return nil, err
	}

	return svc, nil
}

// Validate ensures the DeliveryService was created through its constructor.
func (s *DeliveryService) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrDeliveryServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *DeliveryService) ID() kernel.UUID {
	return s.id
}

// TenantID returns the owning tenant.
func (s *DeliveryService) TenantID() kernel.UUID {
	return s.tenantID
}

// Name returns the service's display name.
func (s *DeliveryService) Name() string {
	return s.name
}

// IsListed reports whether the service is publicly quotable.
func (s *DeliveryService) IsListed() bool {
	return s.listed
}

// RateCard returns the service pricing, or nil when none is configured.
func (s *DeliveryService) RateCard() *RateCard {
	return s.rateCard
}

// VisibleTo reports whether the requesting tenant may quote this service:
// it is listed, or owned by that tenant. A nil tenantID models an anonymous
// customer request.
func (s *DeliveryService) VisibleTo(tenantID *kernel.UUID) bool {
	if s.listed {
		return true
	}
	return tenantID != nil && s.tenantID.IsEqual(*tenantID)
}

func (s *DeliveryService) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *DeliveryService) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.tenantID = id
	return nil
}

func (s *DeliveryService) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *DeliveryService) setRateCard(rateCard *RateCard) error {
	if rateCard != nil && (rateCard.BaseFee < 0 || rateCard.FeePerKm < 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"rateCard", fmt.Errorf("fees must be non-negative, got base %d per-km %d",
				rateCard.BaseFee, rateCard.FeePerKm))
	}
	s.rateCard = rateCard
	return nil
}
