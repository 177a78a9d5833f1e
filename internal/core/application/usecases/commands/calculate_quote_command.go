package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
	"kirim/internal/pkg/guard"
)

var (
	ErrCalculateQuoteCommandIsNotConstructed = errors.New(
		"CalculateQuoteCommand must be created via NewCalculateQuoteCommand constructor",
	)
	ErrQuoteRouteIsTooShort = errs.NewValueIsInvalidError("route")
)

// CalculateQuoteCommand prices a prospective route against a delivery
// service without creating an order.
type CalculateQuoteCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard

	serviceID kernel.UUID
	tenantID  *kernel.UUID
	route     []kernel.GeoPoint
}

// NewCalculateQuoteCommand creates a quote request. tenantID is nil for
// anonymous customers; the route needs at least two points.
func NewCalculateQuoteCommand(
	serviceID kernel.UUID, tenantID *kernel.UUID, route []kernel.GeoPoint,
) (CalculateQuoteCommand, error) {
	if err := serviceID.Validate(); err != nil {
		return CalculateQuoteCommand{}, err
	}
	if tenantID != nil {
		if err := tenantID.Validate(); err != nil {
			return CalculateQuoteCommand{}, err
		}
	}
	if len(route) < 2 {
		return CalculateQuoteCommand{}, ErrQuoteRouteIsTooShort
	}
	for _, point := range route {
		if err := point.Validate(); err != nil {
			return CalculateQuoteCommand{}, err
		}
	}

	return CalculateQuoteCommand{
		guard:     guard.NewConstructorGuard(),
		serviceID: serviceID,
		tenantID:  tenantID,
		route:     route,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCalculateQuoteCommandIsNotConstructed)
}

// ServiceID returns the service being quoted against.
func (c CalculateQuoteCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// TenantID returns the requesting tenant, or nil for anonymous customers.
func (c CalculateQuoteCommand) TenantID() *kernel.UUID {
	return c.tenantID
}

// Route returns the prospective stop coordinates in visit order.
func (c CalculateQuoteCommand) Route() []kernel.GeoPoint {
	return c.route
}
