package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrdererNameIsRequired   = errors.New("orderer name is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrStopsAreRequired        = errors.New("at least two stops are required")
	ErrVehicleWithoutDriver    = errors.New("vehicle requires an assigned driver")
)

// StopSpec describes one requested route stop. Sequence numbers must form a
// contiguous 1..N run; full route-shape validation happens in the order
// aggregate.
type StopSpec struct {
	Sequence int
	Type     order.StopType
	Address  string
	Point    kernel.GeoPoint
}

// CreateOrderCommand represents a request to place a delivery order against
// a service. tenantID identifies the requesting tenant and is nil for
// anonymous customer orders; driverID/vehicleID pre-assign the order and are
// only set on the staff-created path.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tenantID  *kernel.UUID
	serviceID kernel.UUID
	orderer   order.Contact
	recipient order.Contact
	notes     string
	stops     []StopSpec
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tenantID *kernel.UUID,
	serviceID kernel.UUID,
	orderer, recipient order.Contact,
	notes string,
	stops []StopSpec,
	driverID, vehicleID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		tenantID: tenantID,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceID(serviceID),
		cmd.setOrderer(orderer),
		cmd.setRecipient(recipient),
		cmd.setStops(stops),
		cmd.setAssignment(driverID, vehicleID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the requesting tenant, or nil for customer orders.
func (c CreateOrderCommand) TenantID() *kernel.UUID {
	return c.tenantID
}

// ServiceID returns the delivery service the order is placed against.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Orderer returns the ordering party's contact details.
func (c CreateOrderCommand) Orderer() order.Contact {
	return c.orderer
}

// Recipient returns the receiving party's contact details.
func (c CreateOrderCommand) Recipient() order.Contact {
	return c.recipient
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Stops returns the requested route stops.
func (c CreateOrderCommand) Stops() []StopSpec {
	return c.stops
}

// DriverID returns the pre-assigned driver, or nil.
func (c CreateOrderCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// VehicleID returns the pre-assigned vehicle, or nil.
func (c CreateOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateOrderCommand) setOrderer(orderer order.Contact) error {
	if orderer.Name == "" {
		return ErrOrdererNameIsRequired
	}
	c.orderer = orderer
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Contact) error {
	if recipient.Name == "" {
		return ErrRecipientNameIsRequired
	}
	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setStops(stops []StopSpec) error {
	if len(stops) < 2 {
		return ErrStopsAreRequired
	}
	c.stops = stops
	return nil
}

func (c *CreateOrderCommand) setAssignment(driverID, vehicleID *kernel.UUID) error {
	if driverID == nil {
		if vehicleID != nil {
			return ErrVehicleWithoutDriver
		}
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}
	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}
