package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a tenant staff request to assign a driver
// (and optionally a vehicle) to a pending order.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tenantID  kernel.UUID
	driverID  kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign a driver to an order.
func NewAssignOrderCommand(
	orderID, tenantID, driverID kernel.UUID, vehicleID *kernel.UUID,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant of the acting staff member.
func (c AssignOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// DriverID returns the driver receiving the order.
func (c AssignOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the optional vehicle, or nil.
func (c AssignOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *AssignOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AssignOrderCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}
