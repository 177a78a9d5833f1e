package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var ErrCompleteOrderStopCommandIsNotConstructed = errors.New(
	"CompleteOrderStopCommand must be created via NewCompleteOrderStopCommand constructor",
)

// CompleteOrderStopCommand represents a driver confirming a route stop.
type CompleteOrderStopCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	stopID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderStopCommand creates a command to mark a stop completed.
func NewCompleteOrderStopCommand(
	orderID, stopID, driverID kernel.UUID,
) (CompleteOrderStopCommand, error) {
	cmd := CompleteOrderStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStopID(stopID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CompleteOrderStopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderStopCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderStopCommandIsNotConstructed)
}

// OrderID returns the order the stop belongs to.
func (c CompleteOrderStopCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StopID returns the stop being confirmed.
func (c CompleteOrderStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// DriverID returns the acting driver.
func (c CompleteOrderStopCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *CompleteOrderStopCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderStopCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}
	c.stopID = stopID
	return nil
}

func (c *CompleteOrderStopCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
