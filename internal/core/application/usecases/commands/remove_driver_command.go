package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents a tenant staff request to deactivate a
// roster driver.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to remove a driver.
func NewRemoveDriverCommand(driverID, tenantID kernel.UUID) (RemoveDriverCommand, error) {
	cmd := RemoveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setTenantID(tenantID),
	); err != nil {
		return RemoveDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the driver being removed.
func (c RemoveDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TenantID returns the tenant of the acting staff member.
func (c RemoveDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

func (c *RemoveDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *RemoveDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}
