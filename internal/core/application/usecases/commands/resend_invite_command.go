package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var ErrResendInviteCommandIsNotConstructed = errors.New(
	"ResendInviteCommand must be created via NewResendInviteCommand constructor",
)

// ResendInviteCommand represents a tenant staff request to extend a pending
// invite's expiry window. The token itself never changes.
type ResendInviteCommand struct { //nolint:recvcheck //using for validation
	inviteID kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendInviteCommand creates a command to resend an invite.
func NewResendInviteCommand(inviteID, tenantID kernel.UUID) (ResendInviteCommand, error) {
	cmd := ResendInviteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInviteID(inviteID),
		cmd.setTenantID(tenantID),
	); err != nil {
		return ResendInviteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendInviteCommand) Validate() error {
	return c.guard.Validate(ErrResendInviteCommandIsNotConstructed)
}

// InviteID returns the invite being extended.
func (c ResendInviteCommand) InviteID() kernel.UUID {
	return c.inviteID
}

// TenantID returns the tenant of the acting staff member.
func (c ResendInviteCommand) TenantID() kernel.UUID {
	return c.tenantID
}

func (c *ResendInviteCommand) setInviteID(inviteID kernel.UUID) error {
	if err := inviteID.Validate(); err != nil {
		return err
	}
	c.inviteID = inviteID
	return nil
}

func (c *ResendInviteCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}
