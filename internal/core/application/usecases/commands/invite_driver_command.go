package commands

import (
	"errors"
	"strings"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var (
	ErrInviteDriverCommandIsNotConstructed = errors.New(
		"InviteDriverCommand must be created via NewInviteDriverCommand constructor",
	)
	ErrInviteEmailIsRequired = errors.New("invite email is required")
)

// InviteDriverCommand represents a tenant staff request to invite a driver
// by email.
type InviteDriverCommand struct { //nolint:recvcheck //using for validation
	inviteID kernel.UUID
	tenantID kernel.UUID
	email    string

	guard guard.ConstructorGuard
}

// NewInviteDriverCommand creates a command to invite a driver.
func NewInviteDriverCommand(inviteID, tenantID kernel.UUID, email string) (InviteDriverCommand, error) {
	cmd := InviteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInviteID(inviteID),
		cmd.setTenantID(tenantID),
		cmd.setEmail(email),
	); err != nil {
		return InviteDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InviteDriverCommand) Validate() error {
	return c.guard.Validate(ErrInviteDriverCommandIsNotConstructed)
}

// InviteID returns the identifier the invite will be stored under.
func (c InviteDriverCommand) InviteID() kernel.UUID {
	return c.inviteID
}

// TenantID returns the inviting tenant.
func (c InviteDriverCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Email returns the invitee's email, lowercased.
func (c InviteDriverCommand) Email() string {
	return c.email
}

func (c *InviteDriverCommand) setInviteID(inviteID kernel.UUID) error {
	if err := inviteID.Validate(); err != nil {
		return err
	}
	c.inviteID = inviteID
	return nil
}

func (c *InviteDriverCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *InviteDriverCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInviteEmailIsRequired
	}
	c.email = email
	return nil
}
