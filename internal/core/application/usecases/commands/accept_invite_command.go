package commands

import (
	"errors"
	"strings"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var (
	ErrAcceptInviteCommandIsNotConstructed = errors.New(
		"AcceptInviteCommand must be created via NewAcceptInviteCommand constructor",
	)
	ErrInviteTokenIsRequired = errors.New("invite token is required")
	ErrDriverNameIsRequired  = errors.New("driver name is required")
)

// AcceptInviteCommand represents an invited user joining a tenant's roster.
// userID and email come from the authenticated account, not the request.
type AcceptInviteCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	token    string
	userID   kernel.UUID
	name     string
	email    string

	guard guard.ConstructorGuard
}

// NewAcceptInviteCommand creates a command to accept a driver invite.
func NewAcceptInviteCommand(
	driverID kernel.UUID, token string, userID kernel.UUID, name, email string,
) (AcceptInviteCommand, error) {
	cmd := AcceptInviteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setToken(token),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return AcceptInviteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptInviteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptInviteCommandIsNotConstructed)
}

// DriverID returns the identifier the new driver will be stored under.
func (c AcceptInviteCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Token returns the opaque invite token.
func (c AcceptInviteCommand) Token() string {
	return c.token
}

// UserID returns the accepting platform account.
func (c AcceptInviteCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the driver's display name.
func (c AcceptInviteCommand) Name() string {
	return c.name
}

// Email returns the accepting account's email, lowercased.
func (c AcceptInviteCommand) Email() string {
	return c.email
}

func (c *AcceptInviteCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AcceptInviteCommand) setToken(token string) error {
	if token == "" {
		return ErrInviteTokenIsRequired
	}
	c.token = token
	return nil
}

func (c *AcceptInviteCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AcceptInviteCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AcceptInviteCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInviteEmailIsRequired
	}
	c.email = email
	return nil
}
