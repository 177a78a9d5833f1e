package commands

import (
	"errors"
	"time"

	"kirim/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrInvoicePublicIDIsRequired = errors.New("invoice public id is required")
	ErrPaidAtIsRequired          = errors.New("payment timestamp is required")
)

// ConfirmPaymentCommand represents a confirmed payment against an invoice.
// Every payment source funnels through this command: gateway webhooks,
// retried webhook tasks and manual reconciliation all confirm the same way.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	publicID string
	paidAt   time.Time

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm an invoice payment.
func NewConfirmPaymentCommand(publicID string, paidAt time.Time) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPublicID(publicID),
		cmd.setPaidAt(paidAt),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// PublicID returns the public identifier of the paid invoice.
func (c ConfirmPaymentCommand) PublicID() string {
	return c.publicID
}

// PaidAt returns when the payment settled.
func (c ConfirmPaymentCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *ConfirmPaymentCommand) setPublicID(publicID string) error {
	if publicID == "" {
		return ErrInvoicePublicIDIsRequired
	}
	c.publicID = publicID
	return nil
}

func (c *ConfirmPaymentCommand) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return ErrPaidAtIsRequired
	}
	c.paidAt = paidAt
	return nil
}
