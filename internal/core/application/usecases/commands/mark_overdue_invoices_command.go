package commands

import (
	"errors"
	"time"

	"kirim/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand represents a scheduled sweep of pending
// invoices past their due date.
type MarkOverdueInvoicesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command for a sweep at now.
func NewMarkOverdueInvoicesCommand(now time.Time) (MarkOverdueInvoicesCommand, error) {
	cmd := MarkOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return MarkOverdueInvoicesCommand{}, errors.New("sweep time is required")
	}
	cmd.now = now

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}

// Now returns the sweep's reference time.
func (c MarkOverdueInvoicesCommand) Now() time.Time {
	return c.now
}
