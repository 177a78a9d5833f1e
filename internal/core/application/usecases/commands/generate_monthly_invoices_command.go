package commands

import (
	"errors"
	"fmt"
	"time"

	"kirim/internal/pkg/guard"
)

var ErrGenerateMonthlyInvoicesCommandIsNotConstructed = errors.New(
	"GenerateMonthlyInvoicesCommand must be created via NewGenerateMonthlyInvoicesCommand constructor",
)

// GenerateMonthlyInvoicesCommand represents a scheduled run of subscription
// invoicing for one billing period.
type GenerateMonthlyInvoicesCommand struct { //nolint:recvcheck //using for validation
	year  int
	month time.Month

	guard guard.ConstructorGuard
}

// NewGenerateMonthlyInvoicesCommand creates a command for the given period.
func NewGenerateMonthlyInvoicesCommand(year int, month time.Month) (GenerateMonthlyInvoicesCommand, error) {
	cmd := GenerateMonthlyInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPeriod(year, month); err != nil {
		return GenerateMonthlyInvoicesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateMonthlyInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateMonthlyInvoicesCommandIsNotConstructed)
}

// Year returns the billing period's year.
func (c GenerateMonthlyInvoicesCommand) Year() int {
	return c.year
}

// Month returns the billing period's month.
func (c GenerateMonthlyInvoicesCommand) Month() time.Month {
	return c.month
}

// Period returns the canonical period key, e.g. "2026-08".
func (c GenerateMonthlyInvoicesCommand) Period() string {
	return fmt.Sprintf("%04d-%02d", c.year, int(c.month))
}

func (c *GenerateMonthlyInvoicesCommand) setPeriod(year int, month time.Month) error {
	if year < 2000 || month < time.January || month > time.December {
		return fmt.Errorf("invalid billing period %d-%d", year, int(month))
	}
	c.year = year
	c.month = month
	return nil
}
