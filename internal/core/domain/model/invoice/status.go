package invoice

import (
	"fmt"

	"kirim/internal/pkg/errs"
)

// Status represents the payment state of an invoice.
//
// State transitions:
//
//	Pending ──> Paid
//	Pending <─> Overdue ──> Paid
//	Pending ──> Cancelled <── Overdue
//
// Transitions are one-directional except Pending and Overdue, which swap as
// due dates pass or get extended. Paid and Cancelled are terminal; a paid
// invoice can never change again.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending means the invoice awaits payment.
	StatusPending

	// StatusPaid means payment was confirmed. Terminal.
	StatusPaid

	// StatusOverdue means the due date passed without payment.
	StatusOverdue

	// StatusCancelled means the invoice was voided. Terminal.
	StatusCancelled
)

// getValidStatusStrings returns only valid statuses to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusPaid:      "paid",
		StatusOverdue:   "overdue",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a wire/persistence invoice status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid invoice status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}
