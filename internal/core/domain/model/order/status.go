package order

import (
	"fmt"

	"kirim/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with a fixed transition table so orders
// always follow the legal workflow.
//
// State transitions:
//
//	PendingDispatch ──> Accepted ──> Pickup ──> InTransit ──> Delivered
//	       │                │          │            │
//	       └────────────────┴──────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingDispatch is the initial status of an order placed without a
	// driver. The owning tenant still has to assign one.
	PendingDispatch

	// Accepted indicates a driver and vehicle have been assigned.
	Accepted

	// Pickup indicates the driver is collecting the goods.
	Pickup

	// InTransit indicates the goods are on the way to a dropoff.
	InTransit

	// Delivered indicates every dropoff completed. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/persistence name of every status,
// including Unknown for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		PendingDispatch: "pending_dispatch",
		Accepted:        "accepted",
		Pickup:          "pickup",
		InTransit:       "in_transit",
		Delivered:       "delivered",
		Cancelled:       "cancelled",
	}
}

// getValidStatusStrings returns only valid statuses to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingDispatch: "pending_dispatch",
		Accepted:        "accepted",
		Pickup:          "pickup",
		InTransit:       "in_transit",
		Delivered:       "delivered",
		Cancelled:       "cancelled",
	}
}

// transitions is the legal transition table. A status absent from the map,
// or with an empty set, is terminal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		PendingDispatch: {Accepted, Cancelled},
		Accepted:        {Pickup, Cancelled},
		Pickup:          {InTransit, Cancelled},
		InTransit:       {Delivered, Cancelled},
		Delivered:       {},
		Cancelled:       {},
	}
}

// StatusFromString parses a wire/persistence status name.
// Returns a BadRequest-kind error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is in the transition table for s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to next against the transition
// table and returns the new status.
//
// Returns a Conflict-kind error "invalid status transition from X to Y"
// when the move is illegal; the caller's status is left untouched.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("invalid status transition from %s to %s", s, next))
	}
	return next, nil
}
