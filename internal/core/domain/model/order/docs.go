// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with its route stops,
// field reports, and status state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, route, and lifecycle
//   - Status: a state machine enforcing legal order status transitions
//   - Stop: a pickup or dropoff waypoint with idempotent completion
//   - Report: a driver field report tied to a delivery phase
//
// Key business rules:
//   - Orders need at least two stops including one pickup and one dropoff
//   - The lifecycle is pending_dispatch -> accepted -> pickup -> in_transit
//     -> delivered, with cancellation allowed from any non-terminal state
//   - Delivered and cancelled are terminal; no transition leaves them
//   - Completing an already-completed stop is a no-op, not an error
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
