// Package invoice provides the Invoice aggregate for the billing ledger.
//
// An invoice is either a monthly platform subscription charge or a customer
// delivery payment. Its amount is fixed at creation; its status moves
// pending -> paid exactly once, swaps between pending and overdue as due
// dates pass, and never leaves paid or cancelled.
//
// The already-paid conflict raised by MarkPaid is the idempotency guard that
// both manual confirmation and webhook reconciliation rely on: whatever path
// confirms a payment funnels through it, so a payment can never apply twice.
package invoice
