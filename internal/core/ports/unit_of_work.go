package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// InvoiceRepository returns an InvoiceRepository bound to the current
	// transaction.
	InvoiceRepository() InvoiceRepository

	// TenantRepository returns a TenantRepository bound to the current
	// transaction.
	TenantRepository() TenantRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// InviteRepository returns an InviteRepository bound to the current
	// transaction.
	InviteRepository() InviteRepository

	// ServiceRepository returns a ServiceRepository bound to the current
	// transaction.
	ServiceRepository() ServiceRepository

	// AuditRepository returns an AuditRepository bound to the current
	// transaction.
	AuditRepository() AuditRepository
}
