// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"kirim/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// TenantRepoFactory provides access to the tenant repository within a transaction.
	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// InviteRepoFactory provides access to the invite repository within a transaction.
	InviteRepoFactory interface {
		InviteRepository() ports.InviteRepository
	}

	// ServiceRepoFactory provides access to the service catalog within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Order commands also read the service catalog for quoting and the
	// driver roster for assignment checks, and append audit records.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ServiceRepoFactory
		DriverRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TenantUoW manages transactions for tenant roster operations:
	// invites, seat admission and driver removal.
	TenantUoW interface {
		TxManager
		TenantRepoFactory
		DriverRepoFactory
		InviteRepoFactory
		AuditRepoFactory
	}

	// TenantUoWFactory creates new tenant unit of work instances.
	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// BillingUoW manages transactions for invoicing and payment
	// confirmation. Payment confirmation also updates tenant subscription
	// standing, so the tenant repository is in scope.
	BillingUoW interface {
		TxManager
		InvoiceRepoFactory
		TenantRepoFactory
		AuditRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
