package ports

import (
	"context"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenant aggregates.
type TenantRepository interface {
	// Get retrieves a tenant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// Update persists changes to an existing tenant.
	Update(ctx context.Context, aggregate *tenant.Tenant) error

	// GetAllBillable retrieves tenants whose subscription standing calls
	// for a monthly invoice (active or past due).
	GetAllBillable(ctx context.Context) ([]*tenant.Tenant, error)
}

// DriverRepository defines the persistence contract for driver entities.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, driver *tenant.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, driver *tenant.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Driver, error)

	// GetByUserID retrieves the tenant's driver linked to a platform user.
	GetByUserID(ctx context.Context, tenantID, userID kernel.UUID) (*tenant.Driver, error)

	// GetActiveByEmail retrieves the tenant's active driver with the given
	// email address, if any. Email matching is case-insensitive.
	GetActiveByEmail(ctx context.Context, tenantID kernel.UUID, email string) (*tenant.Driver, error)

	// CountActive returns the number of active drivers across the tenant.
	// Seat checks read this inside the admitting transaction.
	CountActive(ctx context.Context, tenantID kernel.UUID) (int, error)
}

// InviteRepository defines the persistence contract for driver invites.
type InviteRepository interface {
	// Add persists a new invite.
	Add(ctx context.Context, invite *tenant.Invite) error

	// Update persists changes to an existing invite.
	Update(ctx context.Context, invite *tenant.Invite) error

	// Get retrieves an invite by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Invite, error)

	// GetByToken retrieves an invite by its opaque token.
	GetByToken(ctx context.Context, token string) (*tenant.Invite, error)

	// GetPendingByEmail retrieves the tenant's pending invite for an email
	// address, if any. Email matching is case-insensitive.
	GetPendingByEmail(ctx context.Context, tenantID kernel.UUID, email string) (*tenant.Invite, error)
}
