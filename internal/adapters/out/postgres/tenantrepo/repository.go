package tenantrepo

import (
	"context"
	"errors"
	"strings"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/tenant"
	"kirim/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTenantRepository implements ports.TenantRepository using GORM.
type GormTenantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB, tracker aggregateTracker) *GormTenantRepository {
	return &GormTenantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a tenant by ID. The row is locked for the remainder of the
// transaction so seat checks and standing changes serialize.
func (r *GormTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", id.String())
		}
		return nil, err
	}

	return tenantToDomain(dto)
}

// Update saves changes to an existing tenant.
func (r *GormTenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tenantFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TenantDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "subscription_status", "active_driver_limit").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tenant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllBillable retrieves tenants whose standing calls for a monthly
// subscription invoice.
func (r *GormTenantRepository) GetAllBillable(ctx context.Context) ([]*tenant.Tenant, error) {
	var dtos []TenantDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "subscription_status IN ?", []string{
			tenant.SubscriptionActive.String(),
			tenant.SubscriptionPastDue.String(),
		}).Error
	if err != nil {
		return nil, err
	}

	tenants := make([]*tenant.Tenant, 0, len(dtos))
	for _, dto := range dtos {
		t, convErr := tenantToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, driver *tenant.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(driver.ID(), driver)
	return nil
}

// Update saves changes to an existing driver.
func (r *GormDriverRepository) Update(ctx context.Context, driver *tenant.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", driver.ID().String())
	}

	r.tracker.TrackAggregate(driver.ID(), driver)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetByUserID retrieves the tenant's driver linked to a platform user.
func (r *GormDriverRepository) GetByUserID(ctx context.Context, tenantID, userID kernel.UUID) (*tenant.Driver, error) {
	if err := errors.Join(tenantID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND user_id = ?", tenantID.Bytes(), userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", userID.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetActiveByEmail retrieves the tenant's active driver with the given
// email address, matched case-insensitively.
func (r *GormDriverRepository) GetActiveByEmail(
	ctx context.Context, tenantID kernel.UUID, email string,
) (*tenant.Driver, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND lower(email) = ? AND status = ?",
			tenantID.Bytes(), strings.ToLower(email), tenant.DriverActive.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", email)
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// CountActive returns the number of active drivers across the tenant.
// Runs inside the admitting transaction, after the tenant row lock, so two
// concurrent acceptances cannot both pass the seat check.
func (r *GormDriverRepository) CountActive(ctx context.Context, tenantID kernel.UUID) (int, error) {
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("tenant_id = ? AND status = ?", tenantID.Bytes(), tenant.DriverActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GormInviteRepository implements ports.InviteRepository using GORM.
type GormInviteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormInviteRepository creates a new GORM invite repository.
func NewGormInviteRepository(db *gorm.DB, tracker aggregateTracker) *GormInviteRepository {
	return &GormInviteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invite to the database.
func (r *GormInviteRepository) Add(ctx context.Context, invite *tenant.Invite) error {
	if err := invite.Validate(); err != nil {
		return err
	}

	dto := inviteFromDomain(invite)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(invite.ID(), invite)
	return nil
}

// Update saves changes to an existing invite.
func (r *GormInviteRepository) Update(ctx context.Context, invite *tenant.Invite) error {
	if err := invite.Validate(); err != nil {
		return err
	}

	dto := inviteFromDomain(invite)
	result := r.db.WithContext(ctx).Model(&InviteDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "expires_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invite", invite.ID().String())
	}

	r.tracker.TrackAggregate(invite.ID(), invite)
	return nil
}

// Get retrieves an invite by ID.
func (r *GormInviteRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Invite, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InviteDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invite", id.String())
		}
		return nil, err
	}

	return inviteToDomain(dto)
}

// GetByToken retrieves an invite by its opaque token. The row is locked for
// the transaction so a token cannot be redeemed twice.
func (r *GormInviteRepository) GetByToken(ctx context.Context, token string) (*tenant.Invite, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto InviteDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invite", "token")
		}
		return nil, err
	}

	return inviteToDomain(dto)
}

// GetPendingByEmail retrieves the tenant's pending invite for an email
// address, matched case-insensitively.
func (r *GormInviteRepository) GetPendingByEmail(
	ctx context.Context, tenantID kernel.UUID, email string,
) (*tenant.Invite, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto InviteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND lower(email) = ? AND status = ?",
			tenantID.Bytes(), strings.ToLower(email), tenant.InvitePending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invite", email)
		}
		return nil, err
	}

	return inviteToDomain(dto)
}
