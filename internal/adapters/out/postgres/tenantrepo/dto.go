// Package tenantrepo persists tenant aggregates together with their drivers
// and invites, mapping between the domain model and database rows.
package tenantrepo

import (
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// TenantDTO is the database row for a tenant.
type TenantDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	SubscriptionStatus string `gorm:"type:varchar(16);index"`
	ActiveDriverLimit  int
}

// TableName overrides GORM's default naming to use "tenants".
func (TenantDTO) TableName() string {
	return "tenants"
}

// DriverDTO is the database row for a driver.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Email    string
	Status   string `gorm:"type:varchar(16)"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// InviteDTO is the database row for a driver invite.
type InviteDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;index"`
	Email     string
	Token     string `gorm:"type:varchar(64);uniqueIndex"`
	Status    string `gorm:"type:varchar(16)"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "invites".
func (InviteDTO) TableName() string {
	return "invites"
}

func tenantFromDomain(aggregate *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		SubscriptionStatus: aggregate.SubscriptionStatus().String(),
		ActiveDriverLimit:  aggregate.ActiveDriverLimit(),
	}
}

func tenantToDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := tenant.SubscriptionStatusFromString(dto.SubscriptionStatus)
	if err != nil {
		return nil, err
	}

	return tenant.NewTenant(id, dto.Name, status, dto.ActiveDriverLimit)
}

func driverFromDomain(driver *tenant.Driver) DriverDTO {
	return DriverDTO{
		ID:       driver.ID().Bytes(),
		TenantID: driver.TenantID().Bytes(),
		UserID:   driver.UserID().Bytes(),
		Name:     driver.Name(),
		Email:    driver.Email(),
		Status:   driver.Status().String(),
	}
}

func driverToDomain(dto DriverDTO) (*tenant.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := tenant.DriverStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tenant.RestoreDriver(id, tenantID, userID, dto.Name, dto.Email, status)
}

func inviteFromDomain(invite *tenant.Invite) InviteDTO {
	return InviteDTO{
		ID:        invite.ID().Bytes(),
		TenantID:  invite.TenantID().Bytes(),
		Email:     invite.Email(),
		Token:     invite.Token(),
		Status:    invite.Status().String(),
		ExpiresAt: invite.ExpiresAt(),
		CreatedAt: invite.CreatedAt(),
	}
}

func inviteToDomain(dto InviteDTO) (*tenant.Invite, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	status, err := tenant.InviteStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tenant.RestoreInvite(id, tenantID, dto.Email, dto.Token, dto.ExpiresAt, status, dto.CreatedAt)
}
