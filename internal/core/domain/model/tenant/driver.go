package tenant

import (
	"errors"
	"fmt"
	"strings"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through the NewDriver factory method.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// DriverStatus is the employment state of a driver within a tenant.
type DriverStatus int

const (
	// DriverStatusUnknown is the invalid zero value.
	DriverStatusUnknown DriverStatus = iota

	// DriverActive means the driver counts against the tenant's quota and
	// may execute orders.
	DriverActive

	// DriverInactive means the driver was removed and no longer counts
	// against the quota.
	DriverInactive
)

// DriverStatusFromString parses a wire/persistence driver status name.
func DriverStatusFromString(s string) (DriverStatus, error) {
	switch s {
	case "active":
		return DriverActive, nil
	case "inactive":
		return DriverInactive, nil
	default:
		return DriverStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"driverStatus", fmt.Errorf("%q is not a valid driver status", s))
	}
}

// String returns the wire name of the driver status.
func (s DriverStatus) String() string {
	switch s {
	case DriverActive:
		return "active"
	case DriverInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Driver is a courier employed by exactly one tenant.
type Driver struct {
	id       kernel.UUID
	tenantID kernel.UUID
	userID   kernel.UUID
	name     string
	email    string
	status   DriverStatus

	isConstructed bool
}

// NewDriver creates an active Driver bound to the given tenant and user
// account.
func NewDriver(id, tenantID, userID kernel.UUID, name, email string) (*Driver, error) {
	d := &Driver{
		status:        DriverActive,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setTenantID(tenantID),
		d.setUserID(userID),
		d.setName(name),
		d.setEmail(email),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(id, tenantID, userID kernel.UUID, name, email string, status DriverStatus) (*Driver, error) {
	d, err := NewDriver(id, tenantID, userID, name, email)
	if err != nil {
		return nil, err
	}
	if status != DriverActive && status != DriverInactive {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"driverStatus", fmt.Errorf("%d is not a valid driver status", status))
	}
	d.status = status
	return d, nil
}

// Validate ensures the Driver was created through NewDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// TenantID returns the employing tenant.
func (d *Driver) TenantID() kernel.UUID {
	return d.tenantID
}

// UserID returns the driver's user account.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's normalized email address.
func (d *Driver) Email() string {
	return d.email
}

// Status returns the driver's employment state.
func (d *Driver) Status() DriverStatus {
	return d.status
}

// IsActive reports whether the driver counts against the tenant quota.
func (d *Driver) IsActive() bool {
	return d.status == DriverActive
}

// Deactivate removes the driver from active duty. Already-inactive drivers
// stay inactive.
func (d *Driver) Deactivate() {
	d.status = DriverInactive
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.tenantID = id
	return nil
}

func (d *Driver) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.userID = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	d.email = email
	return nil
}
