package tenant

import (
	"errors"
	"fmt"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

var (
	// ErrTenantIsNotConstructed is returned when a Tenant instance was not
	// created through the NewTenant factory method.
	ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant constructor")
)

// SubscriptionStatus is the billing standing of a tenant.
type SubscriptionStatus int

const (
	// SubscriptionUnknown is the invalid zero value.
	SubscriptionUnknown SubscriptionStatus = iota

	// SubscriptionFreeTier is the default standing of a new tenant.
	SubscriptionFreeTier

	// SubscriptionActive means the tenant's subscription is paid up.
	SubscriptionActive

	// SubscriptionPastDue means a subscription invoice went overdue.
	// Past-due tenants cannot invite new drivers.
	SubscriptionPastDue

	// SubscriptionCancelled means the tenant ended the subscription.
	SubscriptionCancelled
)

// SubscriptionStatusFromString parses a wire/persistence name.
func SubscriptionStatusFromString(s string) (SubscriptionStatus, error) {
	switch s {
	case "free_tier":
		return SubscriptionFreeTier, nil
	case "active":
		return SubscriptionActive, nil
	case "past_due":
		return SubscriptionPastDue, nil
	case "cancelled":
		return SubscriptionCancelled, nil
	default:
		return SubscriptionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"subscriptionStatus", fmt.Errorf("%q is not a valid subscription status", s))
	}
}

// String returns the wire name of the subscription status.
func (s SubscriptionStatus) String() string {
	switch s {
	case SubscriptionFreeTier:
		return "free_tier"
	case SubscriptionActive:
		return "active"
	case SubscriptionPastDue:
		return "past_due"
	case SubscriptionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Validate checks the status is one of the defined standings.
func (s SubscriptionStatus) Validate() error {
	switch s {
	case SubscriptionFreeTier, SubscriptionActive, SubscriptionPastDue, SubscriptionCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"subscriptionStatus", fmt.Errorf("%d is not a valid subscription status", s))
	}
}

// Blocked reports whether the standing blocks driver invitations.
func (s SubscriptionStatus) Blocked() bool {
	return s == SubscriptionPastDue || s == SubscriptionCancelled
}

// Tenant is a fleet-owning business entity (mitra) and the unit of data
// isolation. Its subscription standing and active-driver limit gate
// admission of new drivers.
type Tenant struct {
	id                 kernel.UUID
	name               string
	subscriptionStatus SubscriptionStatus
	activeDriverLimit  int

	isConstructed bool
}

// NewTenant creates a validated Tenant.
func NewTenant(id kernel.UUID, name string, status SubscriptionStatus, activeDriverLimit int) (*Tenant, error) {
	t := &Tenant{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSubscriptionStatus(status),
		t.setActiveDriverLimit(activeDriverLimit),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Tenant was created through NewTenant.
func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}
	return nil
}

// ID returns the tenant's unique identifier.
func (t *Tenant) ID() kernel.UUID {
	return t.id
}

// Name returns the tenant's display name.
func (t *Tenant) Name() string {
	return t.name
}

// SubscriptionStatus returns the tenant's billing standing.
func (t *Tenant) SubscriptionStatus() SubscriptionStatus {
	return t.subscriptionStatus
}

// ActiveDriverLimit returns the maximum number of active drivers allowed.
func (t *Tenant) ActiveDriverLimit() int {
	return t.activeDriverLimit
}

// CanAdmitDriver gates driver invitations by subscription standing and
// quota. A blocked standing always wins over the driver count.
//
// Returns a PaymentRequired-kind error when the standing is past_due or
// cancelled, or when activeDriverCount has reached the limit.
func (t *Tenant) CanAdmitDriver(activeDriverCount int) error {
	if t.subscriptionStatus.Blocked() {
		return errs.NewPaymentRequiredError(
			fmt.Sprintf("subscription is %s", t.subscriptionStatus))
	}
	if activeDriverCount >= t.activeDriverLimit {
		return errs.NewPaymentRequiredError(
			fmt.Sprintf("active driver limit of %d reached", t.activeDriverLimit))
	}
	return nil
}

// ActivateSubscription moves the tenant to the active standing. Applied when
// a subscription invoice is confirmed paid.
func (t *Tenant) ActivateSubscription() {
	t.subscriptionStatus = SubscriptionActive
}

// MarkPastDue flags the tenant after a subscription invoice went overdue.
// A no-op when the tenant is already past_due; the boolean reports whether
// the standing actually changed.
func (t *Tenant) MarkPastDue() bool {
	if t.subscriptionStatus == SubscriptionPastDue {
		return false
	}
	t.subscriptionStatus = SubscriptionPastDue
	return true
}

func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tenant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Tenant) setSubscriptionStatus(status SubscriptionStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.subscriptionStatus = status
	return nil
}

func (t *Tenant) setActiveDriverLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"activeDriverLimit", fmt.Errorf("%d is negative", limit))
	}
	t.activeDriverLimit = limit
	return nil
}
