package tenant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrInviteIsNotConstructed is returned when an Invite instance was not
// created through the NewInvite factory method.
var ErrInviteIsNotConstructed = errors.New("Invite must be created via NewInvite constructor")

// InviteTTL is how long a fresh invite stays redeemable.
const InviteTTL = 7 * 24 * time.Hour

// InviteStatus is the redemption state of a driver invite.
type InviteStatus int

const (
	// InviteStatusUnknown is the invalid zero value.
	InviteStatusUnknown InviteStatus = iota

	// InvitePending means the invite awaits acceptance.
	InvitePending

	// InviteAccepted means the invite was consumed. Terminal.
	InviteAccepted
)

// InviteStatusFromString parses a wire/persistence invite status name.
func InviteStatusFromString(s string) (InviteStatus, error) {
	switch s {
	case "pending":
		return InvitePending, nil
	case "accepted":
		return InviteAccepted, nil
	default:
		return InviteStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"inviteStatus", fmt.Errorf("%q is not a valid invite status", s))
	}
}

// String returns the wire name of the invite status.
func (s InviteStatus) String() string {
	switch s {
	case InvitePending:
		return "pending"
	case InviteAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Invite is a single-use driver invitation carrying a random token and an
// expiry. Acceptance consumes the invite exactly once.
type Invite struct {
	id        kernel.UUID
	tenantID  kernel.UUID
	email     string
	token     string
	expiresAt time.Time
	status    InviteStatus
	createdAt time.Time

	isConstructed bool
}

// NewInvite creates a pending Invite expiring at createdAt + InviteTTL.
// The token is generated by the caller (it needs a secure random source).
func NewInvite(id, tenantID kernel.UUID, email, token string, createdAt time.Time) (*Invite, error) {
	inv := &Invite{
		status:        InvitePending,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setTenantID(tenantID),
		inv.setEmail(email),
		inv.setToken(token),
		inv.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	inv.expiresAt = createdAt.Add(InviteTTL)
	return inv, nil
}

// RestoreInvite reconstructs an Invite from persistence.
func RestoreInvite(
	id, tenantID kernel.UUID, email, token string, expiresAt time.Time, status InviteStatus, createdAt time.Time,
) (*Invite, error) {
	inv, err := NewInvite(id, tenantID, email, token, createdAt)
	if err != nil {
		return nil, err
	}
	if status != InvitePending && status != InviteAccepted {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"inviteStatus", fmt.Errorf("%d is not a valid invite status", status))
	}
	inv.expiresAt = expiresAt
	inv.status = status
	return inv, nil
}

// Validate ensures the Invite was created through NewInvite.
func (i *Invite) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInviteIsNotConstructed
	}
	return nil
}

// ID returns the invite's unique identifier.
func (i *Invite) ID() kernel.UUID {
	return i.id
}

// TenantID returns the inviting tenant.
func (i *Invite) TenantID() kernel.UUID {
	return i.tenantID
}

// Email returns the invited address, normalized to lower case.
func (i *Invite) Email() string {
	return i.email
}

// Token returns the opaque redemption token.
func (i *Invite) Token() string {
	return i.token
}

// ExpiresAt returns the redemption deadline.
func (i *Invite) ExpiresAt() time.Time {
	return i.expiresAt
}

// Status returns the redemption state.
func (i *Invite) Status() InviteStatus {
	return i.status
}

// CreatedAt returns the creation timestamp.
func (i *Invite) CreatedAt() time.Time {
	return i.createdAt
}

// IsPending reports whether the invite is still open for acceptance.
func (i *Invite) IsPending() bool {
	return i.status == InvitePending
}

// Verify checks the invite is redeemable at the given time.
//
// Returns a Conflict-kind "already used" error for accepted invites and a
// BadRequest-kind "expired" error past the deadline. Existence (NotFound)
// is the repository's concern.
func (i *Invite) Verify(now time.Time) error {
	if i.status == InviteAccepted {
		return errs.NewConflictError("invite already used")
	}
	if now.After(i.expiresAt) {
		return errs.NewValueIsInvalidErrorWithCause("invite", errors.New("invite has expired"))
	}
	return nil
}

// Accept consumes the invite on behalf of the authenticated user's email.
//
// In addition to Verify's checks, the email must match the invited address
// (case-insensitive); a mismatch is a BadRequest-kind error. A second
// acceptance raises Conflict via Verify.
func (i *Invite) Accept(email string, now time.Time) error {
	if err := i.Verify(now); err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(email), i.email) {
		return errs.NewValueIsInvalidErrorWithCause("invite",
			errors.New("email does not match the invited address"))
	}
	i.status = InviteAccepted
	return nil
}

// ExtendExpiry pushes the redemption deadline out for a resend. The token
// never changes. Only pending invites can be extended.
func (i *Invite) ExtendExpiry(now time.Time) error {
	if i.status != InvitePending {
		return errs.NewConflictError("invite already used")
	}
	i.expiresAt = now.Add(InviteTTL)
	return nil
}

func (i *Invite) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invite) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.tenantID = id
	return nil
}

func (i *Invite) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	i.email = email
	return nil
}

func (i *Invite) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	i.token = token
	return nil
}

func (i *Invite) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	i.createdAt = createdAt
	return nil
}
