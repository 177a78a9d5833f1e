package queries

import (
	"errors"
	"time"

	"kirim/internal/pkg/errs"
	"kirim/internal/pkg/guard"
)

var ErrVerifyInviteQueryIsNotConstructed = errors.New(
	"VerifyInviteQuery must be created via NewVerifyInviteQuery constructor",
)

// VerifyInviteQuery checks an invite token before the invitee commits to
// signing up. It answers the invite landing page without redeeming the
// token.
type VerifyInviteQuery struct {
	guard guard.ConstructorGuard

	token string
}

// NewVerifyInviteQuery creates a verification lookup for the given token.
func NewVerifyInviteQuery(token string) (VerifyInviteQuery, error) {
	if token == "" {
		return VerifyInviteQuery{}, errs.NewValueIsRequiredError("token")
	}

	return VerifyInviteQuery{
		guard: guard.NewConstructorGuard(),
		token: token,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyInviteQuery) Validate() error {
	return q.guard.Validate(ErrVerifyInviteQueryIsNotConstructed)
}

// Token returns the invite token being verified.
func (q VerifyInviteQuery) Token() string {
	return q.token
}

// VerifyInviteQueryResponse describes a valid, still-pending invite.
type VerifyInviteQueryResponse struct {
	TenantName string
	Email      string
	ExpiresAt  time.Time
}
