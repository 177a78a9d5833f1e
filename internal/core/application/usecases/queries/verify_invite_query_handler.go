package queries

import (
	"context"
	"errors"
	"time"

	"kirim/internal/core/domain/model/tenant"
	"kirim/internal/pkg/errs"

	"gorm.io/gorm"
)

// VerifyInviteQueryHandler answers the anonymous invite landing page with a
// direct SQL read. The token is only checked here, never consumed.
type VerifyInviteQueryHandler struct {
	db *gorm.DB
}

// NewVerifyInviteQueryHandler creates a handler for invite verification.
func NewVerifyInviteQueryHandler(db *gorm.DB) VerifyInviteQueryHandler {
	return VerifyInviteQueryHandler{db: db}
}

// Handle resolves an invite token to the inviting tenant and invited email.
//
// An unknown token yields NotFound, an already accepted invite yields
// Conflict and an expired one yields a BadRequest-kind error, so the landing
// page can tell the invitee exactly why the link no longer works.
func (h VerifyInviteQueryHandler) Handle(
	ctx context.Context,
	query VerifyInviteQuery,
) (VerifyInviteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VerifyInviteQueryResponse{}, err
	}

	var response VerifyInviteQueryResponse
	var status string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.name,
			i.email,
			i.status,
			i.expires_at
		FROM invites i
		JOIN tenants t ON t.id = i.tenant_id
		WHERE i.token = ?
	`, query.Token()).Row()

	err := row.Scan(&response.TenantName, &response.Email, &status, &response.ExpiresAt)
	if err != nil {
		return VerifyInviteQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("token", query.Token(), err)
	}

	inviteStatus, err := tenant.InviteStatusFromString(status)
	if err != nil {
		return VerifyInviteQueryResponse{}, err
	}

	if inviteStatus == tenant.InviteAccepted {
		return VerifyInviteQueryResponse{}, errs.NewConflictError("invite already used")
	}
	if time.Now().UTC().After(response.ExpiresAt) {
		return VerifyInviteQueryResponse{},
			errs.NewValueIsInvalidErrorWithCause("invite", errors.New("invite has expired"))
	}

	return response, nil
}
