package commands

import (
	"context"
	"time"

	"kirim/internal/pkg/errs"
)

// ResendInviteCommandHandler pushes a pending invite's expiry out by the
// standard invite window so the original token keeps working.
type ResendInviteCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewResendInviteCommandHandler creates a handler for invite resends.
func NewResendInviteCommandHandler(uowFactory TenantUoWFactory) ResendInviteCommandHandler {
	return ResendInviteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resend. Invites of other tenants are reported as
// not found; accepted invites fail with a conflict from the entity.
func (h *ResendInviteCommandHandler) Handle(ctx context.Context, cmd ResendInviteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invite, err := uow.InviteRepository().Get(ctx, cmd.InviteID())
	if err != nil {
		return err
	}
	if !invite.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("inviteID", cmd.InviteID())
	}

	if err = invite.ExtendExpiry(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.InviteRepository().Update(ctx, invite); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
