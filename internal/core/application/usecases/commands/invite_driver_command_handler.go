package commands

import (
	"context"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/tenant"
	"kirim/internal/pkg/errs"
)

// InviteDriverResult carries the generated invite token back to the caller
// so it can be delivered to the invitee out of band.
type InviteDriverResult struct {
	InviteID  kernel.UUID
	Token     string
	ExpiresAt time.Time
}

// InviteDriverCommandHandler creates driver invites. Admission is gated at
// invite time: a blocked subscription or a full roster fails with payment
// required and no invite is stored. The same gate runs again at acceptance
// because standing and roster may change while the invite is outstanding.
type InviteDriverCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewInviteDriverCommandHandler creates a handler for driver invites.
func NewInviteDriverCommandHandler(uowFactory TenantUoWFactory) InviteDriverCommandHandler {
	return InviteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invite command and returns the opaque token.
func (h *InviteDriverCommandHandler) Handle(
	ctx context.Context, cmd InviteDriverCommand,
) (InviteDriverResult, error) {
	if err := cmd.Validate(); err != nil {
		return InviteDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InviteDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.TenantRepository().Get(ctx, cmd.TenantID())
	if err != nil {
		return InviteDriverResult{}, err
	}

	activeCount, err := uow.DriverRepository().CountActive(ctx, owner.ID())
	if err != nil {
		return InviteDriverResult{}, err
	}
	if err = owner.CanAdmitDriver(activeCount); err != nil {
		return InviteDriverResult{}, err
	}

	if err = h.checkEmailIsFree(ctx, uow, cmd.TenantID(), cmd.Email()); err != nil {
		return InviteDriverResult{}, err
	}

	token, err := newInviteToken()
	if err != nil {
		return InviteDriverResult{}, err
	}

	invite, err := tenant.NewInvite(cmd.InviteID(), cmd.TenantID(), cmd.Email(), token, time.Now().UTC())
	if err != nil {
		return InviteDriverResult{}, err
	}

	if err = uow.InviteRepository().Add(ctx, invite); err != nil {
		return InviteDriverResult{}, err
	}

	actorID := cmd.TenantID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"driver.invited", "invite", invite.ID(), cmd.Email()); err != nil {
		return InviteDriverResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return InviteDriverResult{}, err
	}

	return InviteDriverResult{
		InviteID:  invite.ID(),
		Token:     token,
		ExpiresAt: invite.ExpiresAt(),
	}, nil
}

// checkEmailIsFree rejects emails already on the active roster or already
// holding a pending invite for the tenant.
func (h *InviteDriverCommandHandler) checkEmailIsFree(
	ctx context.Context, uow TenantUoW, tenantID kernel.UUID, email string,
) error {
	if _, err := uow.DriverRepository().GetActiveByEmail(ctx, tenantID, email); err == nil {
		return errs.NewConflictError(fmt.Sprintf("%s is already an active driver", email))
	} else if errs.KindOf(err) != errs.KindNotFound {
		return err
	}

	if _, err := uow.InviteRepository().GetPendingByEmail(ctx, tenantID, email); err == nil {
		return errs.NewConflictError(fmt.Sprintf("a pending invite for %s already exists", email))
	} else if errs.KindOf(err) != errs.KindNotFound {
		return err
	}

	return nil
}
