package commands

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/tenant"
)

// AcceptInviteCommandHandler admits an invited driver onto a tenant's
// roster. The invite, the tenant's subscription standing and the seat
// count are all checked inside one transaction so two concurrent
// acceptances cannot both take the last seat.
type AcceptInviteCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewAcceptInviteCommandHandler creates a handler for invite acceptance.
func NewAcceptInviteCommandHandler(uowFactory TenantUoWFactory) AcceptInviteCommandHandler {
	return AcceptInviteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance. Expired invites and email mismatches
// fail as bad requests from the invite entity; a blocked subscription or a
// full roster fails with payment required and the invite stays pending so
// it can be retried once the tenant recovers.
func (h *AcceptInviteCommandHandler) Handle(ctx context.Context, cmd AcceptInviteCommand) error {
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

	invite, err := uow.InviteRepository().GetByToken(ctx, cmd.Token())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = invite.Accept(cmd.Email(), now); err != nil {
		return err
	}

	owner, err := uow.TenantRepository().Get(ctx, invite.TenantID())
	if err != nil {
		return err
	}

	activeCount, err := uow.DriverRepository().CountActive(ctx, owner.ID())
	if err != nil {
		return err
	}
	if err = owner.CanAdmitDriver(activeCount); err != nil {
		return err
	}

	driver, err := tenant.NewDriver(cmd.DriverID(), owner.ID(), cmd.UserID(), cmd.Name(), cmd.Email())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, driver); err != nil {
		return err
	}

	if err = uow.InviteRepository().Update(ctx, invite); err != nil {
		return err
	}

	actorID := cmd.UserID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"driver.joined", "driver", driver.ID(), cmd.Email()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
