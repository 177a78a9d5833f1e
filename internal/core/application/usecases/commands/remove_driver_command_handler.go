package commands

import (
	"context"

	"kirim/internal/pkg/errs"
)

// RemoveDriverCommandHandler deactivates a roster driver. Removal frees the
// driver's seat immediately; every subsequent driver request re-checks
// active standing inside its own transaction, so access ends here even if
// the driver still holds a valid token. In-flight orders keep their
// assignment for the audit trail but can no longer be advanced.
type RemoveDriverCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver removal.
func NewRemoveDriverCommandHandler(uowFactory TenantUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. Removing an already-inactive driver is a
// no-op; drivers of other tenants are reported as not found.
func (h *RemoveDriverCommandHandler) Handle(ctx context.Context, cmd RemoveDriverCommand) error {
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

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	if !driver.IsActive() {
		return uow.Commit(ctx)
	}

	driver.Deactivate()

	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	actorID := cmd.TenantID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"driver.removed", "driver", driver.ID(), driver.Email()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
