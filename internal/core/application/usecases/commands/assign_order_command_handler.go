package commands

import (
	"context"
	"fmt"

	"kirim/internal/core/ports"
	"kirim/internal/pkg/errs"
)

// AssignOrderCommandHandler assigns a driver to a pending order. Assignment
// is only legal while the order awaits dispatch; the driver must be an
// active member of the acting tenant, and the order's service must belong
// to that tenant. Both checks fail as not found so callers cannot probe
// other tenants' resources.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.TrackingNotifier
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.TrackingNotifier,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command. The order moves to Accepted;
// assigning an already-dispatched order returns a conflict from the
// aggregate.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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
	if !driver.TenantID().IsEqual(cmd.TenantID()) || !driver.IsActive() {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Orders are owned through their service; foreign orders read as absent.
	svc, err := uow.ServiceRepository().Get(ctx, aggregate.ServiceID())
	if err != nil {
		return err
	}
	if !svc.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	driverID := cmd.DriverID()
	if err = aggregate.Assign(driverID, cmd.VehicleID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	actorID := cmd.TenantID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"order.assigned", "order", aggregate.ID(),
		fmt.Sprintf("driver %s", driverID),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	return nil
}
