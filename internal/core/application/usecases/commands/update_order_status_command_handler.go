package commands

import (
	"context"
	"fmt"

	"kirim/internal/core/ports"
)

// UpdateOrderStatusCommandHandler advances an order's lifecycle on behalf
// of its assigned driver. The driver's membership and active standing are
// re-checked inside the transaction on every update, so a driver removed
// mid-delivery loses access immediately regardless of token lifetime.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.TrackingNotifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for driver status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.TrackingNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update. Orders the driver is not assigned to
// are reported as not found rather than forbidden, so drivers cannot probe
// for the existence of other tenants' orders. Illegal transitions surface
// as conflicts from the aggregate.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) error {
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

	aggregate, err := loadOrderForDriver(ctx, uow, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	actorID := cmd.DriverID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"order.status_changed", "order", aggregate.ID(),
		fmt.Sprintf("%s -> %s", previous, aggregate.Status()),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	return nil
}
