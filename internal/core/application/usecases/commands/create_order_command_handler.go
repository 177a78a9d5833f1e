package commands

import (
	"context"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/core/domain/services"
	"kirim/internal/core/ports"
	"kirim/internal/pkg/errs"
)

// CreateOrderResult reports the identifiers callers need after placement.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	TrackingID    string
	EstimatedCost int64
}

// CreateOrderCommandHandler handles the business logic for order placement:
// service visibility, route pricing, optional driver pre-assignment and
// transactional persistence with an audit record.
type CreateOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	quoteCalculator services.QuoteCalculator
	notifier        ports.TrackingNotifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	quoteCalculator services.QuoteCalculator,
	notifier ports.TrackingNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		quoteCalculator: quoteCalculator,
		notifier:        notifier,
	}
}

// Handle processes the order placement command. The service must exist and
// be visible to the requester; the estimated cost is derived from its rate
// card before the order is persisted. A pre-assigned driver must be an
// active member of the service's owning tenant.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	// Unlisted services are hidden from outsiders entirely.
	if !svc.VisibleTo(cmd.TenantID()) {
		return CreateOrderResult{}, errs.NewObjectNotFoundError("serviceID", cmd.ServiceID())
	}

	route := make([]kernel.GeoPoint, 0, len(cmd.Stops()))
	for _, spec := range cmd.Stops() {
		route = append(route, spec.Point)
	}

	quote, err := h.quoteCalculator.Calculate(ctx, svc, route)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if cmd.DriverID() != nil {
		if err = h.checkDriver(ctx, uow, svc.TenantID(), *cmd.DriverID()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	stops := make([]*order.Stop, 0, len(cmd.Stops()))
	for _, spec := range cmd.Stops() {
		stop, stopErr := order.NewStop(kernel.NewUUID(), spec.Sequence, spec.Type, spec.Address, spec.Point)
		if stopErr != nil {
			return CreateOrderResult{}, stopErr
		}
		stops = append(stops, stop)
	}

	trackingID, err := newTrackingID()
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), trackingID, cmd.ServiceID(), cmd.Orderer(), cmd.Recipient(),
		quote.EstimatedCost, cmd.Notes(), stops, cmd.DriverID(), cmd.VehicleID(),
		time.Now().UTC())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = appendAudit(ctx, uow.AuditRepository(), cmd.TenantID(),
		"order.created", "order", aggregate.ID(),
		fmt.Sprintf("tracking %s, estimated cost %d", trackingID, quote.EstimatedCost),
	); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)

	return CreateOrderResult{
		OrderID:       aggregate.ID(),
		TrackingID:    trackingID,
		EstimatedCost: quote.EstimatedCost,
	}, nil
}

// checkDriver verifies the pre-assigned driver is an active member of the
// tenant that owns the service. Missing and inactive drivers are reported
// identically so the response does not leak roster details.
func (h *CreateOrderCommandHandler) checkDriver(
	ctx context.Context, uow OrderUoW, tenantID, driverID kernel.UUID,
) error {
	driver, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}
	if !driver.TenantID().IsEqual(tenantID) || !driver.IsActive() {
		return errs.NewObjectNotFoundError("driverID", driverID)
	}
	return nil
}
