package commands

import (
	"context"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/errs"
)

// loadOrderForDriver fetches an order on behalf of an acting driver,
// re-checking inside the transaction that the driver is still active and
// assigned to it. Unassigned and inaccessible orders are reported as not
// found so drivers cannot probe for other tenants' orders.
func loadOrderForDriver(
	ctx context.Context, uow OrderUoW, orderID, driverID kernel.UUID,
) (*order.Order, error) {
	driver, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsActive() {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsAssignedTo(driverID) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}

	return aggregate, nil
}
