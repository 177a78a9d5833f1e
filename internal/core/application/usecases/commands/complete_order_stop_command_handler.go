package commands

import (
	"context"
	"fmt"
)

// CompleteOrderStopCommandHandler marks a route stop completed on behalf of
// the assigned driver. Completing an already-completed stop is a no-op so
// retried mobile requests stay safe.
type CompleteOrderStopCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderStopCommandHandler creates a handler for stop completion.
func NewCompleteOrderStopCommandHandler(uowFactory OrderUoWFactory) CompleteOrderStopCommandHandler {
	return CompleteOrderStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop completion command. Unknown stops on a known
// order return not found; repeats commit without writing a second audit
// record.
func (h *CompleteOrderStopCommandHandler) Handle(
	ctx context.Context, cmd CompleteOrderStopCommand,
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

	changed, err := aggregate.CompleteStop(cmd.StopID())
	if err != nil {
		return err
	}

	if changed {
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		actorID := cmd.DriverID()
		if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
			"order.stop_completed", "order", aggregate.ID(),
			fmt.Sprintf("stop %s", cmd.StopID()),
		); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
