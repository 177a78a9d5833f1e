package commands

import (
	"context"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/order"
	"kirim/internal/core/ports"
)

// SubmitReportCommandHandler files a driver's field report. A dropoff
// report also transitions the order to Delivered in the same transaction,
// so the report and the terminal status can never diverge.
type SubmitReportCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.TrackingNotifier
}

// NewSubmitReportCommandHandler creates a handler for report submission.
func NewSubmitReportCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.TrackingNotifier,
) SubmitReportCommandHandler {
	return SubmitReportCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the report submission. A dropoff report against an
// order that is not in transit fails with a conflict and nothing is
// persisted, including the report itself.
func (h *SubmitReportCommandHandler) Handle(ctx context.Context, cmd SubmitReportCommand) error {
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

	report, err := order.NewReport(
		cmd.ReportID(), cmd.OrderID(), cmd.DriverID(), cmd.Stage(),
		cmd.Notes(), cmd.PhotoRef(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().AddReport(ctx, report); err != nil {
		return err
	}

	delivered := false
	if cmd.Stage() == order.ReportStageDropoff {
		if err = aggregate.MarkDelivered(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
		delivered = true
	}

	actorID := cmd.DriverID()
	if err = appendAudit(ctx, uow.AuditRepository(), &actorID,
		"order.report_filed", "order", aggregate.ID(),
		fmt.Sprintf("stage %s", cmd.Stage()),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if delivered {
		h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	}
	return nil
}
