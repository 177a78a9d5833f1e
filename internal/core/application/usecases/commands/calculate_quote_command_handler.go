package commands

import (
	"context"

	"kirim/internal/core/domain/services"
	"kirim/internal/pkg/errs"
)

// CalculateQuoteCommandHandler prices a route against a service's rate card
// without creating an order. The same calculator backs order placement, so
// a quote and the subsequent order always agree.
type CalculateQuoteCommandHandler struct {
	uowFactory      OrderUoWFactory
	quoteCalculator services.QuoteCalculator
}

// NewCalculateQuoteCommandHandler creates a handler for quote requests.
func NewCalculateQuoteCommandHandler(
	uowFactory OrderUoWFactory, quoteCalculator services.QuoteCalculator,
) CalculateQuoteCommandHandler {
	return CalculateQuoteCommandHandler{
		uowFactory:      uowFactory,
		quoteCalculator: quoteCalculator,
	}
}

// Handle resolves the service, checks its visibility to the requester and
// prices the route. Unlisted services are reported as missing to outsiders.
func (h *CalculateQuoteCommandHandler) Handle(
	ctx context.Context, cmd CalculateQuoteCommand,
) (services.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return services.Quote{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Quote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return services.Quote{}, err
	}

	if !svc.VisibleTo(cmd.TenantID()) {
		return services.Quote{}, errs.NewObjectNotFoundError("serviceID", cmd.ServiceID())
	}

	quote, err := h.quoteCalculator.Calculate(ctx, svc, cmd.Route())
	if err != nil {
		return services.Quote{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Quote{}, err
	}

	return quote, nil
}
