package services

import (
	"context"
	"math"

	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// DistanceCalculator resolves the travel distance in kilometres between two
// geographic points. Implementations typically call an external routing
// provider and may fall back to straight-line distance when it is
// unavailable.
type DistanceCalculator interface {
	DistanceKm(ctx context.Context, from, to kernel.GeoPoint) (float64, error)
}

// Quote is the priced result of a route estimate.
type Quote struct {
	// EstimatedCost is the total price in whole currency units.
	EstimatedCost int64

	// TotalDistanceKm is the summed leg distance the price was derived from.
	TotalDistanceKm float64
}

// QuoteCalculator is a domain service that prices a prospective order
// against a delivery service's rate card.
//
// Pricing rule:
//
//	cost = baseFee + feePerKm * totalDistanceKm
//
// where totalDistanceKm is the sum of consecutive leg distances along the
// route and the result is rounded half-up to a whole currency unit.
type QuoteCalculator struct {
	distance DistanceCalculator
}

// NewQuoteCalculator creates a QuoteCalculator backed by the given distance
// calculator.
func NewQuoteCalculator(distance DistanceCalculator) QuoteCalculator {
	return QuoteCalculator{distance: distance}
}

// Calculate prices a route through the given points with the service's rate
// card. The route must contain at least two points and the service must
// carry a rate card.
func (q QuoteCalculator) Calculate(
	ctx context.Context, svc *catalog.DeliveryService, route []kernel.GeoPoint,
) (Quote, error) {
	if err := svc.Validate(); err != nil {
		return Quote{}, err
	}

	rateCard := svc.RateCard()
	if rateCard == nil {
		return Quote{}, errs.NewObjectNotFoundError("rateCard", svc.ID())
	}

	if len(route) < 2 {
		return Quote{}, errs.NewValueIsInvalidError("route")
	}

	var totalKm float64
	for i := 1; i < len(route); i++ {
		km, err := q.distance.DistanceKm(ctx, route[i-1], route[i])
		if err != nil {
			return Quote{}, err
		}
		totalKm += km
	}

	cost := float64(rateCard.BaseFee) + float64(rateCard.FeePerKm)*totalKm

	return Quote{
		EstimatedCost:   int64(math.Round(cost)),
		TotalDistanceKm: totalKm,
	}, nil
}
