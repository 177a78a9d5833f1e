// Package geo provides distance calculators for the quote engine: a
// great-circle fallback and a client for an external routing service.
package geo

import (
	"context"
	"math"

	"kirim/internal/core/domain/model/kernel"
)

const earthRadiusKm = 6371.0

// HaversineCalculator computes great-circle distance between two points.
// It underestimates road distance but needs no external service, so it
// serves as the routing fallback and the default in development.
type HaversineCalculator struct{}

// NewHaversineCalculator creates a great-circle distance calculator.
func NewHaversineCalculator() HaversineCalculator {
	return HaversineCalculator{}
}

// DistanceKm returns the great-circle distance between from and to in
// kilometres.
func (HaversineCalculator) DistanceKm(_ context.Context, from, to kernel.GeoPoint) (float64, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	lat1 := from.Lat() * math.Pi / 180
	lat2 := to.Lat() * math.Pi / 180
	dLat := (to.Lat() - from.Lat()) * math.Pi / 180
	dLng := (to.Lng() - from.Lng()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}
