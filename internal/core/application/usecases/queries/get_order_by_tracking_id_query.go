package queries

import (
	"errors"
	"time"

	"kirim/internal/pkg/errs"
	"kirim/internal/pkg/guard"
)

var ErrGetOrderByTrackingIDQueryIsNotConstructed = errors.New(
	"GetOrderByTrackingIDQuery must be created via NewGetOrderByTrackingIDQuery constructor",
)

// GetOrderByTrackingIDQuery retrieves the public tracking view of an order.
// The tracking page is anonymous, so the response deliberately omits contact
// details and internal identifiers.
type GetOrderByTrackingIDQuery struct {
	guard guard.ConstructorGuard

	trackingID string
}

// NewGetOrderByTrackingIDQuery creates a tracking lookup for the given
// tracking ID.
func NewGetOrderByTrackingIDQuery(trackingID string) (GetOrderByTrackingIDQuery, error) {
	if trackingID == "" {
		return GetOrderByTrackingIDQuery{}, errs.NewValueIsRequiredError("trackingID")
	}

	return GetOrderByTrackingIDQuery{
		guard:      guard.NewConstructorGuard(),
		trackingID: trackingID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByTrackingIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingIDQueryIsNotConstructed)
}

// TrackingID returns the public tracking ID being looked up.
func (q GetOrderByTrackingIDQuery) TrackingID() string {
	return q.trackingID
}

// GetOrderByTrackingIDQueryResponse is the public tracking read model.
type GetOrderByTrackingIDQueryResponse struct {
	TrackingID string
	Status     string
	CreatedAt  time.Time
	Stops      []TrackingStopResponse
}

// TrackingStopResponse is one route stop on the tracking page.
type TrackingStopResponse struct {
	Sequence  int
	Type      string
	Address   string
	Lat       float64
	Lng       float64
	Completed bool
}
