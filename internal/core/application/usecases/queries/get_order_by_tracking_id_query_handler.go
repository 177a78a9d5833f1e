package queries

import (
	"context"

	"kirim/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByTrackingIDQueryHandler serves the anonymous tracking page with
// direct SQL reads, bypassing the aggregate repositories.
type GetOrderByTrackingIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByTrackingIDQueryHandler creates a handler for tracking lookups.
func NewGetOrderByTrackingIDQueryHandler(db *gorm.DB) GetOrderByTrackingIDQueryHandler {
	return GetOrderByTrackingIDQueryHandler{db: db}
}

// Handle resolves a tracking ID to the order's status and route stops.
// Returns a NotFound error when no order carries the tracking ID.
func (h GetOrderByTrackingIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingIDQuery,
) (GetOrderByTrackingIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByTrackingIDQueryResponse{}, err
	}

	var response GetOrderByTrackingIDQueryResponse
	var orderID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			created_at
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID()).Row()

	err := row.Scan(&orderID, &response.TrackingID, &response.Status, &response.CreatedAt)
	if err != nil {
		return GetOrderByTrackingIDQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("trackingID", query.TrackingID(), err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sequence,
			stop_type,
			address,
			lat,
			lng,
			completed
		FROM order_stops
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID).Rows()
	if err != nil {
		return GetOrderByTrackingIDQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop TrackingStopResponse

		err = rows.Scan(
			&stop.Sequence,
			&stop.Type,
			&stop.Address,
			&stop.Lat,
			&stop.Lng,
			&stop.Completed,
		)
		if err != nil {
			return GetOrderByTrackingIDQueryResponse{}, err
		}

		response.Stops = append(response.Stops, stop)
	}

	if err = rows.Err(); err != nil {
		return GetOrderByTrackingIDQueryResponse{}, err
	}

	return response, nil
}
