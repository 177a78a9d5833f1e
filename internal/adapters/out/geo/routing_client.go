package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kirim/internal/core/domain/model/kernel"

	"github.com/rs/zerolog"
)

// RoutingClient resolves road distance through an OSRM-compatible routing
// service, falling back to great-circle distance when the service is
// unreachable. A quote degrades gracefully; it never fails because the
// router is down.
type RoutingClient struct {
	baseURL  string
	client   *http.Client
	fallback HaversineCalculator
	logger   zerolog.Logger
}

// NewRoutingClient creates a routing-service distance calculator.
func NewRoutingClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *RoutingClient {
	return &RoutingClient{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		fallback: NewHaversineCalculator(),
		logger:   logger,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// DistanceKm returns the road distance between from and to in kilometres.
func (c *RoutingClient) DistanceKm(ctx context.Context, from, to kernel.GeoPoint) (float64, error) {
	distance, err := c.queryRoute(ctx, from, to)
	if err != nil {
		c.logger.Warn().Err(err).Msg("routing service unavailable, falling back to great-circle distance")
		return c.fallback.DistanceKm(ctx, from, to)
	}

	return distance, nil
}

func (c *RoutingClient) queryRoute(ctx context.Context, from, to kernel.GeoPoint) (float64, error) {
	// OSRM expects lng,lat pairs.
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?%s",
		c.baseURL, from.Lng(), from.Lat(), to.Lng(), to.Lat(),
		url.Values{"overview": {"false"}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var route routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return 0, err
	}
	if route.Code != "Ok" || len(route.Routes) == 0 {
		return 0, fmt.Errorf("routing service returned code %q", route.Code)
	}

	return route.Routes[0].Distance / 1000, nil
}
