package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/core/domain/model/tenant"
)

func fixturePoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func fixtureStops(t *testing.T) []*order.Stop {
	t.Helper()

	pickup, err := order.NewStop(
		kernel.NewUUID(), 1, order.StopTypePickup, "Jl. Sudirman 1", fixturePoint(t, -6.21, 106.82))
	require.NoError(t, err)

	dropoff, err := order.NewStop(
		kernel.NewUUID(), 2, order.StopTypeDropoff, "Jl. Thamrin 9", fixturePoint(t, -6.19, 106.83))
	require.NoError(t, err)

	return []*order.Stop{pickup, dropoff}
}

// fixtureOrder builds an order assigned to driverID, in Accepted status.
func fixtureOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), "KRM-0D7E11AA42FF", kernel.NewUUID(),
		order.Contact{Name: "Budi", Phone: "+62811111111"},
		order.Contact{Name: "Sari", Phone: "+62822222222"},
		15400, "", fixtureStops(t), &driverID, nil, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func fixtureDriver(t *testing.T, tenantID kernel.UUID) *tenant.Driver {
	t.Helper()

	d, err := tenant.NewDriver(
		kernel.NewUUID(), tenantID, kernel.NewUUID(), "Budi Santoso", "budi@example.com")
	require.NoError(t, err)
	return d
}

func fixtureTenant(t *testing.T, status tenant.SubscriptionStatus, seatLimit int) *tenant.Tenant {
	t.Helper()

	owner, err := tenant.NewTenant(kernel.NewUUID(), "Kirim Cepat", status, seatLimit)
	require.NoError(t, err)
	return owner
}

func fixtureService(t *testing.T, tenantID kernel.UUID, listed bool) *catalog.DeliveryService {
	t.Helper()

	svc, err := catalog.NewDeliveryService(
		kernel.NewUUID(), tenantID, "same-day",
		listed, &catalog.RateCard{BaseFee: 5000, FeePerKm: 2000})
	require.NoError(t, err)
	return svc
}

func fixtureInvoice(t *testing.T, tenantID kernel.UUID, invoiceType invoice.Type) *invoice.Invoice {
	t.Helper()

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-2026-0AB1C2D3E4", tenantID, invoiceType,
		250000, "IDR", "", "00020101021226paycode6304ABCD",
		time.Now().UTC().Add(14*24*time.Hour), time.Now().UTC())
	require.NoError(t, err)
	return inv
}
