package tenant_test

import (
	"testing"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/tenant"
	"kirim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTenant(t *testing.T, status tenant.SubscriptionStatus, limit int) *tenant.Tenant {
	t.Helper()
	mitra, err := tenant.NewTenant(kernel.NewUUID(), "Maju Jaya Logistik", status, limit)
	require.NoError(t, err)
	return mitra
}

func TestNewTenant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionActive, 5)

		assert.Equal(t, tenant.SubscriptionActive, mitra.SubscriptionStatus())
		assert.Equal(t, 5, mitra.ActiveDriverLimit())
		require.NoError(t, mitra.Validate())
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := tenant.NewTenant(kernel.NewUUID(), "", tenant.SubscriptionActive, 5)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_limit", func(t *testing.T) {
		_, err := tenant.NewTenant(kernel.NewUUID(), "X", tenant.SubscriptionActive, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTenant_CanAdmitDriver(t *testing.T) {
	t.Run("active_below_limit", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionActive, 3)
		require.NoError(t, mitra.CanAdmitDriver(2))
	})

	t.Run("at_limit", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionActive, 2)

		err := mitra.CanAdmitDriver(2)
		require.ErrorIs(t, err, errs.ErrPaymentRequired)
		assert.Contains(t, err.Error(), "limit of 2 reached")
	})

	t.Run("past_due_blocks_regardless_of_count", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionPastDue, 100)

		err := mitra.CanAdmitDriver(0)
		require.ErrorIs(t, err, errs.ErrPaymentRequired)
		assert.Contains(t, err.Error(), "past_due")
	})

	t.Run("cancelled_blocks", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionCancelled, 100)
		require.ErrorIs(t, mitra.CanAdmitDriver(0), errs.ErrPaymentRequired)
	})

	t.Run("free_tier_admits_within_limit", func(t *testing.T) {
		mitra := newTestTenant(t, tenant.SubscriptionFreeTier, 1)
		require.NoError(t, mitra.CanAdmitDriver(0))
		require.ErrorIs(t, mitra.CanAdmitDriver(1), errs.ErrPaymentRequired)
	})
}

func TestTenant_SubscriptionTransitions(t *testing.T) {
	mitra := newTestTenant(t, tenant.SubscriptionActive, 3)

	assert.True(t, mitra.MarkPastDue())
	assert.Equal(t, tenant.SubscriptionPastDue, mitra.SubscriptionStatus())

	// Second flip reports no change.
	assert.False(t, mitra.MarkPastDue())

	mitra.ActivateSubscription()
	assert.Equal(t, tenant.SubscriptionActive, mitra.SubscriptionStatus())
}

func TestSubscriptionStatusFromString(t *testing.T) {
	for _, name := range []string{"free_tier", "active", "past_due", "cancelled"} {
		status, err := tenant.SubscriptionStatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, status.String())
	}

	_, err := tenant.SubscriptionStatusFromString("trial")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
