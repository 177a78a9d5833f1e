package order_test

import (
	"fmt"
	"testing"

	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.PendingDispatch,
		order.Accepted,
		order.Pickup,
		order.InTransit,
		order.Delivered,
		order.Cancelled,
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.PendingDispatch: {order.Accepted, order.Cancelled},
		order.Accepted:        {order.Pickup, order.Cancelled},
		order.Pickup:          {order.InTransit, order.Cancelled},
		order.InTransit:       {order.Delivered, order.Cancelled},
		order.Delivered:       {},
		order.Cancelled:       {},
	}

	isAllowed := func(from, to order.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	// Exhaustive check over every (from, to) pair: the transition succeeds
	// iff the pair is in the table, otherwise a conflict is raised.
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)
				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
				} else {
					require.ErrorIs(t, err, errs.ErrConflict)
					assert.Contains(t, err.Error(),
						fmt.Sprintf("invalid status transition from %s to %s", from, to))
				}
			})
		}
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.PendingDispatch.TransitionTo(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.PendingDispatch.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.False(t, order.Pickup.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending_dispatch", order.PendingDispatch.String())
	assert.Equal(t, "accepted", order.Accepted.String())
	assert.Equal(t, "pickup", order.Pickup.String())
	assert.Equal(t, "in_transit", order.InTransit.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	for _, status := range allStatuses() {
		parsed, err := order.StatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.StatusFromString("teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		require.NoError(t, status.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}
