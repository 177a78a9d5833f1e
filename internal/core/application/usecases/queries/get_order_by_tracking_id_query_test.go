package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/pkg/errs"
)

func TestNewGetOrderByTrackingIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByTrackingIDQuery("KRM-0D7E11AA42FF")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "KRM-0D7E11AA42FF", query.TrackingID())
}

func TestNewGetOrderByTrackingIDQuery_EmptyTrackingID(t *testing.T) {
	_, err := queries.NewGetOrderByTrackingIDQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderByTrackingIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByTrackingIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByTrackingIDQueryIsNotConstructed)
}
