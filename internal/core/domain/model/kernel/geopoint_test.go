package kernel_test

import (
	"testing"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-6.2, 106.8)

		require.NoError(t, err)
		assert.InDelta(t, -6.2, point.Lat(), 1e-9)
		assert.InDelta(t, 106.8, point.Lng(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		} {
			point, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
			require.NoError(t, point.Validate())
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(-90.1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(0, -180.1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint

	require.Error(t, point.Validate())
	require.ErrorIs(t, point.Validate(), errs.ErrValueIsRequired)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(-6.2, 106.8)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(-6.2, 106.8)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(-6.3, 106.9)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(-6.2, 106.8)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(-6.2,106.8)", point.String())
}
