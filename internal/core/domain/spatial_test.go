package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
)

func TestCentroid(t *testing.T) {
	c, ok := domain.Centroid([]domain.GeoPoint{
		{Lat: 10, Lng: 20},
		{Lat: 30, Lng: 40},
		{Lat: 20, Lng: 0},
	})
	require.True(t, ok)
	assert.InDelta(t, 20.0, c.Lat, 1e-9)
	assert.InDelta(t, 20.0, c.Lng, 1e-9)

	_, ok = domain.Centroid(nil)
	assert.False(t, ok)
}

func TestProportionalRadius_Bounds(t *testing.T) {
	s := domain.PopulationRadius

	assert.Equal(t, 8.0, domain.ProportionalRadius(0, 1000, s))
	assert.Equal(t, 8.0, domain.ProportionalRadius(100, 0, s))
	assert.Equal(t, 8.0, domain.ProportionalRadius(100, -5, s))
	assert.Equal(t, 50.0, domain.ProportionalRadius(1000, 1000, s))
	// sqrt(0.04) * 150 = 30
	assert.InDelta(t, 30.0, domain.ProportionalRadius(40, 1000, s), 1e-9)
}

func TestProportionalRadius_Monotonic(t *testing.T) {
	s := domain.PopulationRadius
	const total = 300000.0

	prev := domain.ProportionalRadius(0, total, s)
	for v := 0.0; v <= total; v += total / 200 {
		r := domain.ProportionalRadius(v, total, s)
		assert.GreaterOrEqual(t, r, prev, "value %f", v)
		assert.GreaterOrEqual(t, r, s.Min)
		assert.LessOrEqual(t, r, s.Max)
		prev = r
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	assert.NoError(t, domain.GeoPoint{Lat: 41.01, Lng: 28.98}.Validate())
	assert.NoError(t, domain.GeoPoint{Lat: -90, Lng: 180}.Validate())

	err := domain.GeoPoint{Lat: 91, Lng: 0}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)

	assert.False(t, domain.GeoPoint{Lat: 0, Lng: -180.5}.Valid())
}

func TestGeoPoint_NearBox(t *testing.T) {
	athens := domain.GeoPoint{Lat: 37.98, Lng: 23.73}
	assert.True(t, athens.NearBox(domain.GeoPoint{Lat: 41.01, Lng: 28.98}, 20))
	assert.False(t, athens.NearBox(domain.GeoPoint{Lat: 35.68, Lng: 139.69}, 20))
}
