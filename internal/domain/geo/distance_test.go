//go:build unit

package geo_test

import (
	"testing"

	"dealhub/internal/domain/geo"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type place struct {
	name string
	at   geo.Point
}

func pointOf(p place) geo.Point { return p.at }

func TestDistanceKm(t *testing.T) {
	nyc := geo.Point{Lat: 40.7128, Lng: -74.0060}
	la := geo.Point{Lat: 34.0522, Lng: -118.2437}

	t.Run("identity is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.DistanceKm(nyc, nyc))
		assert.Equal(t, 0.0, geo.DistanceKm(la, la))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, geo.DistanceKm(nyc, la), geo.DistanceKm(la, nyc))
	})

	t.Run("known distance NYC to LA", func(t *testing.T) {
		assert.InDelta(t, 3936.0, geo.DistanceKm(nyc, la), 10.0)
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		d := geo.DistanceKm(geo.Point{Lat: 40, Lng: -73}, geo.Point{Lat: 40.05, Lng: -73})
		assert.Equal(t, 5.6, d)
	})

	t.Run("collinear points on a meridian add up", func(t *testing.T) {
		a := geo.Point{Lat: 40.0, Lng: -73.0}
		b := geo.Point{Lat: 40.5, Lng: -73.0}
		c := geo.Point{Lat: 41.0, Lng: -73.0}
		assert.InDelta(t, geo.DistanceKm(a, c), geo.DistanceKm(a, b)+geo.DistanceKm(b, c), 0.2)
	})
}

func TestFilterByDistance(t *testing.T) {
	origin := geo.Point{Lat: 40, Lng: -73}
	items := []place{
		{name: "far", at: geo.Point{Lat: 41, Lng: -73}},
		{name: "near", at: geo.Point{Lat: 40.01, Lng: -73}},
		{name: "mid", at: geo.Point{Lat: 40.05, Lng: -73}},
		{name: "tie-near", at: geo.Point{Lat: 39.99, Lng: -73}},
	}

	t.Run("keeps items within bound in ascending order", func(t *testing.T) {
		ranked := geo.FilterByDistance(items, pointOf, origin, 10)

		got := make([]string, len(ranked))
		for i, r := range ranked {
			got[i] = r.Item.name
			assert.LessOrEqual(t, r.DistanceKm, 10.0)
			if i > 0 {
				assert.LessOrEqual(t, ranked[i-1].DistanceKm, r.DistanceKm)
			}
		}
		if diff := cmp.Diff([]string{"near", "tie-near", "mid"}, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bound is inclusive", func(t *testing.T) {
		d := geo.DistanceKm(origin, items[2].at)
		ranked := geo.FilterByDistance(items[2:3], pointOf, origin, d)
		require.Len(t, ranked, 1)
		assert.Equal(t, d, ranked[0].DistanceKm)
	})

	t.Run("empty input", func(t *testing.T) {
		ranked := geo.FilterByDistance(nil, pointOf, origin, 50)
		assert.Empty(t, ranked)
	})
}

func TestAnnotate(t *testing.T) {
	origin := geo.Point{Lat: 40, Lng: -73}
	items := []place{
		{name: "far", at: geo.Point{Lat: 41, Lng: -73}},
		{name: "near", at: geo.Point{Lat: 40.01, Lng: -73}},
	}

	ranked := geo.Annotate(items, pointOf, origin)
	require.Len(t, ranked, 2)
	assert.Equal(t, "far", ranked[0].Item.name)
	assert.Equal(t, "near", ranked[1].Item.name)
	assert.Greater(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
}

func TestCentroid(t *testing.T) {
	t.Run("empty falls back to default center", func(t *testing.T) {
		assert.Equal(t, geo.Point{Lat: 40.7589, Lng: -73.9851}, geo.Centroid(nil))
	})

	t.Run("arithmetic mean", func(t *testing.T) {
		c := geo.Centroid([]geo.Point{{Lat: 40, Lng: -74}, {Lat: 42, Lng: -72}})
		assert.InDelta(t, 41.0, c.Lat, 1e-9)
		assert.InDelta(t, -73.0, c.Lng, 1e-9)
	})
}

func TestNewPoint(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lng float64
		errIs    error
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "corners", lat: 90, lng: -180},
		{name: "latitude too high", lat: 90.1, lng: 0, errIs: geo.ErrInvalidLatitude},
		{name: "latitude too low", lat: -91, lng: 0, errIs: geo.ErrInvalidLatitude},
		{name: "longitude too high", lat: 0, lng: 180.5, errIs: geo.ErrInvalidLongitude},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := geo.NewPoint(tc.lat, tc.lng)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.lat, p.Lat)
			assert.Equal(t, tc.lng, p.Lng)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Starbucks, 1 Main St, Albany, NY 12207", geo.DisplayName("Starbucks", "1 Main St", "Albany", "NY", "12207"))
	assert.Equal(t, "Starbucks, Albany, NY", geo.DisplayName("Starbucks", "", "Albany", "NY", ""))
	assert.Equal(t, "Starbucks", geo.DisplayName("Starbucks", "", "", "", ""))
}
