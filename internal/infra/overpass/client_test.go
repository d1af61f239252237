//go:build unit

package overpass_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"dealhub/internal/domain/geo"
	"dealhub/internal/infra/overpass"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type el map[string]any

func node(id int64, lat, lon float64, tags map[string]string) el {
	return el{"type": "node", "id": id, "lat": lat, "lon": lon, "tags": tags}
}

func starbucks(state, city string) map[string]string {
	return map[string]string{
		"name":             "Starbucks",
		"brand":            "Starbucks",
		"addr:housenumber": "1",
		"addr:street":      "Main St",
		"addr:city":        city,
		"addr:state":       state,
		"addr:postcode":    "12207",
	}
}

func jsonServer(t *testing.T, elements []el, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), "out center;")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"elements": elements})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T, status int, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(hits, 1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(endpoints ...string) *overpass.Client {
	return overpass.NewClient(config.OverpassConfig{
		Endpoints:    endpoints,
		Timeout:      2 * time.Second,
		QueryTimeout: 10,
	}, nil)
}

func TestClient_Search(t *testing.T) {
	t.Run("falls back to the next endpoint", func(t *testing.T) {
		var failed int32
		bad := failingServer(t, http.StatusInternalServerError, &failed)
		good := jsonServer(t, []el{
			node(1, 42.65, -73.75, starbucks("NY", "Albany")),
			node(2, 40.75, -73.98, starbucks("NY", "New York")),
		}, nil)

		got, err := newClient(bad.URL, good.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		// scoped and unscoped variant both tried on the failing mirror
		assert.Equal(t, int32(2), atomic.LoadInt32(&failed))
		assert.Equal(t, "Starbucks, 1 Main St, Albany, NY 12207", got[0].DisplayName)
		assert.Equal(t, "node/1", got[0].PlaceID)
	})

	t.Run("all endpoints failing is an upstream error", func(t *testing.T) {
		var hits int32
		a := failingServer(t, http.StatusTooManyRequests, &hits)
		b := failingServer(t, http.StatusGatewayTimeout, &hits)

		_, err := newClient(a.URL, b.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, geo.ErrUpstreamUnavailable))
		assert.Equal(t, int32(4), atomic.LoadInt32(&hits))
		assert.Equal(t, "last endpoint returned HTTP 504", errs.Hint(err))
		assert.NotContains(t, errs.Hint(err), "127.0.0.1")
	})

	t.Run("search deadline bounds every attempt together", func(t *testing.T) {
		var hits int32
		slow := func() *httptest.Server {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				select {
				case <-r.Context().Done():
				case <-time.After(5 * time.Second):
				}
			}))
			t.Cleanup(srv.Close)
			return srv
		}
		a, b, c := slow(), slow(), slow()
		client := overpass.NewClient(config.OverpassConfig{
			Endpoints:      []string{a.URL, b.URL, c.URL},
			Timeout:        300 * time.Millisecond,
			SearchDeadline: 500 * time.Millisecond,
			QueryTimeout:   10,
		}, nil)

		start := time.Now()
		_, err := client.Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks"})
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.True(t, errors.Is(err, geo.ErrUpstreamUnavailable))
		assert.Less(t, elapsed, 1500*time.Millisecond)
		assert.Less(t, atomic.LoadInt32(&hits), int32(6))
		assert.Equal(t, "search took too long", errs.Hint(err))
	})

	t.Run("empty answers give an empty result", func(t *testing.T) {
		var hits int32
		empty := jsonServer(t, nil, &hits)

		got, err := newClient(empty.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Nowhere Coffee"})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	})

	t.Run("blank brand does not hit the network", func(t *testing.T) {
		var hits int32
		srv := jsonServer(t, nil, &hits)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "   "})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		srv := jsonServer(t, nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newClient(srv.URL).Search(ctx, geo.NationwideQuery{Brand: "Starbucks"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nearby duplicates collapse", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 40.7500, -73.9800, starbucks("NY", "New York")),
			node(2, 40.7505, -73.9805, starbucks("NY", "New York")),
			node(3, 40.7600, -73.9800, starbucks("NY", "New York")),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "node/1", got[0].PlaceID)
		assert.Equal(t, "node/3", got[1].PlaceID)
	})

	t.Run("brand match both ways", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 40.70, -73.90, map[string]string{"name": "Starbucks Reserve", "addr:state": "NY"}),
			node(2, 40.80, -73.90, map[string]string{"name": "Joe's Coffee", "addr:state": "NY"}),
			node(3, 40.90, -73.90, map[string]string{"brand": "Star", "addr:state": "NY"}),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "starbucks"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Starbucks Reserve", got[0].Name)
		assert.Equal(t, "Star", got[1].Name)
	})

	t.Run("operator match without name or brand tags", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 40.70, -73.90, map[string]string{"operator": "Acme Corp", "shop": "convenience", "addr:state": "NY"}),
			node(2, 40.80, -73.90, map[string]string{"operator": "Other Inc", "name": "Corner Shop", "addr:state": "NY"}),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Acme"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "node/1", got[0].PlaceID)
		assert.Equal(t, "Acme", got[0].Name)
	})

	t.Run("state filter compares codes and names", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 40.70, -73.90, starbucks("New York", "Brooklyn")),
			node(2, 34.05, -118.24, starbucks("CA", "Los Angeles")),
			node(3, 42.65, -73.75, starbucks("", "Albany")),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks", State: "NY"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Brooklyn", got[0].City)
	})

	t.Run("city filter is a substring match", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 40.70, -73.90, starbucks("NY", "New York City")),
			node(2, 42.65, -73.75, starbucks("NY", "Albany")),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks", City: "new york"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "New York City", got[0].City)
	})

	t.Run("unfiltered search keeps us results only", func(t *testing.T) {
		srv := jsonServer(t, []el{
			node(1, 43.65, -79.38, starbucks("Ontario", "Toronto")),
			node(2, 38.90, -77.03, starbucks("DC", "Washington")),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "DC", got[0].State)
	})

	t.Run("way center and limit", func(t *testing.T) {
		srv := jsonServer(t, []el{
			{"type": "way", "id": 7, "center": map[string]float64{"lat": 41.0, "lon": -74.0}, "tags": starbucks("NJ", "Paterson")},
			{"type": "way", "id": 8, "tags": starbucks("NJ", "Newark")},
			node(9, 40.0, -74.5, starbucks("NJ", "Trenton")),
		}, nil)

		got, err := newClient(srv.URL).Search(context.Background(), geo.NationwideQuery{Brand: "Starbucks", Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "way/7", got[0].PlaceID)
		assert.Equal(t, 41.0, got[0].Lat)
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("scoped", func(t *testing.T) {
		q := overpass.BuildQuery("Starbucks", 25, true)
		assert.True(t, strings.HasPrefix(q, "[out:json][timeout:25];"))
		assert.Contains(t, q, `area["ISO3166-1"="US"][admin_level=2]->.us;`)
		assert.Contains(t, q, `node["brand"~"Starbucks",i](area.us);`)
		assert.Contains(t, q, `way["operator"~"Starbucks",i](area.us);`)
		assert.True(t, strings.HasSuffix(q, "out center;"))
	})

	t.Run("unscoped", func(t *testing.T) {
		q := overpass.BuildQuery("Starbucks", 25, false)
		assert.NotContains(t, q, "area")
		assert.Contains(t, q, `node["name"~"Starbucks",i]["shop"];`)
	})

	t.Run("special characters are escaped", func(t *testing.T) {
		q := overpass.BuildQuery(`Joe's "Best" Pizza.`, 25, false)
		assert.Contains(t, q, `Joe's \"Best\" Pizza\\.`)
	})
}
