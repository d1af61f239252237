//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealhub/internal/domain/geo"
	"dealhub/internal/infra"
	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/ptr"
	"dealhub/internal/usecase/queries"
	"dealhub/tests/common/builder"
	queriesmock "dealhub/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func view(name string, lat, lng float64, discount, views int) *queries.DealView {
	return builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
		b.StoreName = name
		b.Discount = discount
		b.Views = views
	}).WithLocation(lat, lng).BuildView()
}

func names(list *queries.DealList) []string {
	out := make([]string, len(list.Deals))
	for i, d := range list.Deals {
		out[i] = d.StoreName
	}
	return out
}

func TestDealQueries_List(t *testing.T) {
	ctx := context.Background()
	origin := geo.Point{Lat: 40, Lng: -73}

	mid := view("mid", 40.05, -73, 10, 3)
	near := view("near", 40.01, -73, 30, 1)
	far := view("far", 40.5, -73, 50, 9)
	west := view("west", 40, -73.08, 20, 7)

	testCases := []struct {
		name       string
		filters    queries.DealFilters
		category   *string
		rows       []*queries.DealView
		expect     []string
		withDist   bool
		expectCent geo.Point
	}{
		{
			name:     "coffee within 10km closest first",
			filters:  queries.DealFilters{Category: "coffee", Origin: &origin, MaxDistanceKm: ptr.To(10.0), Sort: queries.SortClosest},
			category: ptr.To("coffee"),
			rows:     []*queries.DealView{mid, near, far, west},
			expect:   []string{"near", "mid", "west"},
			withDist: true,
		},
		{
			name:     "origin without sort defaults to closest",
			filters:  queries.DealFilters{Origin: &origin, MaxDistanceKm: ptr.To(100.0)},
			rows:     []*queries.DealView{far, mid, near},
			expect:   []string{"near", "mid", "far"},
			withDist: true,
		},
		{
			name:     "highest discount with origin",
			filters:  queries.DealFilters{Origin: &origin, MaxDistanceKm: ptr.To(10.0), Sort: queries.SortHighestDiscount},
			rows:     []*queries.DealView{mid, near, west},
			expect:   []string{"near", "west", "mid"},
			withDist: true,
		},
		{
			name:    "trending without origin",
			filters: queries.DealFilters{Sort: queries.SortTrending},
			rows:    []*queries.DealView{mid, near, far, west},
			expect:  []string{"far", "west", "mid", "near"},
		},
		{
			name:    "closest without origin keeps store order",
			filters: queries.DealFilters{Category: "all", Sort: queries.SortClosest},
			rows:    []*queries.DealView{mid, near},
			expect:  []string{"mid", "near"},
		},
		{
			name:       "empty result centers on the default point",
			filters:    queries.DealFilters{Origin: &origin, MaxDistanceKm: ptr.To(1.0)},
			rows:       []*queries.DealView{far},
			expect:     []string{},
			withDist:   true,
			expectCent: geo.Point{Lat: 40.7589, Lng: -73.9851},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockDealReadStore(ctrl)
			store.EXPECT().FindActive(ctx, tc.category, now).Return(tc.rows, nil)

			q := queries.NewDealQueries(store, clock.NewMockClock(now))
			list, err := q.List(ctx, tc.filters)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expect, names(list)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tc.expect), list.Count)
			for _, d := range list.Deals {
				if tc.withDist {
					require.NotNil(t, d.DistanceKm)
					if tc.filters.MaxDistanceKm != nil {
						assert.LessOrEqual(t, *d.DistanceKm, *tc.filters.MaxDistanceKm)
					}
				} else {
					assert.Nil(t, d.DistanceKm)
				}
			}
			if tc.expectCent != (geo.Point{}) {
				assert.Equal(t, tc.expectCent, list.Center)
			}
		})
	}

	t.Run("center is the mean of listed deals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDealReadStore(ctrl)
		store.EXPECT().FindActive(ctx, nil, now).Return([]*queries.DealView{
			view("a", 40, -74, 10, 0),
			view("b", 42, -72, 10, 0),
		}, nil)

		list, err := queries.NewDealQueries(store, clock.NewMockClock(now)).List(ctx, queries.DealFilters{})
		require.NoError(t, err)
		assert.InDelta(t, 41.0, list.Center.Lat, 1e-9)
		assert.InDelta(t, -73.0, list.Center.Lng, 1e-9)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDealReadStore(ctrl)
		dbErr := errors.New("connection reset")
		store.EXPECT().FindActive(ctx, nil, now).Return(nil, dbErr)

		_, err := queries.NewDealQueries(store, clock.NewMockClock(now)).List(ctx, queries.DealFilters{})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestDealQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDealReadStore(ctrl)
		expected := view("found", 40, -73, 10, 0)
		store.EXPECT().FindByID(ctx, id).Return(expected, nil)

		got, err := queries.NewDealQueries(store, clock.NewMockClock(now)).GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockDealReadStore(ctrl)
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("deal not found", nil, infra.KindNotFound))

		_, err := queries.NewDealQueries(store, clock.NewMockClock(now)).GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrDealNotFound)
	})
}

func TestParseSortOption(t *testing.T) {
	for _, s := range []string{"", "closest", "highest-discount", "trending"} {
		got, err := queries.ParseSortOption(s)
		require.NoError(t, err)
		assert.Equal(t, queries.SortOption(s), got)
	}
	_, err := queries.ParseSortOption("cheapest")
	assert.ErrorIs(t, err, queries.ErrInvalidSort)
}
