package queries

import (
	"context"
	"log/slog"
	"strings"

	"dealhub/internal/domain/geo"
	"dealhub/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

var ErrEmptySearch = errs.Mark(errs.New("a store name is required"), errs.ErrDomainValidation)

const nationwideKeyPrefix = "nationwide:"

type PlaceSearcher interface {
	Search(ctx context.Context, storeName, city, state string) ([]geo.Candidate, error)
	Reverse(ctx context.Context, p geo.Point) (*geo.Candidate, error)
	Geocode(ctx context.Context, address, city, state string) (*geo.Candidate, error)
}

type BrandSearcher interface {
	Search(ctx context.Context, q geo.NationwideQuery) ([]geo.Candidate, error)
}

type CandidateCache interface {
	Get(ctx context.Context, key string) ([]geo.Candidate, bool, error)
	Set(ctx context.Context, key string, candidates []geo.Candidate) error
}

type LocationQueries interface {
	Search(ctx context.Context, storeName, city, state string) ([]geo.Candidate, error)
	Nationwide(ctx context.Context, q geo.NationwideQuery) ([]geo.Candidate, error)
	Reverse(ctx context.Context, p geo.Point) (*geo.Candidate, error)
	Geocode(ctx context.Context, address, city, state string) (*geo.Candidate, error)
}

type locationQueriesImpl struct {
	places PlaceSearcher
	brands BrandSearcher
	cache  CandidateCache
	group  singleflight.Group
	logger *slog.Logger
}

func NewLocationQueries(places PlaceSearcher, brands BrandSearcher, cache CandidateCache, logger *slog.Logger) LocationQueries {
	return &locationQueriesImpl{
		places: places,
		brands: brands,
		cache:  cache,
		logger: logger,
	}
}

func (q *locationQueriesImpl) Search(ctx context.Context, storeName, city, state string) ([]geo.Candidate, error) {
	if strings.TrimSpace(storeName) == "" {
		return nil, ErrEmptySearch
	}
	return q.places.Search(ctx, storeName, city, state)
}

func (q *locationQueriesImpl) Reverse(ctx context.Context, p geo.Point) (*geo.Candidate, error) {
	return q.places.Reverse(ctx, p)
}

func (q *locationQueriesImpl) Geocode(ctx context.Context, address, city, state string) (*geo.Candidate, error) {
	return q.places.Geocode(ctx, address, city, state)
}

// Nationwide caches the unlimited result per brand and region, collapses
// identical in-flight searches and applies the limit afterwards.
func (q *locationQueriesImpl) Nationwide(ctx context.Context, query geo.NationwideQuery) ([]geo.Candidate, error) {
	query = query.Normalized()
	if query.Brand == "" {
		return []geo.Candidate{}, nil
	}
	key := nationwideKeyPrefix + query.CacheKey()

	found, hit := q.cached(ctx, key)
	if !hit {
		var err error
		found, err = q.fetch(ctx, key, query)
		if err != nil {
			return nil, err
		}
	}

	if query.Limit > 0 && len(found) > query.Limit {
		found = found[:query.Limit]
	}
	return found, nil
}

func (q *locationQueriesImpl) cached(ctx context.Context, key string) ([]geo.Candidate, bool) {
	found, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		q.logger.WarnContext(ctx, "location cache read failed", "key", key, "error", err.Error())
		return nil, false
	}
	return found, ok
}

func (q *locationQueriesImpl) fetch(ctx context.Context, key string, query geo.NationwideQuery) ([]geo.Candidate, error) {
	unlimited := query
	unlimited.Limit = 0

	// the shared search must outlive any single caller going away
	ch := q.group.DoChan(key, func() (any, error) {
		runCtx := context.WithoutCancel(ctx)
		found, err := q.brands.Search(runCtx, unlimited)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			if err := q.cache.Set(runCtx, key, found); err != nil {
				q.logger.WarnContext(runCtx, "location cache write failed", "key", key, "error", err.Error())
			}
		}
		return found, nil
	})

	select {
	case <-ctx.Done():
		return nil, errs.Wrap(ctx.Err(), "nationwide search abandoned")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]geo.Candidate), nil
	}
}
