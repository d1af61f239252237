// Package cache keeps location search results between requests.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dealhub/internal/domain/geo"
	"dealhub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dealhub:locations:"

type RedisCandidates struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCandidates(client *redis.Client, ttl time.Duration) *RedisCandidates {
	return &RedisCandidates{client: client, ttl: ttl}
}

// Get reports a miss as (nil, false, nil).
func (c *RedisCandidates) Get(ctx context.Context, key string) ([]geo.Candidate, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "redis get")
	}

	var out []geo.Candidate
	if err := json.Unmarshal(raw, &out); err != nil {
		// a bad entry is a miss; it gets overwritten on the next store
		return nil, false, nil
	}
	return out, true, nil
}

func (c *RedisCandidates) Set(ctx context.Context, key string, candidates []geo.Candidate) error {
	raw, err := json.Marshal(candidates)
	if err != nil {
		return errs.Wrap(err, "encode candidates")
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

// Nop is used when no Redis URL is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]geo.Candidate, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []geo.Candidate) error         { return nil }
