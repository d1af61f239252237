package bootstrap

import (
	"context"
	"log/slog"

	"dealhub/internal/infra/cache"
	"dealhub/internal/pkg/config"
	"dealhub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCandidateCache,
	),
)

// NewCandidateCache falls back to a no-op cache when REDIS_URL is empty.
func NewCandidateCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.CandidateCache, error) {
	if cfg.Cache.RedisURL == "" {
		logger.Info("REDIS_URL is not set; location results are not cached")
		return cache.Nop{}, nil
	}

	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// the cache is optional; lookups degrade to misses
				logger.Warn("redis is unreachable", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCandidates(client, cfg.Cache.TTL), nil
}
