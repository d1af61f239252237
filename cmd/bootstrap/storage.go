package bootstrap

import (
	"context"
	"log/slog"

	"dealhub/internal/infra/storage"
	"dealhub/internal/pkg/config"
	"dealhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewImageStore,
	),
)

// NewImageStore returns a nil store when object storage is not configured.
func NewImageStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.ImageStore, error) {
	if !cfg.Storage.Enabled() {
		logger.Info("MINIO_ENDPOINT is not set; image uploads are disabled")
		return nil, nil
	}

	store, err := storage.NewMinIOImageStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureBucket(ctx)
		},
	})

	return store, nil
}
