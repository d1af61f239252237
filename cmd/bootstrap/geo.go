package bootstrap

import (
	"log/slog"

	"dealhub/internal/infra/nominatim"
	"dealhub/internal/infra/overpass"
	"dealhub/internal/pkg/config"
	"dealhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var GeoModule = fx.Module("geo",
	fx.Provide(
		fx.Annotate(
			NewPlaceSearcher,
			fx.As(new(queries.PlaceSearcher)),
		),
		fx.Annotate(
			NewBrandSearcher,
			fx.As(new(queries.BrandSearcher)),
		),
	),
)

func NewPlaceSearcher(cfg config.Config, logger *slog.Logger) *nominatim.Client {
	return nominatim.NewClient(cfg.Geocoding, logger)
}

func NewBrandSearcher(cfg config.Config, logger *slog.Logger) *overpass.Client {
	return overpass.NewClient(cfg.Overpass, logger)
}
