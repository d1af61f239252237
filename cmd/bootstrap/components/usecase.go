package components

import (
	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/jwt"
	"dealhub/internal/pkg/password"
	"dealhub/internal/usecase/commands"
	"dealhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDealUseCase,
		func(v *password.Verifier, s *jwt.Service) commands.AdminCommands {
			return commands.NewAdminUseCase(v, s)
		},
		func(store commands.ImageStore, cfg config.Config) commands.ImageCommands {
			return commands.NewImageUseCase(store, cfg.Storage.MaxBytes)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
		queries.NewLocationQueries,
	),
)
