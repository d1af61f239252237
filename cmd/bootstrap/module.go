package bootstrap

import (
	"dealhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CacheModule,
	StorageModule,
	GeoModule,
	SessionModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
