package components

import (
	"dealhub/internal/infra/readstore"
	"dealhub/internal/infra/uow"
	sqlc "dealhub/internal/infra/sqlc/generated"
	"dealhub/internal/usecase/queries"
	"dealhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DealReadQueries)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
	),
)

// deal repositories are created per transaction by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
