package shared

import (
	"context"

	"dealhub/internal/domain/deal"
	sqlc "dealhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Deals() DealRepository
	DB() sqlc.DBTX
}

type DealRepository interface {
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error)
	Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error)
	IncrementClicks(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error)
}
