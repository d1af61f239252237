package repository

import (
	"context"

	"dealhub/internal/domain/deal"
	"dealhub/internal/infra"
	"dealhub/internal/infra/repository/converter"
	sqlc "dealhub/internal/infra/sqlc/generated"
	"dealhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	GetDealByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) (sqlc.Deals, error)
	UpdateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealParams) (int64, error)
	DeleteDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementDealViews(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
	IncrementDealClicks(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
}

type DealRepository struct {
	queries DealWriteQueries
}

func NewDealRepository(queries DealWriteQueries) *DealRepository {
	return &DealRepository{queries: queries}
}

func (r *DealRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock deal", err)
	}
	d, err := converter.RowToDeal(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode deal", err, infra.KindCorruptedRecord)
	}
	return d, nil
}

func (r *DealRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error) {
	params, err := converter.DealToCreateParams(d)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode deal", err)
	}
	row, err := r.queries.CreateDeal(ctx, tx, params)
	if err != nil {
		return uuid.Nil, classify("failed to create deal", err)
	}
	return row.ID, nil
}

func (r *DealRepository) Update(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	params, err := converter.DealToUpdateParams(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode deal", err)
	}
	n, err := r.queries.UpdateDeal(ctx, tx, params)
	if err != nil {
		return classify("failed to update deal", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteDeal(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete deal", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error) {
	views, err := r.queries.IncrementDealViews(ctx, tx, id)
	if err != nil {
		return 0, counterErr("views", err)
	}
	return int(views), nil
}

func (r *DealRepository) IncrementClicks(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error) {
	clicks, err := r.queries.IncrementDealClicks(ctx, tx, id)
	if err != nil {
		return 0, counterErr("clicks", err)
	}
	return int(clicks), nil
}

func counterErr(counter string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to increment deal "+counter, err)
}

func classify(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.IsCheckViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
