package readstore

import (
	"context"
	"time"

	"dealhub/internal/infra"
	"dealhub/internal/infra/repository/converter"
	sqlc "dealhub/internal/infra/sqlc/generated"
	"dealhub/internal/pkg/pgconv"
	"dealhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealReadQueries interface {
	ListActiveDeals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveDealsParams) ([]sqlc.Deals, error)
	GetDealByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
}

type DealReadStore struct {
	queries DealReadQueries
	db      sqlc.DBTX
}

func NewDealReadStore(queries DealReadQueries, db sqlc.DBTX) *DealReadStore {
	return &DealReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DealReadStore) FindActive(ctx context.Context, category *string, now time.Time) ([]*queries.DealView, error) {
	params := sqlc.ListActiveDealsParams{
		Now:      pgconv.TimeToPgtype(now),
		Category: pgconv.StringPtrToPgtype(category),
	}
	rows, err := r.queries.ListActiveDeals(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active deals", err)
	}

	views := make([]*queries.DealView, 0, len(rows))
	for _, row := range rows {
		v, err := toDealView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *DealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal by id", err)
	}
	return toDealView(row)
}

func toDealView(row sqlc.Deals) (*queries.DealView, error) {
	records, err := converter.DecodeItems(row.Items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode deal items", err, infra.KindCorruptedRecord)
	}
	items := make([]queries.DealItemView, len(records))
	for i, rec := range records {
		items[i] = queries.DealItemView(rec)
	}

	return &queries.DealView{
		ID:              row.ID,
		StoreName:       row.StoreName,
		StoreLogo:       pgconv.StringPtrFromPgtype(row.StoreLogo),
		Category:        row.Category,
		Title:           row.Title,
		Description:     row.Description,
		Image:           row.Image,
		Discount:        int(row.Discount),
		OriginalPrice:   pgconv.Float64PtrFromPgtype(row.OriginalPrice),
		DiscountedPrice: pgconv.Float64PtrFromPgtype(row.DiscountedPrice),
		Location: queries.LocationView{
			Lat:     row.Lat,
			Lng:     row.Lng,
			Address: row.Address,
			City:    row.City,
			State:   row.State,
			ZipCode: row.ZipCode,
		},
		Badge:          pgconv.StringPtrFromPgtype(row.Badge),
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		Views:          int(row.Views),
		Clicks:         int(row.Clicks),
		PartnerAppURL:  pgconv.StringPtrFromPgtype(row.PartnerAppUrl),
		PartnerAppName: pgconv.StringPtrFromPgtype(row.PartnerAppName),
		Items:          items,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

