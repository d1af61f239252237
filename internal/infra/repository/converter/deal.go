package converter

import (
	"encoding/json"
	"time"

	"dealhub/internal/domain/deal"
	sqlc "dealhub/internal/infra/sqlc/generated"
	"dealhub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ItemRecord is the JSON shape of one deal item in the items column.
type ItemRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           *string   `json:"image,omitempty"`
	Discount        int       `json:"discount"`
	OriginalPrice   *float64  `json:"originalPrice,omitempty"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	Badge           *string   `json:"badge,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt"`
	PartnerAppURL   *string   `json:"partnerAppUrl,omitempty"`
	PartnerAppName  *string   `json:"partnerAppName,omitempty"`
}

func EncodeItems(items []deal.Item) ([]byte, error) {
	records := make([]ItemRecord, len(items))
	for i, it := range items {
		records[i] = ItemRecord(it)
	}
	return json.Marshal(records)
}

func DecodeItems(raw []byte) ([]ItemRecord, error) {
	records := []ItemRecord{}
	if len(raw) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func DealToCreateParams(d *deal.Deal) (sqlc.CreateDealParams, error) {
	items, err := EncodeItems(d.Items())
	if err != nil {
		return sqlc.CreateDealParams{}, err
	}
	loc := d.Location()
	return sqlc.CreateDealParams{
		ID:              d.ID(),
		StoreName:       d.StoreName(),
		StoreLogo:       pgconv.StringPtrToPgtype(d.StoreLogo()),
		Category:        d.Category().String(),
		Title:           d.Title(),
		Description:     d.Description(),
		Image:           d.Image(),
		Discount:        pgconv.IntToInt32(d.Discount().Percent()),
		OriginalPrice:   pgconv.Float64PtrToPgtype(d.OriginalPrice()),
		DiscountedPrice: pgconv.Float64PtrToPgtype(d.DiscountedPrice()),
		Lat:             loc.Point().Lat,
		Lng:             loc.Point().Lng,
		Address:         loc.Address(),
		City:            loc.City(),
		State:           loc.State(),
		ZipCode:         loc.ZipCode(),
		Badge:           badgeToPgtype(d.Badge()),
		ExpiresAt:       pgconv.TimeToPgtype(d.ExpiresAt()),
		PartnerAppUrl:   pgconv.StringPtrToPgtype(d.PartnerAppURL()),
		PartnerAppName:  pgconv.StringPtrToPgtype(d.PartnerAppName()),
		Items:           items,
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	}, nil
}

func DealToUpdateParams(d *deal.Deal) (sqlc.UpdateDealParams, error) {
	p, err := DealToCreateParams(d)
	if err != nil {
		return sqlc.UpdateDealParams{}, err
	}
	return sqlc.UpdateDealParams{
		ID:              p.ID,
		StoreName:       p.StoreName,
		StoreLogo:       p.StoreLogo,
		Category:        p.Category,
		Title:           p.Title,
		Description:     p.Description,
		Image:           p.Image,
		Discount:        p.Discount,
		OriginalPrice:   p.OriginalPrice,
		DiscountedPrice: p.DiscountedPrice,
		Lat:             p.Lat,
		Lng:             p.Lng,
		Address:         p.Address,
		City:            p.City,
		State:           p.State,
		ZipCode:         p.ZipCode,
		Badge:           p.Badge,
		ExpiresAt:       p.ExpiresAt,
		PartnerAppUrl:   p.PartnerAppUrl,
		PartnerAppName:  p.PartnerAppName,
		Items:           p.Items,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

// RowToDeal rebuilds the aggregate from a stored row.
func RowToDeal(row sqlc.Deals) (*deal.Deal, error) {
	records, err := DecodeItems(row.Items)
	if err != nil {
		return nil, err
	}
	items := make([]deal.Item, len(records))
	for i, r := range records {
		items[i] = deal.Item(r)
	}
	expiresAt := pgconv.TimeFromPgtype(row.ExpiresAt)

	params := deal.Params{
		StoreName:       row.StoreName,
		StoreLogo:       pgconv.StringPtrFromPgtype(row.StoreLogo),
		Category:        row.Category,
		Title:           row.Title,
		Description:     row.Description,
		Image:           row.Image,
		Discount:        int(row.Discount),
		OriginalPrice:   pgconv.Float64PtrFromPgtype(row.OriginalPrice),
		DiscountedPrice: pgconv.Float64PtrFromPgtype(row.DiscountedPrice),
		Location: deal.LocationParams{
			Lat:     row.Lat,
			Lng:     row.Lng,
			Address: row.Address,
			City:    row.City,
			State:   row.State,
			ZipCode: row.ZipCode,
		},
		Badge:          pgconv.StringPtrFromPgtype(row.Badge),
		ExpiresAt:      &expiresAt,
		PartnerAppURL:  pgconv.StringPtrFromPgtype(row.PartnerAppUrl),
		PartnerAppName: pgconv.StringPtrFromPgtype(row.PartnerAppName),
		Items:          items,
	}
	return deal.Reconstruct(row.ID, params, int(row.Views), int(row.Clicks),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func badgeToPgtype(b *deal.Badge) pgtype.Text {
	if b == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(b.String())
}
