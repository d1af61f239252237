//go:build unit || e2e

package builder

import (
	"time"

	"dealhub/internal/domain/deal"
	reqdto "dealhub/internal/handler/dto/request"
	"dealhub/internal/pkg/ptr"
	"dealhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// DealBuilder fields are exported so tests can tweak them through With.
type DealBuilder struct {
	ID            uuid.UUID
	StoreName     string
	Category      string
	Title         string
	Description   string
	Image         string
	Discount      int
	OriginalPrice *float64
	Location      deal.LocationParams
	Badge         *string
	ExpiresAt     *time.Time
	Items         []deal.Item
	Views         int
	Clicks        int
	CreatedAt     time.Time
}

func NewDealBuilder() *DealBuilder {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &DealBuilder{
		ID:          uuid.New(),
		StoreName:   "Blue Bottle",
		Category:    "coffee",
		Title:       "25% off cold brew",
		Description: "Weekdays before noon",
		Image:       "https://cdn.example.com/cold-brew.jpg",
		Discount:    25,
		Location: deal.LocationParams{
			Lat:     40.7128,
			Lng:     -74.0060,
			Address: "1 Main St",
			City:    "New York",
			State:   "NY",
			ZipCode: "10001",
		},
		ExpiresAt: &exp,
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) WithLocation(lat, lng float64) *DealBuilder {
	b.Location.Lat = lat
	b.Location.Lng = lng
	return b
}

func (b *DealBuilder) BuildParams() deal.Params {
	return deal.Params{
		StoreName:     b.StoreName,
		Category:      b.Category,
		Title:         b.Title,
		Description:   b.Description,
		Image:         b.Image,
		Discount:      b.Discount,
		OriginalPrice: b.OriginalPrice,
		Location:      b.Location,
		Badge:         b.Badge,
		ExpiresAt:     b.ExpiresAt,
		Items:         b.Items,
	}
}

func (b *DealBuilder) BuildDomain(now time.Time) (*deal.Deal, error) {
	return deal.NewDeal(b.ID, b.BuildParams(), now)
}

// BuildStored returns the deal as it would come back from storage.
func (b *DealBuilder) BuildStored() (*deal.Deal, error) {
	return deal.Reconstruct(b.ID, b.BuildParams(), b.Views, b.Clicks, b.CreatedAt, b.CreatedAt)
}

func (b *DealBuilder) BuildView() *queries.DealView {
	items := make([]queries.DealItemView, len(b.Items))
	for i, it := range b.Items {
		items[i] = queries.DealItemView(it)
	}
	return &queries.DealView{
		ID:            b.ID,
		StoreName:     b.StoreName,
		Category:      b.Category,
		Title:         b.Title,
		Description:   b.Description,
		Image:         b.Image,
		Discount:      b.Discount,
		OriginalPrice: b.OriginalPrice,
		Location: queries.LocationView{
			Lat:     b.Location.Lat,
			Lng:     b.Location.Lng,
			Address: b.Location.Address,
			City:    b.Location.City,
			State:   b.Location.State,
			ZipCode: b.Location.ZipCode,
		},
		Badge:     b.Badge,
		ExpiresAt: ptr.Deref(b.ExpiresAt),
		Views:     b.Views,
		Clicks:    b.Clicks,
		Items:     items,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *DealBuilder) BuildLocationRequest() *reqdto.LocationRequest {
	return &reqdto.LocationRequest{
		Lat:     ptr.To(b.Location.Lat),
		Lng:     ptr.To(b.Location.Lng),
		Address: b.Location.Address,
		City:    b.Location.City,
		State:   b.Location.State,
		ZipCode: b.Location.ZipCode,
	}
}

func (b *DealBuilder) BuildTemplateRequest() reqdto.DealTemplateRequest {
	return reqdto.DealTemplateRequest{
		StoreName:     b.StoreName,
		Category:      b.Category,
		Title:         b.Title,
		Description:   b.Description,
		Image:         b.Image,
		Discount:      ptr.To(b.Discount),
		OriginalPrice: b.OriginalPrice,
		Badge:         b.Badge,
		ExpiresAt:     b.ExpiresAt,
	}
}

func (b *DealBuilder) BuildCreateRequestDTO() reqdto.CreateDealRequest {
	return reqdto.CreateDealRequest{
		DealTemplateRequest: b.BuildTemplateRequest(),
		Location:            b.BuildLocationRequest(),
	}
}
