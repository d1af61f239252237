package response

import (
	"time"

	"dealhub/internal/domain/geo"
	"dealhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
}

type DealItemResponse struct {
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

type DealResponse struct {
	ID              string             `json:"id"`
	StoreName       string             `json:"storeName"`
	StoreLogo       *string            `json:"storeLogo,omitempty"`
	Category        string             `json:"category"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Image           string             `json:"image"`
	Discount        int                `json:"discount"`
	OriginalPrice   *float64           `json:"originalPrice,omitempty"`
	DiscountedPrice *float64           `json:"discountedPrice,omitempty"`
	Location        LocationResponse   `json:"location"`
	Distance        *float64           `json:"distance,omitempty"`
	Badge           *string            `json:"badge,omitempty"`
	ExpiresAt       time.Time          `json:"expiresAt"`
	Views           int                `json:"views"`
	Clicks          int                `json:"clicks"`
	PartnerAppURL   *string            `json:"partnerAppUrl,omitempty"`
	PartnerAppName  *string            `json:"partnerAppName,omitempty"`
	Items           []DealItemResponse `json:"deals"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	items := []DealItemResponse{}
	if len(v.Items) > 0 {
		// field names line up one to one
		_ = copier.Copy(&items, &v.Items)
	}
	loc := v.Location
	return &DealResponse{
		ID:              v.ID.String(),
		StoreName:       v.StoreName,
		StoreLogo:       v.StoreLogo,
		Category:        v.Category,
		Title:           v.Title,
		Description:     v.Description,
		Image:           v.Image,
		Discount:        v.Discount,
		OriginalPrice:   v.OriginalPrice,
		DiscountedPrice: v.DiscountedPrice,
		Location: LocationResponse{
			Lat:     loc.Lat,
			Lng:     loc.Lng,
			Address: loc.Address,
			City:    loc.City,
			State:   loc.State,
			ZipCode: loc.ZipCode,
		},
		Badge:          v.Badge,
		ExpiresAt:      v.ExpiresAt,
		Views:          v.Views,
		Clicks:         v.Clicks,
		PartnerAppURL:  v.PartnerAppURL,
		PartnerAppName: v.PartnerAppName,
		Items:          items,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromListedDeal(d queries.ListedDeal) *DealResponse {
	res := FromDealView(d.DealView)
	res.Distance = d.DistanceKm
	return res
}

type DealListResponse struct {
	Success bool            `json:"success"`
	Data    []*DealResponse `json:"data"`
	Count   int             `json:"count"`
	Center  geo.Point       `json:"center"`
}

func FromDealList(l *queries.DealList) *DealListResponse {
	data := make([]*DealResponse, len(l.Deals))
	for i, d := range l.Deals {
		data[i] = FromListedDeal(d)
	}
	return &DealListResponse{Success: true, Data: data, Count: l.Count, Center: l.Center}
}

// Envelope wraps a single payload as {"success":true,"data":...}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data any, msg string) Envelope {
	return Envelope{Success: true, Data: data, Message: msg}
}

type BulkCreateResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type CounterResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}
