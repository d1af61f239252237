package request

import (
	"time"

	"dealhub/internal/domain/deal"
	"dealhub/internal/pkg/ptr"
)

type LocationRequest struct {
	Lat     *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng     *float64 `json:"lng" binding:"required,min=-180,max=180"`
	Address string   `json:"address" binding:"max=300"`
	City    string   `json:"city" binding:"max=120"`
	State   string   `json:"state" binding:"max=60"`
	ZipCode string   `json:"zipCode" binding:"max=20"`
}

func (r LocationRequest) ToParams() deal.LocationParams {
	return deal.LocationParams{
		Lat:     ptr.Deref(r.Lat),
		Lng:     ptr.Deref(r.Lng),
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
	}
}

type DealItemRequest struct {
	ID              string     `json:"id" binding:"max=64"`
	Title           string     `json:"title" binding:"required,max=200"`
	Description     string     `json:"description" binding:"max=2000"`
	Image           *string    `json:"image" binding:"omitempty,max=2048"`
	Discount        *int       `json:"discount" binding:"required,min=0,max=100"`
	OriginalPrice   *float64   `json:"originalPrice" binding:"omitempty,min=0"`
	DiscountedPrice *float64   `json:"discountedPrice" binding:"omitempty,min=0"`
	Badge           *string    `json:"badge" binding:"omitempty,dealbadge"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	PartnerAppURL   *string    `json:"partnerAppUrl" binding:"omitempty,url"`
	PartnerAppName  *string    `json:"partnerAppName" binding:"omitempty,max=120"`
}

func (r DealItemRequest) toItem() deal.Item {
	return deal.Item{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Discount:        ptr.Deref(r.Discount),
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Badge:           r.Badge,
		ExpiresAt:       ptr.Deref(r.ExpiresAt),
		PartnerAppURL:   r.PartnerAppURL,
		PartnerAppName:  r.PartnerAppName,
	}
}

func toItems(items []DealItemRequest) []deal.Item {
	if items == nil {
		return nil
	}
	out := make([]deal.Item, len(items))
	for i, it := range items {
		out[i] = it.toItem()
	}
	return out
}

// DealTemplateRequest is every deal field except the location.
type DealTemplateRequest struct {
	StoreName       string            `json:"storeName" binding:"required,max=120"`
	StoreLogo       *string           `json:"storeLogo" binding:"omitempty,max=2048"`
	Category        string            `json:"category" binding:"required,dealcategory"`
	Title           string            `json:"title" binding:"required,max=200"`
	Description     string            `json:"description" binding:"max=2000"`
	Image           string            `json:"image" binding:"required,max=2048"`
	Discount        *int              `json:"discount" binding:"required,min=0,max=100"`
	OriginalPrice   *float64          `json:"originalPrice" binding:"omitempty,min=0"`
	DiscountedPrice *float64          `json:"discountedPrice" binding:"omitempty,min=0"`
	Badge           *string           `json:"badge" binding:"omitempty,dealbadge"`
	ExpiresAt       *time.Time        `json:"expiresAt"`
	PartnerAppURL   *string           `json:"partnerAppUrl" binding:"omitempty,url"`
	PartnerAppName  *string           `json:"partnerAppName" binding:"omitempty,max=120"`
	Items           []DealItemRequest `json:"deals" binding:"omitempty,max=50,dive"`
}

func (r DealTemplateRequest) ToParams() deal.Params {
	return deal.Params{
		StoreName:       r.StoreName,
		StoreLogo:       r.StoreLogo,
		Category:        r.Category,
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Discount:        ptr.Deref(r.Discount),
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Badge:           r.Badge,
		ExpiresAt:       r.ExpiresAt,
		PartnerAppURL:   r.PartnerAppURL,
		PartnerAppName:  r.PartnerAppName,
		Items:           toItems(r.Items),
	}
}

type CreateDealRequest struct {
	DealTemplateRequest
	Location *LocationRequest `json:"location" binding:"required"`
}

func (r CreateDealRequest) ToParams() deal.Params {
	p := r.DealTemplateRequest.ToParams()
	p.Location = r.Location.ToParams()
	return p
}

type BulkCreateDealRequest struct {
	Deal      *DealTemplateRequest `json:"deal" binding:"required"`
	Locations []LocationRequest    `json:"locations" binding:"required,min=1,max=500,dive"`
}

func (r BulkCreateDealRequest) ToParams() (deal.Params, []deal.LocationParams) {
	locs := make([]deal.LocationParams, len(r.Locations))
	for i, l := range r.Locations {
		locs[i] = l.ToParams()
	}
	return r.Deal.ToParams(), locs
}

// UpdateDealRequest patches a deal; absent fields keep their stored value.
type UpdateDealRequest struct {
	StoreName       *string           `json:"storeName" binding:"omitempty,min=1,max=120"`
	StoreLogo       *string           `json:"storeLogo" binding:"omitempty,max=2048"`
	Category        *string           `json:"category" binding:"omitempty,dealcategory"`
	Title           *string           `json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string           `json:"description" binding:"omitempty,max=2000"`
	Image           *string           `json:"image" binding:"omitempty,min=1,max=2048"`
	Discount        *int              `json:"discount" binding:"omitempty,min=0,max=100"`
	OriginalPrice   *float64          `json:"originalPrice" binding:"omitempty,min=0"`
	DiscountedPrice *float64          `json:"discountedPrice" binding:"omitempty,min=0"`
	Location        *LocationRequest  `json:"location"`
	Badge           *string           `json:"badge" binding:"omitempty,dealbadge"`
	ExpiresAt       *time.Time        `json:"expiresAt"`
	PartnerAppURL   *string           `json:"partnerAppUrl" binding:"omitempty,url"`
	PartnerAppName  *string           `json:"partnerAppName" binding:"omitempty,max=120"`
	Items           []DealItemRequest `json:"deals" binding:"omitempty,max=50,dive"`
}

func (r UpdateDealRequest) ToPatch() deal.Patch {
	var loc *deal.LocationParams
	if r.Location != nil {
		lp := r.Location.ToParams()
		loc = &lp
	}
	return deal.Patch{
		StoreName:       r.StoreName,
		StoreLogo:       r.StoreLogo,
		Category:        r.Category,
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Discount:        r.Discount,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Location:        loc,
		Badge:           r.Badge,
		ExpiresAt:       r.ExpiresAt,
		PartnerAppURL:   r.PartnerAppURL,
		PartnerAppName:  r.PartnerAppName,
		Items:           toItems(r.Items),
	}
}

type ListDealsQuery struct {
	Lat         *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
	MaxDistance *float64 `form:"maxDistance" binding:"omitempty,gt=0"`
	Category    string   `form:"category" binding:"omitempty,oneof=all restaurant grocery gas coffee"`
	Sort        string   `form:"sort" binding:"omitempty,oneof=closest highest-discount trending"`
}
