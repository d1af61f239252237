package deal

import (
	"strings"
	"time"

	"dealhub/internal/pkg/patch"

	"github.com/google/uuid"
)

// DefaultLifetime applies when a deal is created without an expiry.
const DefaultLifetime = 7 * 24 * time.Hour

// Item is one offer inside a deal; items are stored with their deal.
type Item struct {
	ID              string
	Title           string
	Description     string
	Image           *string
	Discount        int
	OriginalPrice   *float64
	DiscountedPrice *float64
	Badge           *string
	ExpiresAt       time.Time
	PartnerAppURL   *string
	PartnerAppName  *string
}

func (it Item) validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return ErrInvalidItem
	}
	if _, err := NewDiscount(it.Discount); err != nil {
		return err
	}
	if err := validatePrice(it.OriginalPrice); err != nil {
		return err
	}
	if err := validatePrice(it.DiscountedPrice); err != nil {
		return err
	}
	if _, err := newBadgePtr(it.Badge); err != nil {
		return err
	}
	return nil
}

// Params carries the writable fields of a deal.
type Params struct {
	StoreName       string
	StoreLogo       *string
	Category        string
	Title           string
	Description     string
	Image           string
	Discount        int
	OriginalPrice   *float64
	DiscountedPrice *float64
	Location        LocationParams
	Badge           *string
	ExpiresAt       *time.Time
	PartnerAppURL   *string
	PartnerAppName  *string
	Items           []Item
}

// WithLocation copies the params for another location of the same deal.
func (p Params) WithLocation(loc LocationParams) Params {
	cp := p
	cp.Location = loc
	if p.Items != nil {
		cp.Items = append([]Item(nil), p.Items...)
	}
	return cp
}

type Deal struct {
	id              uuid.UUID
	storeName       string
	storeLogo       *string
	category        Category
	title           string
	description     string
	image           string
	discount        Discount
	originalPrice   *float64
	discountedPrice *float64
	location        Location
	badge           *Badge
	expiresAt       time.Time
	views           int
	clicks          int
	partnerAppURL   *string
	partnerAppName  *string
	items           []Item
	createdAt       time.Time
	updatedAt       time.Time
}

func NewDeal(id uuid.UUID, p Params, now time.Time) (*Deal, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if p.ExpiresAt == nil {
		exp := now.Add(DefaultLifetime)
		p.ExpiresAt = &exp
	}

	d := &Deal{id: id, createdAt: now, updatedAt: now}
	if err := d.assign(p, now); err != nil {
		return nil, err
	}
	return d, nil
}

// Reconstruct rebuilds a stored deal. Stored values are trusted except for
// the invariants every deal must keep.
func Reconstruct(id uuid.UUID, p Params, views, clicks int, createdAt, updatedAt time.Time) (*Deal, error) {
	d := &Deal{id: id, views: views, clicks: clicks, createdAt: createdAt}
	if p.ExpiresAt == nil {
		exp := createdAt.Add(DefaultLifetime)
		p.ExpiresAt = &exp
	}
	if err := d.assign(p, updatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

// Patch holds optional replacements; nil keeps the current value.
type Patch struct {
	StoreName       *string
	StoreLogo       *string
	Category        *string
	Title           *string
	Description     *string
	Image           *string
	Discount        *int
	OriginalPrice   *float64
	DiscountedPrice *float64
	Location        *LocationParams
	Badge           *string
	ExpiresAt       *time.Time
	PartnerAppURL   *string
	PartnerAppName  *string
	Items           []Item
}

// Apply returns a new deal with the patch merged over the current values.
func (d *Deal) Apply(ch Patch, now time.Time) (*Deal, error) {
	cur := d.Params()
	merged := Params{
		StoreName:       patch.Coalesce(ch.StoreName, cur.StoreName),
		StoreLogo:       patch.CoalescePtr(ch.StoreLogo, cur.StoreLogo),
		Category:        patch.Coalesce(ch.Category, cur.Category),
		Title:           patch.Coalesce(ch.Title, cur.Title),
		Description:     patch.Coalesce(ch.Description, cur.Description),
		Image:           patch.Coalesce(ch.Image, cur.Image),
		Discount:        patch.Coalesce(ch.Discount, cur.Discount),
		OriginalPrice:   patch.CoalescePtr(ch.OriginalPrice, cur.OriginalPrice),
		DiscountedPrice: patch.CoalescePtr(ch.DiscountedPrice, cur.DiscountedPrice),
		Location:        patch.Coalesce(ch.Location, cur.Location),
		Badge:           patch.CoalescePtr(ch.Badge, cur.Badge),
		ExpiresAt:       patch.CoalescePtr(ch.ExpiresAt, cur.ExpiresAt),
		PartnerAppURL:   patch.CoalescePtr(ch.PartnerAppURL, cur.PartnerAppURL),
		PartnerAppName:  patch.CoalescePtr(ch.PartnerAppName, cur.PartnerAppName),
		Items:           patch.CoalesceSlice(ch.Items, cur.Items),
	}

	next := &Deal{id: d.id, views: d.views, clicks: d.clicks, createdAt: d.createdAt}
	if err := next.assign(merged, now); err != nil {
		return nil, err
	}
	return next, nil
}

func (d *Deal) assign(p Params, now time.Time) error {
	storeName := strings.TrimSpace(p.StoreName)
	if storeName == "" {
		return ErrEmptyStoreName
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	image := strings.TrimSpace(p.Image)
	if image == "" {
		return ErrEmptyImage
	}
	if len(storeName) > MaxStoreNameLength || len(title) > MaxTitleLength || len(p.Description) > MaxDescriptionLength {
		return ErrFieldTooLong
	}
	category, err := NewCategory(p.Category)
	if err != nil {
		return err
	}
	discount, err := NewDiscount(p.Discount)
	if err != nil {
		return err
	}
	if err = validatePrice(p.OriginalPrice); err != nil {
		return err
	}
	if err = validatePrice(p.DiscountedPrice); err != nil {
		return err
	}
	location, err := NewLocation(p.Location)
	if err != nil {
		return err
	}
	badge, err := newBadgePtr(p.Badge)
	if err != nil {
		return err
	}
	if len(p.Items) > MaxItems {
		return ErrTooManyItems
	}
	items := make([]Item, len(p.Items))
	for i, it := range p.Items {
		if err = it.validate(); err != nil {
			return err
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.ExpiresAt.IsZero() {
			it.ExpiresAt = *p.ExpiresAt
		}
		items[i] = it
	}

	d.storeName = storeName
	d.storeLogo = p.StoreLogo
	d.category = category
	d.title = title
	d.description = p.Description
	d.image = image
	d.discount = discount
	d.originalPrice = p.OriginalPrice
	d.discountedPrice = p.DiscountedPrice
	d.location = location
	d.badge = badge
	d.expiresAt = *p.ExpiresAt
	d.partnerAppURL = p.PartnerAppURL
	d.partnerAppName = p.PartnerAppName
	d.items = items
	d.updatedAt = now
	return nil
}

// Params exposes the writable fields, e.g. for patching or persistence.
func (d *Deal) Params() Params {
	var badge *string
	if d.badge != nil {
		s := d.badge.String()
		badge = &s
	}
	exp := d.expiresAt
	return Params{
		StoreName:       d.storeName,
		StoreLogo:       d.storeLogo,
		Category:        d.category.String(),
		Title:           d.title,
		Description:     d.description,
		Image:           d.image,
		Discount:        d.discount.Percent(),
		OriginalPrice:   d.originalPrice,
		DiscountedPrice: d.discountedPrice,
		Location:        d.location.Params(),
		Badge:           badge,
		ExpiresAt:       &exp,
		PartnerAppURL:   d.partnerAppURL,
		PartnerAppName:  d.partnerAppName,
		Items:           append([]Item(nil), d.items...),
	}
}

func (d *Deal) ID() uuid.UUID             { return d.id }
func (d *Deal) StoreName() string         { return d.storeName }
func (d *Deal) StoreLogo() *string        { return d.storeLogo }
func (d *Deal) Category() Category        { return d.category }
func (d *Deal) Title() string             { return d.title }
func (d *Deal) Description() string       { return d.description }
func (d *Deal) Image() string             { return d.image }
func (d *Deal) Discount() Discount        { return d.discount }
func (d *Deal) OriginalPrice() *float64   { return d.originalPrice }
func (d *Deal) DiscountedPrice() *float64 { return d.discountedPrice }
func (d *Deal) Location() Location        { return d.location }
func (d *Deal) Badge() *Badge             { return d.badge }
func (d *Deal) ExpiresAt() time.Time      { return d.expiresAt }
func (d *Deal) Views() int                { return d.views }
func (d *Deal) Clicks() int               { return d.clicks }
func (d *Deal) PartnerAppURL() *string    { return d.partnerAppURL }
func (d *Deal) PartnerAppName() *string   { return d.partnerAppName }
func (d *Deal) Items() []Item             { return d.items }
func (d *Deal) CreatedAt() time.Time      { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time      { return d.updatedAt }
