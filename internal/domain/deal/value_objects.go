package deal

import (
	"strings"

	"dealhub/internal/domain/geo"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxStoreNameLength   = 120
	MaxItems             = 50
)

type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryGrocery    Category = "grocery"
	CategoryGas        Category = "gas"
	CategoryCoffee     Category = "coffee"

	// CategoryAll is only meaningful as a list filter.
	CategoryAll = "all"
)

var categories = map[Category]struct{}{
	CategoryRestaurant: {},
	CategoryGrocery:    {},
	CategoryGas:        {},
	CategoryCoffee:     {},
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categories[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) String() string { return string(c) }

type Badge string

const (
	BadgeGreatDeal Badge = "great-deal"
	BadgeEndsSoon  Badge = "ends-soon"
	BadgeTrending  Badge = "trending"
	BadgeNew       Badge = "new"
)

func NewBadge(s string) (Badge, error) {
	switch b := Badge(strings.ToLower(strings.TrimSpace(s))); b {
	case BadgeGreatDeal, BadgeEndsSoon, BadgeTrending, BadgeNew:
		return b, nil
	default:
		return "", ErrInvalidBadge
	}
}

func (b Badge) String() string { return string(b) }

// newBadgePtr keeps "no badge" as nil.
func newBadgePtr(s *string) (*Badge, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	b, err := NewBadge(*s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type Discount struct {
	percent int
}

func NewDiscount(percent int) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{percent: percent}, nil
}

func (d Discount) Percent() int { return d.percent }

func validatePrice(p *float64) error {
	if p != nil && *p < 0 {
		return ErrNegativePrice
	}
	return nil
}

type LocationParams struct {
	Lat     float64
	Lng     float64
	Address string
	City    string
	State   string
	ZipCode string
}

type Location struct {
	point   geo.Point
	address string
	city    string
	state   string
	zipCode string
}

func NewLocation(p LocationParams) (Location, error) {
	point, err := geo.NewPoint(p.Lat, p.Lng)
	if err != nil {
		return Location{}, err
	}
	return Location{
		point:   point,
		address: strings.TrimSpace(p.Address),
		city:    strings.TrimSpace(p.City),
		state:   strings.TrimSpace(p.State),
		zipCode: strings.TrimSpace(p.ZipCode),
	}, nil
}

func (l Location) Point() geo.Point { return l.point }
func (l Location) Address() string  { return l.address }
func (l Location) City() string     { return l.city }
func (l Location) State() string    { return l.state }
func (l Location) ZipCode() string  { return l.zipCode }

func (l Location) Params() LocationParams {
	return LocationParams{
		Lat:     l.point.Lat,
		Lng:     l.point.Lng,
		Address: l.address,
		City:    l.city,
		State:   l.state,
		ZipCode: l.zipCode,
	}
}
