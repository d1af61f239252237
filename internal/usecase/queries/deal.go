package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"dealhub/internal/domain/deal"
	"dealhub/internal/domain/geo"
	"dealhub/internal/infra"
	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound = errs.Mark(errs.New("deal not found"), errs.ErrNotFound)
	ErrInvalidSort  = errs.Mark(errs.New("sort must be one of closest, highest-discount, trending"), errs.ErrDomainValidation)
)

type SortOption string

const (
	SortDefault         SortOption = ""
	SortClosest         SortOption = "closest"
	SortHighestDiscount SortOption = "highest-discount"
	SortTrending        SortOption = "trending"
)

func ParseSortOption(s string) (SortOption, error) {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case SortDefault, SortClosest, SortHighestDiscount, SortTrending:
		return opt, nil
	default:
		return "", ErrInvalidSort
	}
}

type LocationView struct {
	Lat     float64
	Lng     float64
	Address string
	City    string
	State   string
	ZipCode string
}

func (l LocationView) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}

type DealItemView struct {
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

type DealView struct {
	ID              uuid.UUID
	StoreName       string
	StoreLogo       *string
	Category        string
	Title           string
	Description     string
	Image           string
	Discount        int
	OriginalPrice   *float64
	DiscountedPrice *float64
	Location        LocationView
	Badge           *string
	ExpiresAt       time.Time
	Views           int
	Clicks          int
	PartnerAppURL   *string
	PartnerAppName  *string
	Items           []DealItemView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DealFilters narrows a listing. MaxDistanceKm only applies with an Origin.
type DealFilters struct {
	Category      string
	Origin        *geo.Point
	MaxDistanceKm *float64
	Sort          SortOption
}

type ListedDeal struct {
	*DealView
	DistanceKm *float64
}

type DealList struct {
	Deals  []ListedDeal
	Count  int
	Center geo.Point
}

type DealReadStore interface {
	// FindActive returns deals not yet expired at now, oldest first.
	FindActive(ctx context.Context, category *string, now time.Time) ([]*DealView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DealView, error)
}

type DealQueries interface {
	List(ctx context.Context, filters DealFilters) (*DealList, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DealView, error)
}

type dealQueriesImpl struct {
	store DealReadStore
	clock clock.Clock
}

func NewDealQueries(store DealReadStore, clk clock.Clock) DealQueries {
	return &dealQueriesImpl{store: store, clock: clk}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DealView, error) {
	d, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return d, nil
}

func (q *dealQueriesImpl) List(ctx context.Context, filters DealFilters) (*DealList, error) {
	var category *string
	if c := strings.ToLower(strings.TrimSpace(filters.Category)); c != "" && c != deal.CategoryAll {
		category = &c
	}

	rows, err := q.store.FindActive(ctx, category, q.clock.Now())
	if err != nil {
		return nil, err
	}

	listed := rank(rows, filters)
	sortListed(listed, filters)

	points := make([]geo.Point, len(listed))
	for i, l := range listed {
		points[i] = l.Location.Point()
	}
	return &DealList{
		Deals:  listed,
		Count:  len(listed),
		Center: geo.Centroid(points),
	}, nil
}

// rank attaches distances when an origin is given; with a bound it also
// drops far deals and orders the rest nearest first.
func rank(rows []*DealView, filters DealFilters) []ListedDeal {
	if filters.Origin == nil {
		out := make([]ListedDeal, len(rows))
		for i, r := range rows {
			out[i] = ListedDeal{DealView: r}
		}
		return out
	}

	pointOf := func(d *DealView) geo.Point { return d.Location.Point() }
	var ranked []geo.Ranked[*DealView]
	if filters.MaxDistanceKm != nil {
		ranked = geo.FilterByDistance(rows, pointOf, *filters.Origin, *filters.MaxDistanceKm)
	} else {
		ranked = geo.Annotate(rows, pointOf, *filters.Origin)
	}

	out := make([]ListedDeal, len(ranked))
	for i, r := range ranked {
		d := r.DistanceKm
		out[i] = ListedDeal{DealView: r.Item, DistanceKm: &d}
	}
	return out
}

func sortListed(listed []ListedDeal, filters DealFilters) {
	opt := filters.Sort
	if opt == SortDefault && filters.Origin != nil {
		opt = SortClosest
	}

	switch opt {
	case SortClosest:
		if filters.Origin == nil {
			return
		}
		sort.SliceStable(listed, func(i, j int) bool {
			return *listed[i].DistanceKm < *listed[j].DistanceKm
		})
	case SortHighestDiscount:
		sort.SliceStable(listed, func(i, j int) bool {
			return listed[i].Discount > listed[j].Discount
		})
	case SortTrending:
		sort.SliceStable(listed, func(i, j int) bool {
			return listed[i].Views > listed[j].Views
		})
	}
}
