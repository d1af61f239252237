package geo

import (
	"strings"

	"dealhub/internal/pkg/errs"
)

var (
	ErrInvalidLatitude  = errs.Mark(errs.New("latitude must be between -90 and 90"), errs.ErrDomainValidation)
	ErrInvalidLongitude = errs.Mark(errs.New("longitude must be between -180 and 180"), errs.ErrDomainValidation)

	// ErrLocationNotFound means the provider answered but had no match.
	ErrLocationNotFound = errs.Mark(errs.New("location not found"), errs.ErrNotFound)
	// ErrUpstreamUnavailable means no provider could answer.
	ErrUpstreamUnavailable = errs.Mark(errs.New("location provider unavailable"), errs.ErrUpstream)
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewPoint(lat, lng float64) (Point, error) {
	if lat < -90 || lat > 90 {
		return Point{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Point{}, ErrInvalidLongitude
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Candidate is a transient search result; it is never persisted as-is.
type Candidate struct {
	Point
	Name        string            `json:"name"`
	Address     string            `json:"address,omitempty"`
	City        string            `json:"city,omitempty"`
	State       string            `json:"state,omitempty"`
	ZipCode     string            `json:"zipCode,omitempty"`
	DisplayName string            `json:"displayName"`
	PlaceID     string            `json:"placeId,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// NationwideQuery asks for every location of a brand, optionally narrowed
// to one state or city. Limit <= 0 means unlimited.
type NationwideQuery struct {
	Brand string
	State string
	City  string
	Limit int
}

func (q NationwideQuery) Normalized() NationwideQuery {
	return NationwideQuery{
		Brand: strings.TrimSpace(q.Brand),
		State: strings.TrimSpace(q.State),
		City:  strings.TrimSpace(q.City),
		Limit: q.Limit,
	}
}

// CacheKey is stable for equivalent queries.
func (q NationwideQuery) CacheKey() string {
	n := q.Normalized()
	return strings.ToLower(n.Brand) + "|" + strings.ToLower(n.State) + "|" + strings.ToLower(n.City)
}

// DisplayName joins the non-empty address parts: "name, street, city, ST 12345".
func DisplayName(name, address, city, state, zip string) string {
	parts := []string{name}
	if address != "" {
		parts = append(parts, address)
	}
	if city != "" {
		parts = append(parts, city)
	}
	tail := strings.TrimSpace(state + " " + zip)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}
