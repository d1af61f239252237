package geo

import (
	"math"
	"sort"
)

const EarthRadiusKm = 6371.0

// DefaultCenter is used as the map centre when there is nothing to average (Times Square).
var DefaultCenter = Point{Lat: 40.7589, Lng: -73.9851}

// DistanceKm is the great-circle (Haversine) distance rounded to 0.1 km.
func DistanceKm(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(EarthRadiusKm*c*10) / 10
}

type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// FilterByDistance keeps items within maxKm of origin (inclusive), ordered by
// ascending distance. Items at equal distance keep their input order.
func FilterByDistance[T any](items []T, pointOf func(T) Point, origin Point, maxKm float64) []Ranked[T] {
	out := make([]Ranked[T], 0, len(items))
	for _, it := range items {
		d := DistanceKm(origin, pointOf(it))
		if d <= maxKm {
			out = append(out, Ranked[T]{Item: it, DistanceKm: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// Annotate attaches distances without filtering or reordering.
func Annotate[T any](items []T, pointOf func(T) Point, origin Point) []Ranked[T] {
	out := make([]Ranked[T], len(items))
	for i, it := range items {
		out[i] = Ranked[T]{Item: it, DistanceKm: DistanceKm(origin, pointOf(it))}
	}
	return out
}

// Centroid is the arithmetic mean of points, or DefaultCenter for none.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return DefaultCenter
	}
	var lat, lng float64
	for _, p := range points {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(points))
	return Point{Lat: lat / n, Lng: lng / n}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
