package overpass

import (
	"math"
	"strconv"
	"strings"

	"dealhub/internal/domain/geo"
	"dealhub/internal/pkg/usstate"
)

// dedupDegrees is the per-axis tolerance under which two results are the same place.
const dedupDegrees = 0.001

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// refine normalizes raw elements and applies, in order: brand match, region
// filter, proximity dedup (first kept wins) and the result limit.
func refine(elements []element, q geo.NationwideQuery) []geo.Candidate {
	out := make([]geo.Candidate, 0, len(elements))
	seen := newGrid(dedupDegrees)
	wantState, stateOK := usstate.Normalize(q.State)

	for _, el := range elements {
		cand, ok := toCandidate(el, q.Brand)
		if !ok {
			continue
		}
		if !matchesBrand(cand, q.Brand) {
			continue
		}
		if !matchesRegion(cand, q, wantState, stateOK) {
			continue
		}
		if !seen.add(cand.Point) {
			continue
		}
		out = append(out, cand)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out
}

func toCandidate(el element, brand string) (geo.Candidate, bool) {
	var point geo.Point
	switch {
	case el.Center != nil:
		point = geo.Point{Lat: el.Center.Lat, Lng: el.Center.Lon}
	case el.Lat != nil && el.Lon != nil:
		point = geo.Point{Lat: *el.Lat, Lng: *el.Lon}
	default:
		return geo.Candidate{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	address := strings.TrimSpace(tags["addr:housenumber"] + " " + tags["addr:street"])
	city := firstNonEmpty(tags["addr:city"], tags["addr:place"])
	state := tags["addr:state"]
	zip := tags["addr:postcode"]
	name := firstNonEmpty(tags["name"], tags["brand"], brand)

	return geo.Candidate{
		Point:       point,
		Name:        name,
		Address:     address,
		City:        city,
		State:       state,
		ZipCode:     zip,
		DisplayName: geo.DisplayName(name, address, city, state, zip),
		PlaceID:     el.Type + "/" + strconv.FormatInt(el.ID, 10),
		Tags:        tags,
	}, true
}

// matchesBrand accepts a candidate when its resolved name, brand tag or
// operator tag contains the query, or is contained in it, ignoring case. The
// resolved name falls back to the query, so untagged operator matches stay.
func matchesBrand(c geo.Candidate, brand string) bool {
	query := strings.ToLower(brand)
	for _, raw := range []string{c.Name, c.Tags["brand"], c.Tags["operator"]} {
		v := strings.ToLower(strings.TrimSpace(raw))
		if v == "" {
			continue
		}
		if strings.Contains(v, query) || strings.Contains(query, v) {
			return true
		}
	}
	return false
}

// matchesRegion: states compare by USPS code, falling back to substring
// matching when either side is not a recognized state; cities compare by
// substring. Results missing the filtered field are dropped. With no filter
// only US (and DC) results are kept.
func matchesRegion(c geo.Candidate, q geo.NationwideQuery, wantState string, stateOK bool) bool {
	if q.State == "" && q.City == "" {
		return usstate.IsUS(c.State)
	}

	if q.State != "" {
		if c.State == "" {
			return false
		}
		gotState, ok := usstate.Normalize(c.State)
		if stateOK && ok {
			if gotState != wantState {
				return false
			}
		} else if !containsFold(c.State, q.State) && !containsFold(q.State, c.State) {
			return false
		}
	}

	if q.City != "" {
		if c.City == "" || !containsFold(c.City, q.City) {
			return false
		}
	}
	return true
}

type cell struct{ lat, lng int64 }

type grid struct {
	size  float64
	cells map[cell][]geo.Point
}

func newGrid(size float64) *grid {
	return &grid{size: size, cells: make(map[cell][]geo.Point)}
}

// add records p and reports true unless a kept point is within size on both axes.
func (g *grid) add(p geo.Point) bool {
	c := cell{lat: int64(math.Floor(p.Lat / g.size)), lng: int64(math.Floor(p.Lng / g.size))}
	for dLat := int64(-1); dLat <= 1; dLat++ {
		for dLng := int64(-1); dLng <= 1; dLng++ {
			for _, kept := range g.cells[cell{lat: c.lat + dLat, lng: c.lng + dLng}] {
				if math.Abs(kept.Lat-p.Lat) <= g.size && math.Abs(kept.Lng-p.Lng) <= g.size {
					return false
				}
			}
		}
	}
	g.cells[c] = append(g.cells[c], p)
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
