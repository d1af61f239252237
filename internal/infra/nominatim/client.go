// Package nominatim talks to an OpenStreetMap Nominatim server for free-text
// search, forward geocoding and reverse geocoding within the US.
package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dealhub/internal/domain/geo"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	searchLimit  = 20
	countryCodes = "us"
)

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
}

func NewClient(cfg config.GeocodingConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.NominatimURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		logger:    logger,
	}
}

type place struct {
	PlaceID     json.Number `json:"place_id"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Address     address     `json:"address"`
	Error       string      `json:"error"`
}

type address struct {
	Road         string `json:"road"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Hamlet       string `json:"hamlet"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
}

func (a address) locality() string {
	for _, v := range []string{a.City, a.Town, a.Village, a.Municipality, a.Hamlet} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Search runs one free-text query "<store> <city> <state>, USA".
func (c *Client) Search(ctx context.Context, storeName, city, state string) ([]geo.Candidate, error) {
	q := joinNonEmpty(" ", storeName, city, state) + ", USA"

	var places []place
	if err := c.get(ctx, "/search", searchParams(q, searchLimit), &places); err != nil {
		return nil, err
	}

	out := make([]geo.Candidate, 0, len(places))
	for _, p := range places {
		cand, ok := p.candidate()
		if !ok {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

// Geocode resolves one address; city and state fill in what the answer lacks.
func (c *Client) Geocode(ctx context.Context, addr, city, state string) (*geo.Candidate, error) {
	q := joinNonEmpty(", ", addr, city, state) + ", USA"

	var places []place
	if err := c.get(ctx, "/search", searchParams(q, 1), &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, geo.ErrLocationNotFound
	}

	cand, ok := places[0].candidate()
	if !ok {
		return nil, geo.ErrLocationNotFound
	}
	if cand.Address == "" {
		cand.Address = addr
	}
	if cand.City == "" {
		cand.City = city
	}
	if cand.State == "" {
		cand.State = state
	}
	return &cand, nil
}

func (c *Client) Reverse(ctx context.Context, p geo.Point) (*geo.Candidate, error) {
	params := url.Values{
		"lat":            {strconv.FormatFloat(p.Lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(p.Lng, 'f', -1, 64)},
		"format":         {"json"},
		"addressdetails": {"1"},
	}

	var res place
	if err := c.get(ctx, "/reverse", params, &res); err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, geo.ErrLocationNotFound
	}

	name := firstDisplaySegment(res.DisplayName)
	return &geo.Candidate{
		Point:       p,
		Name:        firstNonEmpty(res.Name, name),
		Address:     firstNonEmpty(res.Address.Road, name),
		City:        res.Address.locality(),
		State:       res.Address.State,
		ZipCode:     res.Address.Postcode,
		DisplayName: res.DisplayName,
		PlaceID:     res.PlaceID.String(),
	}, nil
}

func (p place) candidate() (geo.Candidate, bool) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return geo.Candidate{}, false
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return geo.Candidate{}, false
	}
	first := firstDisplaySegment(p.DisplayName)
	return geo.Candidate{
		Point:       geo.Point{Lat: lat, Lng: lng},
		Name:        firstNonEmpty(p.Name, first),
		Address:     firstNonEmpty(first, p.Address.Road),
		City:        p.Address.locality(),
		State:       p.Address.State,
		ZipCode:     p.Address.Postcode,
		DisplayName: p.DisplayName,
		PlaceID:     p.PlaceID.String(),
	}, true
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "nominatim: wait for rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "nominatim: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "nominatim request failed", "path", path, "error", err.Error())
		return errs.Wrapf(geo.ErrUpstreamUnavailable, "nominatim: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.WarnContext(ctx, "nominatim returned an error status", "path", path, "status", resp.StatusCode)
		return errs.Wrapf(geo.ErrUpstreamUnavailable, "nominatim: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(geo.ErrUpstreamUnavailable, "nominatim: decode response: %v", err)
	}
	return nil
}

func searchParams(q string, limit int) url.Values {
	return url.Values{
		"q":              {q},
		"format":         {"json"},
		"addressdetails": {"1"},
		"limit":          {strconv.Itoa(limit)},
		"countrycodes":   {countryCodes},
	}
}

func firstDisplaySegment(displayName string) string {
	first, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(first)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
