// Package overpass searches OpenStreetMap for every location of a brand
// through the public Overpass API mirrors.
package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dealhub/internal/domain/geo"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/errs"
)

// maxBodyBytes caps a single Overpass response.
const maxBodyBytes = 64 << 20

type Client struct {
	endpoints    []string
	queryTimeout int
	deadline     time.Duration
	http         *http.Client
	logger       *slog.Logger
}

func NewClient(cfg config.OverpassConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoints:    cfg.Endpoints,
		queryTimeout: cfg.QueryTimeout,
		deadline:     cfg.SearchDeadline,
		http:         &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
}

// Search tries the US-scoped query then the unscoped one on every endpoint in
// order, and stops at the first non-empty answer. Only empty answers yield an
// empty result; if no endpoint answered at all, or the search deadline passed
// first, the error wraps geo.ErrUpstreamUnavailable.
func (c *Client) Search(ctx context.Context, q geo.NationwideQuery) ([]geo.Candidate, error) {
	q = q.Normalized()
	if q.Brand == "" {
		return []geo.Candidate{}, nil
	}

	searchCtx := ctx
	if c.deadline > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, c.deadline)
		defer cancel()
	}

	var (
		lastErr  error
		answered bool
	)
	for _, endpoint := range c.endpoints {
		for _, scoped := range []bool{true, false} {
			if err := ctx.Err(); err != nil {
				return nil, errs.Wrap(err, "overpass: search cancelled")
			}
			if searchCtx.Err() != nil {
				return c.exhausted(answered, errs.Mark(errs.Newf("search deadline %s exceeded, last error: %v", c.deadline, lastErr), errDeadline))
			}

			elements, err := c.post(searchCtx, endpoint, BuildQuery(q.Brand, c.queryTimeout, scoped))
			if err != nil {
				lastErr = err
				c.logger.WarnContext(ctx, "overpass request failed",
					"endpoint", endpoint,
					"scoped", scoped,
					"error", err.Error(),
				)
				continue
			}
			answered = true

			found := refine(elements, q)
			if len(found) > 0 {
				c.logger.DebugContext(ctx, "overpass search succeeded",
					"endpoint", endpoint,
					"scoped", scoped,
					"raw", len(elements),
					"kept", len(found),
				)
				return found, nil
			}
		}
	}

	return c.exhausted(answered, lastErr)
}

func (c *Client) exhausted(answered bool, lastErr error) ([]geo.Candidate, error) {
	if answered {
		return []geo.Candidate{}, nil
	}
	err := errs.Wrapf(geo.ErrUpstreamUnavailable, "overpass: no endpoint answered, last error: %v", lastErr)
	return nil, errs.WithHint(err, failureReason(lastErr))
}

var (
	errDeadline = errs.New("search deadline exceeded")
	errBadBody  = errs.New("undecodable response")
)

type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }

// failureReason describes lastErr without endpoint URLs or transport details.
func failureReason(lastErr error) string {
	var status *statusError
	switch {
	case errs.Is(lastErr, errDeadline):
		return "search took too long"
	case errors.As(lastErr, &status):
		return fmt.Sprintf("last endpoint returned HTTP %d", status.code)
	case errs.Is(lastErr, errBadBody):
		return "last endpoint returned an unreadable response"
	case errs.Is(lastErr, context.DeadlineExceeded), isTimeout(lastErr):
		return "last endpoint timed out"
	default:
		return "endpoints could not be reached"
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) post(ctx context.Context, endpoint, query string) ([]element, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "send request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{code: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode response"), errBadBody)
	}
	return body.Elements, nil
}
