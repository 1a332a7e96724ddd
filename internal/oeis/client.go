// Package oeis identifies integer sequences against the OEIS corpus.
//
// The client performs blocking HTTP queries against the OEIS JSON search
// endpoint with polite rate limiting and bounded retry. Match resolution
// is fuzzy: a candidate is accepted when at least MinTerms consecutive
// terms align within a bounded offset window, optionally under a global
// sign flip. Two outcomes are sentinels rather than errors: a confirmed
// miss (AnumMissing) and an unreachable corpus (AnumUnreachable).
package oeis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/PeterLuschny/tablInspector/internal/log"
	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Catalog id sentinels.
const (
	// AnumMissing reports a query that succeeded but matched nothing.
	AnumMissing int64 = 0
	// AnumUnreachable reports a corpus that could not be reached after
	// the retry budget was exhausted.
	AnumUnreachable int64 = -1
)

// Client defaults.
const (
	DefaultEndpoint   = "https://oeis.org/search"
	DefaultMaxResults = 10
	DefaultRetries    = 3
	DefaultBackoff    = 2 * time.Second
	DefaultRateLimit  = 1.0 // requests per second
)

// MatchResult is the outcome of one corpus query.
type MatchResult struct {
	Anum   int64 // catalog id, AnumMissing or AnumUnreachable
	Offset int   // alignment offset of the matching run
	Length int   // length of the consecutive matching run
}

// Found reports whether the result carries a real catalog id.
func (m MatchResult) Found() bool { return m.Anum > 0 }

// Unreachable reports whether the corpus could not be checked.
func (m MatchResult) Unreachable() bool { return m.Anum == AnumUnreachable }

// Anum formats the catalog id in OEIS A-number notation.
func Anum(id int64) string {
	if id <= 0 {
		return "missing"
	}
	return fmt.Sprintf("A%06d", id)
}

// Config carries the client settings, typically from the CLI config file.
type Config struct {
	Endpoint   string        // search endpoint; DefaultEndpoint if empty
	MaxResults int           // results requested per query
	Retries    int           // attempts per query before giving up
	Backoff    time.Duration // initial backoff, doubled per retry
	RateLimit  float64       // sustained requests per second
	HTTPClient *http.Client  // override for tests
}

// Client queries the OEIS search endpoint.
type Client struct {
	endpoint   string
	maxResults int
	retries    int
	backoff    time.Duration
	limiter    *rate.Limiter
	hc         *http.Client
}

// NewClient creates a corpus client. Zero-value config fields fall back
// to the package defaults.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		maxResults: cfg.MaxResults,
		retries:    cfg.Retries,
		backoff:    cfg.Backoff,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		hc:         cfg.HTTPClient,
	}
}

// searchResponse mirrors the fields of the OEIS JSON search reply that
// the client consumes.
type searchResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Number int64  `json:"number"`
		Data   string `json:"data"`
	} `json:"results"`
}

// Query identifies seq against the corpus. The sequence must carry at
// least tabl.MinTerms terms. Network failure after the retry budget
// yields MatchResult{Anum: AnumUnreachable} with a nil error so batch
// callers can continue.
func (c *Client) Query(ctx context.Context, seq tabl.Seq) (MatchResult, error) {
	if len(seq) < tabl.MinTerms {
		return MatchResult{}, tabl.ErrInsufficientTerms
	}

	terms := make([]string, len(seq))
	for i, v := range seq {
		terms[i] = v.String()
	}
	query := strings.Join(terms, ",")

	body, err := c.fetch(ctx, query)
	if err != nil {
		log.Warnw("corpus unreachable", "error", err, "retries", c.retries)
		return MatchResult{Anum: AnumUnreachable}, nil
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return MatchResult{}, errors.Wrap(err, "decoding corpus response")
	}

	for _, res := range resp.Results {
		data, err := parseData(res.Data)
		if err != nil {
			log.Debugw("skipping malformed corpus entry",
				"anum", res.Number, "error", err)
			continue
		}
		if offset, length, ok := Resolve(seq, data); ok {
			return MatchResult{Anum: res.Number, Offset: offset, Length: length}, nil
		}
	}
	return MatchResult{Anum: AnumMissing}, nil
}

// fetch performs the HTTP request with rate limiting and bounded
// exponential backoff.
func (c *Client) fetch(ctx context.Context, query string) ([]byte, error) {
	u := fmt.Sprintf("%s?q=%s&fmt=json&n=%d",
		c.endpoint, url.QueryEscape(query), c.maxResults)

	backoff := c.backoff
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.get(ctx, u)
		if err == nil {
			return body, nil
		}
		lastErr = err
		log.Debugw("corpus query attempt failed",
			"attempt", attempt+1, "error", err)
	}
	return nil, errors.Wrapf(lastErr, "after %d attempts", c.retries)
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building corpus request")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "corpus request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("corpus returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
