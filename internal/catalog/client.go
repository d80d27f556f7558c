package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Feed client defaults.
const (
	// DefaultEndpoint is the public product feed used when none is configured.
	DefaultEndpoint = "https://fakestoreapi.com/products"

	// DefaultTimeout bounds a single feed request.
	DefaultTimeout = 10 * time.Second

	// DefaultSnapshotTTL is how long a fetched dataset is reused before the
	// next Products call refetches. Zero disables memoization.
	DefaultSnapshotTTL = 5 * time.Minute

	// maxFeedBodyBytes caps the response body read to guard against a
	// misbehaving endpoint streaming unbounded data.
	maxFeedBodyBytes = 8 << 20
)

// ErrFeedUnavailable is the single error kind surfaced for any feed failure:
// transport error, non-2xx status, or malformed JSON. Callers present a static
// user-facing message; the wrapped detail is for logs only.
var ErrFeedUnavailable = errors.New("product feed unavailable")

// Client fetches the product catalog from a remote JSON endpoint.
//
// The endpoint returns the entire dataset as a flat JSON array with no
// pagination parameters, so the client memoizes the decoded snapshot in
// memory (never on disk) and serves subsequent calls from it until the TTL
// lapses or Invalidate is called. Safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	ttl        time.Duration
	logger     zerolog.Logger

	mu        sync.Mutex
	snapshot  []Product
	fetchedAt time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests inject
// httptest-backed clients through this).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithSnapshotTTL sets how long a fetched dataset is reused. Zero or negative
// disables memoization entirely.
func WithSnapshotTTL(ttl time.Duration) ClientOption {
	return func(c *Client) { c.ttl = ttl }
}

// WithLogger attaches a logger for fetch diagnostics.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a feed client for the given endpoint. An empty endpoint
// falls back to DefaultEndpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		ttl:        DefaultSnapshotTTL,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured feed URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Products returns the full dataset, serving from the in-memory snapshot when
// it is still fresh. On failure the previous snapshot is left untouched so a
// later call can still serve it.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	c.mu.Lock()
	if c.snapshot != nil && c.ttl > 0 && time.Since(c.fetchedAt) < c.ttl {
		cached := make([]Product, len(c.snapshot))
		copy(cached, c.snapshot)
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	products, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("endpoint", c.endpoint).Msg("feed fetch failed")
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = products
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	c.logger.Debug().Int("products", len(products)).Str("endpoint", c.endpoint).Msg("feed snapshot updated")

	result := make([]Product, len(products))
	copy(result, products)
	return result, nil
}

// Invalidate drops the memoized snapshot so the next Products call hits the
// network. Implements Invalidator.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// fetch performs a single GET against the feed endpoint and decodes the
// response. Every failure path wraps ErrFeedUnavailable.
func (c *Client) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrFeedUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFeedUnavailable, resp.Status)
	}

	body := io.LimitReader(resp.Body, maxFeedBodyBytes)

	var products []Product
	if decodeErr := json.NewDecoder(body).Decode(&products); decodeErr != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrFeedUnavailable, decodeErr)
	}

	return products, nil
}
