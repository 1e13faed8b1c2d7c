// Package doiorg resolves DOIs into citation-style JSON metadata via
// doi.org content negotiation.
package doiorg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DOI resolver base URL.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps the client inside the resolver's polite-pool rate.
	RateLimit = 2.0

	// citeprocType requests a citation-style JSON representation.
	citeprocType = "application/vnd.citationstyles.csl+json"
)

// Client is a rate-limited HTTP client for DOI metadata lookups.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailto identifies the operator to the resolver's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithRateLimit overrides the default requests-per-second limit.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient creates a DOI metadata lookup client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve performs one synchronous lookup for a DOI. A non-success
// response, a transport failure, or an undecodable body all yield nil
// metadata with a nil error: a failed lookup degrades output quality,
// it never fails the citation. Only context cancellation is returned.
func (c *Client) Resolve(ctx context.Context, doi string) (Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	lookupURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(doi))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building lookup request: %w", err)
	}
	req.Header.Set("Accept", citeprocType)
	if c.mailto != "" {
		req.Header.Set("User-Agent", fmt.Sprintf("issuekit (mailto:%s)", c.mailto))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, nil
	}
	return meta, nil
}
