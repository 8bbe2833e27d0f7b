package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Searcher defines the interface for fetching search results.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Fetch(ctx context.Context, uri string) (*Response, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

const (
	defaultUserAgent = "artgrid/0.1"
	maxBodyBytes     = 16 << 20
)

// ClientOptions configure a Client.
type ClientOptions struct {
	UserAgent         string
	RequestsPerMinute int               // zero disables pacing
	Transport         http.RoundTripper // nil uses http.DefaultTransport
}

// Client talks to the iTunes Search API.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client. Requests carry no timeout of their own; the
// caller's context is the only deadline.
func NewClient(opts ClientOptions) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		http: &http.Client{
			Transport: &userAgentTransport{RoundTripper: base, userAgent: userAgent},
		},
	}
	if opts.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}
	return c
}

// Fetch performs one GET against uri and decodes the search response.
//
// Failures are classified as *TransportError, *HTTPStatusError or
// *MalformedResponseError. Nothing is retried.
func (c *Client) Fetch(ctx context.Context, uri string) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{URI: uri, Err: fmt.Errorf("wait for rate limiter: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &TransportError{URI: uri, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URI: uri, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{URI: uri, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{URI: uri, Err: fmt.Errorf("read body: %w", err)}
	}
	payload, err := decodeResponse(body)
	if err != nil {
		return nil, &MalformedResponseError{URI: uri, Err: err}
	}
	return payload, nil
}

func decodeResponse(body []byte) (*Response, error) {
	var raw struct {
		ResultCount *int      `json:"resultCount"`
		Results     *[]Result `json:"results"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw.Results == nil {
		return nil, errors.New("missing results array")
	}
	payload := &Response{Results: *raw.Results}
	if raw.ResultCount != nil {
		payload.ResultCount = *raw.ResultCount
	} else {
		payload.ResultCount = len(payload.Results)
	}
	return payload, nil
}

// userAgentTransport adds the User-Agent header to every request.
type userAgentTransport struct {
	http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.RoundTripper.RoundTrip(cloned)
}
