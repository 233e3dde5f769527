// Package api is the REST client for the hosted decision service. It covers
// rule solving (solve, bulk-solve, parallel-solve), flow execution, asset
// management (rules, folders, usage), dynamic values, and user groups.
//
// Every call takes a context and returns a typed error for non-2xx
// responses: *BadRequestError for 400, *InternalServerError for 500, and
// *APIError for everything else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client is the entry point. Construct with New; the zero value is unusable.
// Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	Rules  *RulesClient
	Flows  *FlowsClient
	Assets *AssetsClient
	Values *ValuesClient
	Users  *UsersClient
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to add a custom
// transport or test doubles.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout (default 60s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger enables request logging. By default the client is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given workspace base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Rules = &RulesClient{client: c}
	c.Flows = &FlowsClient{client: c}
	c.Assets = &AssetsClient{client: c}
	c.Values = &ValuesClient{client: c}
	c.Users = &UsersClient{client: c}
	return c
}

// BaseURL returns the workspace base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// do executes one API request. body is JSON-encoded when non-nil; a 2xx
// response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}
	c.logger.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
		}
		return nil
	}

	// Error bodies are JSON when the service produced them itself; anything
	// else (proxies, HTML error pages) is kept as the raw string.
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		parsed = string(data)
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &BadRequestError{APIError{StatusCode: resp.StatusCode, Body: parsed}}
	case http.StatusInternalServerError:
		return &InternalServerError{APIError{StatusCode: resp.StatusCode, Body: parsed}}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: parsed}
	}
}
