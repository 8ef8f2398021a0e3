package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.apollo.io/v1"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "apollo-mcp/1.0.0"

	maxErrorBody = 64 << 10
)

var emptyObject = json.RawMessage(`{}`)

// NewClient instantiates an Apollo API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("apollo: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the normalized API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchOrganizations queries the company search endpoint
func (c *Client) SearchOrganizations(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	return c.Post(ctx, PathOrganizationSearch, args)
}

// SearchPeople queries the people search endpoint
func (c *Client) SearchPeople(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	return c.Post(ctx, PathPeopleSearch, args)
}

// MatchPerson enriches a single person by email or id
func (c *Client) MatchPerson(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	return c.Post(ctx, PathPeopleMatch, args)
}

// EnrichOrganization enriches a single organization by domain or id
func (c *Client) EnrichOrganization(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	return c.Post(ctx, PathOrganizationEnrich, args)
}

// Post sends body unchanged to path and returns the response payload.
// Non-JSON payloads are returned re-encoded as a JSON string.
func (c *Client) Post(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("apollo: client is nil")
	}

	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		body = emptyObject
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("apollo: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apollo: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newAPIError(resp.StatusCode, bytes.TrimSpace(errBody))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apollo: read response: %w", err)
	}

	if !json.Valid(payload) {
		quoted, err := json.Marshal(string(payload))
		if err != nil {
			return nil, fmt.Errorf("apollo: encode response: %w", err)
		}
		return quoted, nil
	}

	return payload, nil
}
