// Package youtube talks to the YouTube Data API v3 videos endpoint.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://youtube.googleapis.com"
	videoParts     = "snippet,contentDetails,statistics"
	maxBodySize    = 8 << 20
)

var (
	ErrEmptyID  = errors.New("video ID is empty")
	ErrNoAPIKey = errors.New("API key is not configured")
)

// StatusError is returned when the API answers with a non-OK status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("videos request failed: status %d", e.StatusCode)
}

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout replaces the HTTP client with one using the given timeout.
// Zero leaves the transport defaults in place.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// Client fetches raw video resources.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a client pointed at the public API.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchVideo requests snippet, contentDetails and statistics for one video
// and returns the undecoded response body.
func (c *Client) FetchVideo(ctx context.Context, id, apiKey string) ([]byte, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := url.Values{}
	query.Set("part", videoParts)
	query.Set("id", id)
	query.Set("key", apiKey)
	endpoint := fmt.Sprintf("%s/youtube/v3/videos?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
