package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ytlookup/pkg/models"
)

const endpointPath = "/api/youtube"

// Client calls a running proxy endpoint over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the proxy served at baseURL
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Fetch requests metadata for id. Non-OK answers become *Error values
// carrying the status and the message from the error body.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s%s?videoID=%s", c.baseURL, endpointPath, url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, internal(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, internal(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, internal(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp.StatusCode, body)
	}

	return body, nil
}

func errorFromResponse(status int, body []byte) *Error {
	var decoded models.ErrorBody
	_ = json.Unmarshal(body, &decoded)

	var e *Error
	switch {
	case status == http.StatusBadRequest:
		e = missingParam()
	case status == http.StatusInternalServerError && decoded.Error == MsgInternal:
		e = internal(nil)
	default:
		e = upstream(status, nil)
	}
	e.StatusCode = status

	if decoded.Error != "" {
		e.Message = decoded.Error
	}

	return e
}
