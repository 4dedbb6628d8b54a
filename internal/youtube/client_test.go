package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	require.NotNil(t, client)
	assert.Equal(t, defaultBaseURL, client.baseURL)
}

func TestFetchVideo(t *testing.T) {
	const payload = `{"kind":"youtube#videoListResponse","items":[{"id":"abc123"}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "snippet,contentDetails,statistics", r.URL.Query().Get("part"))
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))

	body, err := client.FetchVideo(context.Background(), "abc123", "secret")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(body))
}

func TestFetchVideoEscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a&b=c", r.URL.Query().Get("id"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.FetchVideo(context.Background(), "a&b=c", "secret")
	require.NoError(t, err)
}

func TestFetchVideoStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"forbidden", http.StatusForbidden},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error":{"code":403}}`))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL))

			_, err := client.FetchVideo(context.Background(), "abc123", "secret")
			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestFetchVideoTransportError(t *testing.T) {
	client := NewClient(WithHTTPClient(failingClient{}))

	_, err := client.FetchVideo(context.Background(), "abc123", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetchVideoValidatesArguments(t *testing.T) {
	client := NewClient(WithHTTPClient(failingClient{}))

	_, err := client.FetchVideo(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = client.FetchVideo(context.Background(), "abc123", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
