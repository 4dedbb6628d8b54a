package proxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/youtube", r.URL.Path)
		assert.Equal(t, "abc 123", r.URL.Query().Get("videoID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", nil)

	body, err := client.Fetch(context.Background(), "abc 123")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(body))
}

func TestClientFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"Missing or invalid videoID parameter"}`, KindMissingParam, MsgMissingParam},
		{"upstream forbidden", http.StatusForbidden, `{"error":"Failed to fetch from YouTube API"}`, KindUpstream, MsgUpstream},
		{"upstream server error", http.StatusInternalServerError, `{"error":"Failed to fetch from YouTube API"}`, KindUpstream, MsgUpstream},
		{"internal", http.StatusInternalServerError, `{"error":"Internal server error"}`, KindInternal, MsgInternal},
		{"non-JSON body", http.StatusBadGateway, `bad gateway`, KindUpstream, MsgUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client())

			_, err := client.Fetch(context.Background(), "abc123")

			var lookupErr *Error
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, tt.wantKind, lookupErr.Kind)
			assert.Equal(t, tt.status, lookupErr.StatusCode)
			assert.Equal(t, tt.wantMsg, lookupErr.UserMessage())
		})
	}
}

func TestClientFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, nil)

	_, err := client.Fetch(context.Background(), "abc123")

	var lookupErr *Error
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, KindInternal, lookupErr.Kind)
}
