package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short URL", "https://youtu.be/abc123", "abc123"},
		{"watch URL with params", "https://www.youtube.com/watch?v=abc123&t=30s", "abc123"},
		{"padded bare ID", "  abc123  ", "abc123"},
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL without scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short URL without scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL without params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"multiple params", "https://www.youtube.com/watch?v=abc&list=PL1&index=2", "abc"},
		{"short URL keeps query without ampersand", "https://youtu.be/abc?t=5", "abc?t=5"},
		{"unknown host passes through", "https://example.com/watch?v=abc&x=1", "https://example.com/watch?v=abc&x=1"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanAppliesOnlyFirstPattern(t *testing.T) {
	// The full form matches first, the shortened one left inside is not stripped.
	got := Clean("https://www.youtube.com/watch?v=youtu.be/abc")
	assert.Equal(t, "youtu.be/abc", got)
}

func TestCleanStripsPrefixAnywhere(t *testing.T) {
	got := Clean("link: https://youtu.be/abc123&feature=share")
	assert.Equal(t, "link: abc123", got)
}

func TestCleanIsIdempotentOnBareIDs(t *testing.T) {
	for _, id := range []string{"abc123", "dQw4w9WgXcQ", "a-b_c"} {
		assert.Equal(t, id, Clean(Clean(id)))
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"share link with si", "https://youtu.be/dQw4w9WgXcQ?si=AbCdEf", "dQw4w9WgXcQ"},
		{"short link with time", "youtu.be/abc?t=5", "abc"},
		{"fragment", "abc123#t=30", "abc123"},
		{"watch URL", "https://www.youtube.com/watch?v=abc123&t=10s", "abc123"},
		{"bare id", "abc123", "abc123"},
		{"only a query", "?si=x", ""},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VideoID(tt.input))
		})
	}
}
