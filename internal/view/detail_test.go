package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytlookup/pkg/models"
)

func successState(t *testing.T, payload string) *State {
	t.Helper()
	s := NewState(false)
	gen, _ := s.Begin("abc123")
	require.True(t, s.Resolve(gen, []byte(payload)))
	require.Equal(t, PhaseSuccess, s.Phase())
	return s
}

func TestBuildDetailSuccess(t *testing.T) {
	s := successState(t, samplePayload)

	d := BuildDetail(s, NewFormatter("en"))
	assert.True(t, d.Success())
	assert.Equal(t, "Sample Video", d.Title)
	assert.Equal(t, "Sample Channel", d.ChannelTitle)
	assert.Equal(t, "https://www.youtube.com/channel/UC123", d.ChannelURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", d.WatchURL)
	assert.Equal(t, "Mar 5, 2024", d.Published)
	assert.Equal(t, "4:13", d.Duration)

	require.True(t, d.HasThumbnail)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", d.Thumbnail.URL)

	assert.Equal(t, []Counter{
		{Label: "views", Value: "1,234,567"},
		{Label: "likes", Value: "8,910"},
		{Label: "comments", Value: "42"},
	}, d.Counters)

	require.Len(t, d.Description, 3)
	assert.Equal(t, []string{"one", "two", "three"}, d.Tags)
	assert.Zero(t, d.MoreTags)
	assert.Empty(t, d.Raw, "raw JSON hidden by default")
}

func TestBuildDetailRaw(t *testing.T) {
	s := successState(t, `{"items":[{"id":"abc123","snippet":{"title":"T"}}]}`)
	s.ToggleRaw()

	d := BuildDetail(s, NewFormatter("en"))
	assert.True(t, d.ShowRaw)
	assert.Contains(t, d.Raw, "\n  \"items\": [")
}

func TestBuildDetailNonSuccess(t *testing.T) {
	s := NewState(true)
	s.Begin("abc123")

	d := BuildDetail(s, NewFormatter("en"))
	assert.True(t, d.Loading)
	assert.True(t, d.Dark)
	assert.Empty(t, d.Title)
	assert.Empty(t, d.Counters)

	s.Fail(s.Generation(), fmt.Errorf("boom"))
	d = BuildDetail(s, NewFormatter("en"))
	assert.False(t, d.Loading)
	assert.Equal(t, "Failed to fetch video data", d.Error)
	assert.False(t, d.Success())
}

func TestBuildDetailMissingStatistics(t *testing.T) {
	s := successState(t, `{"items":[{"id":"abc123","snippet":{"title":"T"},"statistics":{"viewCount":"10"}}]}`)

	d := BuildDetail(s, NewFormatter("en"))
	assert.Equal(t, []Counter{{Label: "views", Value: "10"}}, d.Counters)
	assert.False(t, d.HasThumbnail)
	assert.Empty(t, d.Published)
}

func TestTagChips(t *testing.T) {
	tags := make([]string, 13)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag%d", i)
	}

	shown, more := TagChips(tags, MaxTags)
	assert.Len(t, shown, 10)
	assert.Equal(t, "tag9", shown[9])
	assert.Equal(t, 3, more)

	shown, more = TagChips(tags[:10], MaxTags)
	assert.Len(t, shown, 10)
	assert.Zero(t, more)

	shown, more = TagChips(nil, MaxTags)
	assert.Empty(t, shown)
	assert.Zero(t, more)
}

func TestThumbnailFallback(t *testing.T) {
	thumb := func(name string) *models.Thumbnail {
		return &models.Thumbnail{URL: "https://i.ytimg.com/" + name + ".jpg"}
	}

	tests := []struct {
		name   string
		thumbs models.Thumbnails
		want   string
		wantOK bool
	}{
		{"maxres preferred", models.Thumbnails{Default: thumb("default"), High: thumb("high"), Maxres: thumb("maxres")}, "https://i.ytimg.com/maxres.jpg", true},
		{"high before medium", models.Thumbnails{Default: thumb("default"), Medium: thumb("medium"), High: thumb("high")}, "https://i.ytimg.com/high.jpg", true},
		{"medium before default", models.Thumbnails{Default: thumb("default"), Medium: thumb("medium")}, "https://i.ytimg.com/medium.jpg", true},
		{"default only", models.Thumbnails{Default: thumb("default")}, "https://i.ytimg.com/default.jpg", true},
		{"standard is not a fallback", models.Thumbnails{Standard: thumb("standard")}, "", false},
		{"empty URL skipped", models.Thumbnails{Maxres: &models.Thumbnail{}, Default: thumb("default")}, "https://i.ytimg.com/default.jpg", true},
		{"none", models.Thumbnails{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.thumbs.Best()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.URL)
		})
	}
}
