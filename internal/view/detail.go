package view

import (
	"bytes"
	"encoding/json"

	"ytlookup/pkg/models"
)

// MaxTags is the number of tag chips shown before collapsing the rest
const MaxTags = 10

// Counter is one labelled statistic
type Counter struct {
	Label string
	Value string
}

// Detail is everything a renderer needs for the current state
type Detail struct {
	ID      string
	Phase   Phase
	Loading bool
	Error   string

	Title        string
	ChannelTitle string
	ChannelURL   string
	WatchURL     string
	Published    string
	Duration     string
	Thumbnail    models.Thumbnail
	HasThumbnail bool
	Counters     []Counter
	Description  []Segment
	Tags         []string
	MoreTags     int

	ShowRaw bool
	Raw     string
	Dark    bool
}

// TagChips caps tags at limit and returns how many were left out
func TagChips(tags []string, limit int) ([]string, int) {
	if len(tags) <= limit {
		return tags, 0
	}
	return tags[:limit], len(tags) - limit
}

// BuildDetail derives display fields from the state. Metadata fields are
// only filled in the success phase.
func BuildDetail(s *State, f *Formatter) Detail {
	d := Detail{
		ID:      s.ID(),
		Phase:   s.Phase(),
		Loading: s.Loading(),
		Error:   s.Err(),
		ShowRaw: s.ShowRaw(),
		Dark:    s.Dark(),
	}

	video, ok := s.Video()
	if !ok {
		return d
	}

	snippet := video.Snippet
	d.Title = snippet.Title
	d.ChannelTitle = snippet.ChannelTitle
	if snippet.ChannelID != "" {
		d.ChannelURL = "https://www.youtube.com/channel/" + snippet.ChannelID
	}
	if video.ID != "" {
		d.WatchURL = "https://www.youtube.com/watch?v=" + video.ID
	}
	if snippet.PublishedAt != "" {
		d.Published = f.Date(snippet.PublishedAt)
	}
	if video.ContentDetails.Duration != "" {
		d.Duration = f.Duration(video.ContentDetails.Duration)
	}
	d.Thumbnail, d.HasThumbnail = snippet.Thumbnails.Best()
	d.Counters = counters(video.Statistics, f)
	d.Description = Linkify(snippet.Description)
	d.Tags, d.MoreTags = TagChips(snippet.Tags, MaxTags)

	if d.ShowRaw {
		d.Raw = indentJSON(s.Raw())
	}

	return d
}

func counters(stats models.Statistics, f *Formatter) []Counter {
	var out []Counter
	for _, c := range []Counter{
		{Label: "views", Value: stats.ViewCount},
		{Label: "likes", Value: stats.LikeCount},
		{Label: "comments", Value: stats.CommentCount},
	} {
		if c.Value == "" {
			continue
		}
		out = append(out, Counter{Label: c.Label, Value: f.Count(c.Value)})
	}
	return out
}

func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Success reports whether metadata fields are populated
func (d Detail) Success() bool {
	return d.Phase == PhaseSuccess
}
