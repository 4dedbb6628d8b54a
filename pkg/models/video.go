package models

// VideoListResponse is the body returned by the videos.list endpoint
type VideoListResponse struct {
	Kind     string   `json:"kind"`
	ETag     string   `json:"etag"`
	Items    []Video  `json:"items"`
	PageInfo PageInfo `json:"pageInfo"`
}

// PageInfo carries paging counters of a list response
type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// Video represents a single video resource
type Video struct {
	Kind           string         `json:"kind"`
	ETag           string         `json:"etag"`
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

// Snippet holds the descriptive part of a video
type Snippet struct {
	PublishedAt          string     `json:"publishedAt"`
	ChannelID            string     `json:"channelId"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Thumbnails           Thumbnails `json:"thumbnails"`
	ChannelTitle         string     `json:"channelTitle"`
	Tags                 []string   `json:"tags"`
	CategoryID           string     `json:"categoryId"`
	LiveBroadcastContent string     `json:"liveBroadcastContent"`
	DefaultAudioLanguage string     `json:"defaultAudioLanguage"`
}

// Thumbnails lists the renditions the API returned. Any of them may be absent.
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// Thumbnail is one image rendition
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Best returns the largest available thumbnail, trying maxres, high,
// medium and default in that order.
func (t Thumbnails) Best() (Thumbnail, bool) {
	for _, candidate := range []*Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.URL != "" {
			return *candidate, true
		}
	}
	return Thumbnail{}, false
}

// Statistics holds counters. The API encodes them as decimal strings.
type Statistics struct {
	ViewCount     string `json:"viewCount"`
	LikeCount     string `json:"likeCount"`
	FavoriteCount string `json:"favoriteCount"`
	CommentCount  string `json:"commentCount"`
}

// ContentDetails describes the media itself
type ContentDetails struct {
	Duration        string `json:"duration"`
	Dimension       string `json:"dimension"`
	Definition      string `json:"definition"`
	Caption         string `json:"caption"`
	LicensedContent bool   `json:"licensedContent"`
	Projection      string `json:"projection"`
}

// ErrorBody is the JSON shape of every proxy failure
type ErrorBody struct {
	Error string `json:"error"`
}
