package view

import "regexp"

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Segment is a run of description text. Href is set for links.
type Segment struct {
	Text string
	Href string
}

// IsLink reports whether the segment renders as an anchor
func (s Segment) IsLink() bool {
	return s.Href != ""
}

// Linkify splits text into plain and link segments in input
// order. Concatenating every segment's Text yields the input.
func Linkify(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		match := text[loc[0]:loc[1]]
		segments = append(segments, Segment{Text: match, Href: match})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}

	return segments
}
