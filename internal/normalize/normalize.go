// Package normalize turns user input into a bare video identifier.
package normalize

import "strings"

// prefixes are tried in order; the first one found wins.
var prefixes = []string{
	"https://www.youtube.com/watch?v=",
	"https://youtu.be/",
	"www.youtube.com/watch?v=",
	"youtu.be/",
}

// Clean trims the input and, when it contains a known video URL prefix,
// removes the first occurrence of that prefix and drops everything from
// the first '&' onwards. Input without a known prefix is returned trimmed.
func Clean(raw string) string {
	cleaned := strings.TrimSpace(raw)

	for _, prefix := range prefixes {
		if !strings.Contains(cleaned, prefix) {
			continue
		}

		cleaned = strings.Replace(cleaned, prefix, "", 1)
		if idx := strings.IndexByte(cleaned, '&'); idx != -1 {
			cleaned = cleaned[:idx]
		}
		break
	}

	return cleaned
}

// VideoID cleans raw and keeps only the part that names a page: anything
// from the first '?' or '#' is a query or fragment and is dropped.
func VideoID(raw string) string {
	id := Clean(raw)
	if idx := strings.IndexAny(id, "?#"); idx != -1 {
		id = id[:idx]
	}
	return id
}
