package view

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// Formatter renders counters and dates for one locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter creates a formatter for a BCP 47 locale. Unknown or empty
// locales fall back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		tag = language.English
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Locale returns the resolved locale tag
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Count groups the digits of a decimal counter string ("1234567" becomes
// "1,234,567" in English). Values that are not integers are returned as is.
func (f *Formatter) Count(value string) string {
	value = strings.TrimSpace(value)
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	return f.printer.Sprintf("%d", n)
}

// Date formats an RFC 3339 timestamp as a calendar date
func (f *Formatter) Date(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format("Jan 2, 2006")
}

// Duration turns an ISO 8601 duration such as PT1H2M3S into 1:02:03
func (f *Formatter) Duration(value string) string {
	m := isoDuration.FindStringSubmatch(value)
	if m == nil || value == "P" {
		return value
	}

	part := func(i int) int {
		if m[i] == "" {
			return 0
		}
		n, _ := strconv.Atoi(m[i])
		return n
	}

	hours := part(1)*24 + part(2)
	minutes := part(3)
	seconds := part(4)

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
