package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"ytlookup/internal/view"
)

const maxRuleWidth = 72

// palette holds the colors of one theme
type palette struct {
	accent string
	muted  string
	link   string
	err    string
}

var (
	lightPalette = palette{accent: "#0d9488", muted: "#6b7280", link: "#2563eb", err: "#dc2626"}
	darkPalette  = palette{accent: "#5eead4", muted: "#9ca3af", link: "#93c5fd", err: "#f87171"}
)

type styles struct {
	profile termenv.Profile
	colors  palette
}

func newStyles(profile termenv.Profile, dark bool) styles {
	colors := lightPalette
	if dark {
		colors = darkPalette
	}
	return styles{profile: profile, colors: colors}
}

func (s styles) title(text string) string {
	return s.profile.String(text).Bold().Foreground(s.profile.Color(s.colors.accent)).String()
}

func (s styles) muted(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color(s.colors.muted)).String()
}

func (s styles) link(text string) string {
	return s.profile.String(text).Underline().Foreground(s.profile.Color(s.colors.link)).String()
}

func (s styles) err(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color(s.colors.err)).String()
}

func (m *Model) View() string {
	st := newStyles(m.profile, m.state.Dark())
	d := view.BuildDetail(m.state, m.formatter)

	var b strings.Builder

	theme := "light"
	if d.Dark {
		theme = "dark"
	}
	fmt.Fprintf(&b, "%s %s\n", st.title("ytlookup"), st.muted("["+theme+"]"))

	if m.editing {
		fmt.Fprintf(&b, "Video ID or URL: %s_\n", string(m.input))
	} else if d.ID != "" {
		fmt.Fprintf(&b, "Video ID: %s\n", d.ID)
	}
	b.WriteString(m.rule())

	switch {
	case d.Loading:
		b.WriteString("Loading...\n")
	case d.Error != "":
		b.WriteString(st.err("Error: "+d.Error) + "\n")
	case d.Success():
		writeDetail(&b, st, d)
	}

	if d.Success() && d.ShowRaw {
		b.WriteString(m.rule())
		b.WriteString(d.Raw)
		b.WriteString("\n")
	}

	b.WriteString(m.rule())
	b.WriteString(st.muted(m.help()) + "\n")

	return b.String()
}

func writeDetail(b *strings.Builder, st styles, d view.Detail) {
	b.WriteString(st.title(d.Title) + "\n")

	meta := []string{d.ChannelTitle}
	if d.Published != "" {
		meta = append(meta, d.Published)
	}
	if d.Duration != "" {
		meta = append(meta, d.Duration)
	}
	b.WriteString(st.muted(strings.Join(meta, " · ")) + "\n")

	if len(d.Counters) > 0 {
		parts := make([]string, 0, len(d.Counters))
		for _, c := range d.Counters {
			parts = append(parts, c.Value+" "+c.Label)
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}

	if d.WatchURL != "" {
		b.WriteString("Watch: " + st.link(d.WatchURL) + "\n")
	}
	if d.HasThumbnail {
		b.WriteString("Thumbnail: " + st.link(d.Thumbnail.URL) + "\n")
	}

	if len(d.Description) > 0 {
		b.WriteString("\n")
		for _, seg := range d.Description {
			if seg.IsLink() {
				b.WriteString(st.link(seg.Text))
			} else {
				b.WriteString(seg.Text)
			}
		}
		b.WriteString("\n")
	}

	if len(d.Tags) > 0 {
		chips := make([]string, 0, len(d.Tags)+1)
		for _, tag := range d.Tags {
			chips = append(chips, "#"+tag)
		}
		if d.MoreTags > 0 {
			chips = append(chips, fmt.Sprintf("+%d more", d.MoreTags))
		}
		b.WriteString("\n" + st.muted(strings.Join(chips, " ")) + "\n")
	}
}

func (m *Model) rule() string {
	width := maxRuleWidth
	if m.width > 0 {
		width = min(m.width, maxRuleWidth)
	}
	return strings.Repeat("-", width) + "\n"
}

func (m *Model) help() string {
	if m.editing {
		return "enter fetch · esc cancel · ctrl+c quit"
	}
	raw := "r show raw"
	if m.state.ShowRaw() {
		raw = "r hide raw"
	}
	return "/ new id · " + raw + " · d theme · R reload · q quit"
}
