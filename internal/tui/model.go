// Package tui is a terminal viewer for video metadata served by the
// /api/youtube endpoint.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"ytlookup/internal/normalize"
	"ytlookup/internal/view"
)

const defaultFetchTimeout = 20 * time.Second

// Fetcher returns the raw metadata JSON for a video ID
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// fetchedMsg carries a completed fetch back into the event loop
type fetchedMsg struct {
	gen  view.Generation
	body []byte
	err  error
}

// Model is the Bubble Tea model of the viewer
type Model struct {
	fetcher   Fetcher
	formatter *view.Formatter
	profile   termenv.Profile
	timeout   time.Duration
	state     *view.State
	initial   string
	editing   bool
	input     []rune
	width     int
}

// Option configures the Model
type Option func(*Model)

// WithProfile sets the terminal color profile used for styling
func WithProfile(p termenv.Profile) Option {
	return func(m *Model) {
		m.profile = p
	}
}

// WithDark starts the viewer with the dark palette
func WithDark(dark bool) Option {
	return func(m *Model) {
		m.state = view.NewState(dark)
	}
}

// WithInitialID fetches the given ID or URL on start
func WithInitialID(raw string) Option {
	return func(m *Model) {
		m.initial = raw
	}
}

// WithTimeout bounds each fetch
func WithTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// New creates a viewer model
func New(fetcher Fetcher, formatter *view.Formatter, opts ...Option) *Model {
	m := &Model{
		fetcher:   fetcher,
		formatter: formatter,
		profile:   termenv.EnvColorProfile(),
		timeout:   defaultFetchTimeout,
		state:     view.NewState(false),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run starts the Bubble Tea program and blocks until it exits
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// State exposes the view state
func (m *Model) State() *view.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	if normalize.VideoID(m.initial) == "" {
		m.editing = true
		return nil
	}
	return m.load(m.initial)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.err != nil {
			m.state.Fail(msg.gen, msg.err)
		} else {
			m.state.Resolve(msg.gen, msg.body)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.state.ToggleRaw()
		case "d":
			m.state.ToggleDark()
		case "R":
			if m.state.ID() != "" {
				return m, m.load(m.state.ID())
			}
		case "/":
			m.editing = true
			m.input = m.input[:0]
		}
	}

	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.editing = false
		raw := string(m.input)
		m.input = m.input[:0]
		return m, m.load(raw)
	case tea.KeyEsc:
		m.editing = false
		m.input = m.input[:0]
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

// load starts a fetch for the normalized input. The returned command
// reports back with the generation it was started under.
func (m *Model) load(raw string) tea.Cmd {
	id := normalize.VideoID(raw)
	gen, ok := m.state.Begin(id)
	if !ok {
		return nil
	}

	fetcher, timeout := m.fetcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		body, err := fetcher.Fetch(ctx, id)
		return fetchedMsg{gen: gen, body: body, err: err}
	}
}
