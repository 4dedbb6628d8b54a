// Package view holds the presentation state of the video detail view and
// the pure derivations used to render it.
package view

import (
	"encoding/json"
	"errors"
	"fmt"

	"ytlookup/pkg/models"
)

// Phase is the fetch lifecycle of the view
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	msgNoID        = "No video ID given"
	msgFetchFailed = "Failed to fetch video data"
	msgBadPayload  = "Failed to read video data"
)

// Generation identifies one fetch. Only results tagged with the latest
// generation are applied.
type Generation uint64

// userMessager is implemented by errors that carry text fit for display
type userMessager interface {
	UserMessage() string
}

// State is the per-view UI state. It is not safe for concurrent use; the
// owner serializes access (one request, or one event loop).
type State struct {
	id      string
	gen     Generation
	phase   Phase
	errMsg  string
	data    *models.VideoListResponse
	raw     []byte
	showRaw bool
	dark    bool
}

// NewState creates an idle state with the given display theme
func NewState(dark bool) *State {
	return &State{dark: dark}
}

// Begin starts tracking a fetch for id and returns its generation. Any
// earlier in-flight fetch is superseded. It returns false when id is empty,
// in which case the state moves to error and no fetch should be issued.
func (s *State) Begin(id string) (Generation, bool) {
	s.gen++
	s.id = id
	s.data = nil
	s.raw = nil

	if id == "" {
		s.phase = PhaseError
		s.errMsg = msgNoID
		return s.gen, false
	}

	s.phase = PhaseLoading
	s.errMsg = ""
	return s.gen, true
}

// Resolve applies a successful response body. It reports whether gen was
// current; stale results are dropped.
func (s *State) Resolve(gen Generation, raw []byte) bool {
	if gen != s.gen || s.phase != PhaseLoading {
		return false
	}

	var decoded models.VideoListResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.setError(msgBadPayload)
		return true
	}
	if len(decoded.Items) == 0 {
		s.setError(fmt.Sprintf("No video found for ID %q", s.id))
		return true
	}

	s.phase = PhaseSuccess
	s.errMsg = ""
	s.data = &decoded
	s.raw = raw
	return true
}

// Fail applies a failed fetch. It reports whether gen was current.
func (s *State) Fail(gen Generation, err error) bool {
	if gen != s.gen || s.phase != PhaseLoading {
		return false
	}

	msg := msgFetchFailed
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		msg = um.UserMessage()
	}
	s.setError(msg)
	return true
}

func (s *State) setError(msg string) {
	s.phase = PhaseError
	s.errMsg = msg
	s.data = nil
	s.raw = nil
}

// ToggleRaw flips raw manifest visibility and returns the new value
func (s *State) ToggleRaw() bool {
	s.showRaw = !s.showRaw
	return s.showRaw
}

// ToggleDark flips the display theme and returns the new value
func (s *State) ToggleDark() bool {
	s.dark = !s.dark
	return s.dark
}

// SetShowRaw sets raw manifest visibility
func (s *State) SetShowRaw(show bool) { s.showRaw = show }

func (s *State) ID() string             { return s.id }
func (s *State) Generation() Generation { return s.gen }
func (s *State) Phase() Phase           { return s.phase }
func (s *State) Loading() bool          { return s.phase == PhaseLoading }
func (s *State) Err() string            { return s.errMsg }
func (s *State) Raw() []byte            { return s.raw }
func (s *State) ShowRaw() bool          { return s.showRaw }
func (s *State) Dark() bool             { return s.dark }

// Data returns the decoded response of a successful fetch
func (s *State) Data() *models.VideoListResponse {
	return s.data
}

// Video returns the first item of a successful response
func (s *State) Video() (models.Video, bool) {
	if s.phase != PhaseSuccess || s.data == nil || len(s.data.Items) == 0 {
		return models.Video{}, false
	}
	return s.data.Items[0], true
}
