package proxy

import (
	"fmt"
	"net/http"
)

// Kind classifies a failed lookup
type Kind int

const (
	KindMissingParam Kind = iota
	KindUpstream
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindMissingParam:
		return "missing-param"
	case KindUpstream:
		return "upstream"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Messages sent to clients in the error body
const (
	MsgMissingParam = "Missing or invalid videoID parameter"
	MsgUpstream     = "Failed to fetch from YouTube API"
	MsgInternal     = "Internal server error"
)

// Error is a lookup failure carrying the HTTP status to answer with
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text safe to show to end users
func (e *Error) UserMessage() string {
	return e.Message
}

func missingParam() *Error {
	return &Error{Kind: KindMissingParam, StatusCode: http.StatusBadRequest, Message: MsgMissingParam}
}

func upstream(status int, err error) *Error {
	return &Error{Kind: KindUpstream, StatusCode: status, Message: MsgUpstream, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, StatusCode: http.StatusInternalServerError, Message: MsgInternal, Err: err}
}
