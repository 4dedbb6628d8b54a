// Package proxy forwards video lookups to the YouTube Data API on behalf
// of clients that never see the API key.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/time/rate"

	"ytlookup/internal/cache"
	"ytlookup/internal/youtube"
)

var errInvalidJSON = errors.New("upstream returned invalid JSON")

// Fetcher retrieves the raw videos.list body for one ID
type Fetcher interface {
	FetchVideo(ctx context.Context, id, apiKey string) ([]byte, error)
}

// KeyFunc resolves the API key at request time
type KeyFunc func() string

// EnvKey reads the API key from the named environment variable on every call
func EnvKey(name string) KeyFunc {
	return LookupKey(name, os.LookupEnv)
}

// LookupKey resolves the named variable through lookup on every call
func LookupKey(name string, lookup func(string) (string, bool)) KeyFunc {
	return func() string {
		v, _ := lookup(name)
		return v
	}
}

// Option configures the Service
type Option func(*Service)

// WithCache serves repeated lookups from the given cache
func WithCache(c *cache.Manager) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithRateLimit bounds upstream calls to rps requests per second.
// A non-positive rps leaves upstream calls unbounded.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Service) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// Service performs lookups against the upstream API
type Service struct {
	fetcher Fetcher
	key     KeyFunc
	cache   *cache.Manager
	limiter *rate.Limiter
}

// NewService creates a lookup service
func NewService(fetcher Fetcher, key KeyFunc, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		key:     key,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Lookup returns the upstream JSON for id, or an *Error describing which
// status the caller should answer with.
func (s *Service) Lookup(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, missingParam()
	}

	if s.cache != nil {
		if body, err := s.cache.Get(id); err == nil {
			return body, nil
		}
	}

	apiKey := ""
	if s.key != nil {
		apiKey = s.key()
	}
	if apiKey == "" {
		return nil, internal(youtube.ErrNoAPIKey)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, internal(fmt.Errorf("rate limiter: %w", err))
		}
	}

	body, err := s.fetcher.FetchVideo(ctx, id, apiKey)
	if err != nil {
		var statusErr *youtube.StatusError
		if errors.As(err, &statusErr) {
			return nil, upstream(statusErr.StatusCode, err)
		}
		return nil, internal(err)
	}

	if !json.Valid(body) {
		return nil, internal(errInvalidJSON)
	}

	if s.cache != nil {
		if err := s.cache.Put(id, body); err != nil {
			slog.Warn("proxy: failed to cache response", slog.String("videoID", id), slog.Any("error", err))
		}
	}

	return body, nil
}
