package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"ytlookup/internal/cache"
	"ytlookup/internal/proxy"
)

const msgCacheDisabled = "Cache is disabled"

// handleStatus reports server and cache state
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()

	response := map[string]any{
		"running":      running,
		"version":      s.version,
		"cacheEnabled": s.cache != nil && s.cache.Enabled(),
		"cacheSize":    int64(0),
		"cacheCount":   0,
	}

	if s.cache != nil {
		response["cacheSize"] = s.cache.GetSize()
		response["cacheCount"] = len(s.cache.ListEntries())
	}

	writeJSON(w, http.StatusOK, response)
}

// handleListCache lists cached payloads, most recently used first
func (s *Server) handleListCache(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusNotFound, msgCacheDisabled)
		return
	}

	writeJSON(w, http.StatusOK, s.cache.ListEntries())
}

// handleClearCache drops every local entry
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusNotFound, msgCacheDisabled)
		return
	}

	s.cache.Clear()
	slog.Info("cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

// handleGetCacheEntry returns the metadata of one cached payload
func (s *Server) handleGetCacheEntry(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusNotFound, msgCacheDisabled)
		return
	}

	entry, err := s.cache.GetEntry(cacheEntryID(r))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// handleDeleteCacheEntry evicts one payload locally and from the shared store
func (s *Server) handleDeleteCacheEntry(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeError(w, http.StatusNotFound, msgCacheDisabled)
		return
	}

	id := cacheEntryID(r)
	if err := s.cache.DeleteEntry(id); err != nil {
		if errors.Is(err, cache.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("cache delete failed", slog.String("videoID", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, proxy.MsgInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func cacheEntryID(r *http.Request) string {
	raw := chi.URLParam(r, "videoID")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}
