package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"ytlookup/internal/proxy"
	"ytlookup/pkg/models"
)

// handleHealth handles health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// handleYouTube forwards a videoID to the upstream API and relays the
// JSON body, or an error body with the matching status
func (s *Server) handleYouTube(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["videoID"]
	if !ok || len(values) != 1 || values[0] == "" {
		writeError(w, http.StatusBadRequest, proxy.MsgMissingParam)
		return
	}
	videoID := values[0]

	body, err := s.lookup.Lookup(r.Context(), videoID)
	if err != nil {
		status, msg := http.StatusInternalServerError, proxy.MsgInternal
		var lookupErr *proxy.Error
		if errors.As(err, &lookupErr) {
			status, msg = lookupErr.StatusCode, lookupErr.Message
		}

		slog.Error("video lookup failed",
			slog.String("videoID", videoID),
			slog.Int("status", status),
			slog.String("requestID", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		writeError(w, status, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorBody{Error: msg})
}
