package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"ytlookup/internal/normalize"
	"ytlookup/internal/proxy"
	"ytlookup/internal/view"
)

const themeCookie = "ytlookup_theme"

// handleHome renders the search form
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	dark := s.darkFromRequest(r)
	page := view.Page{
		Dark:     dark,
		ThemeURL: themeURL(dark, r.URL.RequestURI()),
	}

	s.render(w, http.StatusOK, func() error {
		return s.renderer.Home(w, page)
	})
}

// handleSearch normalizes the query and redirects to its detail page
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := normalize.VideoID(r.URL.Query().Get("q"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, detailPath(id), http.StatusFound)
}

// handleTheme stores the theme preference and redirects back
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("name")))
	switch name {
	case "dark", "light":
		http.SetCookie(w, &http.Cookie{
			Name:     themeCookie,
			Value:    name,
			Path:     "/",
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	http.Redirect(w, r, safeReturn(r.URL.Query().Get("return")), http.StatusFound)
}

// handleDetail fetches metadata through the lookup service and renders it
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "videoID"))
	if err != nil {
		id = chi.URLParam(r, "videoID")
	}

	state := view.NewState(s.darkFromRequest(r))
	state.SetShowRaw(r.URL.Query().Get("raw") == "1")

	status := http.StatusOK
	if gen, ok := state.Begin(id); ok {
		body, err := s.lookup.Lookup(r.Context(), id)
		if err != nil {
			status = http.StatusInternalServerError
			var lookupErr *proxy.Error
			if errors.As(err, &lookupErr) {
				status = lookupErr.StatusCode
			}
			slog.Warn("detail lookup failed", slog.String("videoID", id), slog.Any("error", err))
			state.Fail(gen, err)
		} else {
			state.Resolve(gen, body)
			if state.Phase() == view.PhaseError {
				status = http.StatusNotFound
			}
		}
	}

	detail := view.BuildDetail(state, s.formatter)
	page := view.Page{
		Title:    pageTitle(detail),
		Query:    id,
		Dark:     state.Dark(),
		ThemeURL: themeURL(state.Dark(), r.URL.RequestURI()),
		RawURL:   rawToggleURL(id, state.ShowRaw()),
		Detail:   detail,
	}

	s.render(w, status, func() error {
		return s.renderer.Detail(w, page)
	})
}

func (s *Server) render(w http.ResponseWriter, status int, fn func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := fn(); err != nil {
		slog.Error("template render failed", slog.Any("error", err))
	}
}

func (s *Server) darkFromRequest(r *http.Request) bool {
	if c, err := r.Cookie(themeCookie); err == nil {
		switch strings.ToLower(strings.TrimSpace(c.Value)) {
		case "dark":
			return true
		case "light":
			return false
		}
	}
	return s.config.DefaultTheme == "dark"
}

func pageTitle(d view.Detail) string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

func detailPath(id string) string {
	return "/" + url.PathEscape(id)
}

func rawToggleURL(id string, showRaw bool) string {
	if showRaw {
		return detailPath(id)
	}
	return detailPath(id) + "?raw=1"
}

func themeURL(dark bool, returnTo string) string {
	next := "dark"
	if dark {
		next = "light"
	}
	q := url.Values{}
	q.Set("name", next)
	q.Set("return", returnTo)
	return "/theme?" + q.Encode()
}

// safeReturn only allows redirects to local paths
func safeReturn(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
