package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// --- Blog and news handlers (backend with static catalogue fallback) ---

func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.BlogList(ctx, term)
	})
}

func (s *Server) handleBlogDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "slug is required")
		return
	}

	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.BlogDetail(ctx, slug)
	})
}

func (s *Server) handleNewsEvents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.pages.NewsEvents(r.URL.Query().Get("q")))
}
