package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inframe/campus-portal/internal/views"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	ready := true

	check := func(name string, ping func(context.Context) error) {
		if err := ping(r.Context()); err != nil {
			slog.Warn("readiness check failed", "check", name, "error", err)
			checks[name] = "unavailable"
			ready = false
			return
		}
		checks[name] = "ok"
	}

	check("backend", func(ctx context.Context) error {
		_, err := s.backend.Health(ctx)
		return err
	})
	if s.repo != nil {
		check("database", s.repo.Ping)
	}
	if s.sessions != nil {
		check("sessions", s.sessions.Ping)
	}

	if !ready {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "service not ready")
		return
	}

	checks["status"] = "ready"
	respondJSON(w, http.StatusOK, checks)
}

// View handlers

// serveView runs fetch through the view state machine and writes its
// terminal state
func serveView[T any](w http.ResponseWriter, r *http.Request, fetch func(context.Context) (T, error)) {
	var loadErr error
	state := views.Run(r.Context(), func(ctx context.Context) (any, error) {
		data, err := fetch(ctx)
		loadErr = err
		return data, err
	}, nil)

	if state.Status == views.StatusSuccess {
		respondJSON(w, http.StatusOK, state.Data)
		return
	}
	respondError(w, statusFor(loadErr), "load_failed", state.Error)
}

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Courses)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.Category(ctx, category)
	})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	category, degree := chi.URLParam(r, "category"), chi.URLParam(r, "degree")
	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.Program(ctx, category, degree)
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.About)
}

func (s *Server) handlePartners(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Partners)
}

func (s *Server) handleAdvisors(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Advisors)
}

func (s *Server) handleMemberships(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Memberships)
}

func (s *Server) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Testimonials)
}

func (s *Server) handleClubs(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Clubs)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Events)
}

func (s *Server) handleCareers(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Careers)
}

func (s *Server) handleFreeCourses(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.FreeCourses(ctx, term)
	})
}

func (s *Server) handleFreeCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serveView(w, r, func(ctx context.Context) (any, error) {
		return s.pages.FreeCourse(ctx, id)
	})
}

func (s *Server) handleDownloads(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, s.pages.Downloads)
}

// statusFor maps a load error to the HTTP status of the view response
func statusFor(err error) int {
	switch {
	case errors.Is(err, views.ErrBlogNotFound), errors.Is(err, views.ErrFreeCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
