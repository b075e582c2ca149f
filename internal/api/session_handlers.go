package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/inframe/campus-portal/internal/models"
	"github.com/inframe/campus-portal/internal/session"
	"github.com/inframe/campus-portal/pkg/client"
)

var validate = validator.New()

// --- Session handlers ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds client.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := validate.Struct(creds); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}

	// The client stores the issued token in the session of this request
	if _, err := s.backend.Login(r.Context(), creds); err != nil {
		respondBackendError(w, err, "login failed")
		return
	}

	slog.Info("session logged in", "session_id", session.IDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged_in"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Logout(r.Context()); err != nil {
		// the local token is cleared even when the backend call fails
		slog.Warn("backend logout failed", "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.backend.Profile(r.Context())
	if err != nil {
		respondBackendError(w, err, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// --- Admin handlers (session token required) ---

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	kind := models.SubmissionKind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.Valid() {
		respondError(w, http.StatusBadRequest, "validation_error", "unknown submission kind")
		return
	}

	limit := 50
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	subs, err := s.repo.ListSubmissions(r.Context(), kind, limit, offset)
	if err != nil {
		slog.Error("failed to list submissions", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list submissions")
		return
	}
	if subs == nil {
		subs = []*models.Submission{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"submissions": subs,
		"limit":       limit,
		"offset":      offset,
	})
}

func (s *Server) handleListEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := s.backend.ListEnquiries(r.Context())
	if err != nil {
		respondBackendError(w, err, "failed to list enquiries")
		return
	}
	respondJSON(w, http.StatusOK, enquiries)
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (s *Server) handleUpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	enquiry, err := s.backend.UpdateEnquiryStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.Notes)
	if err != nil {
		respondBackendError(w, err, "failed to update enquiry")
		return
	}
	respondJSON(w, http.StatusOK, enquiry)
}

// respondBackendError maps an SDK error to a response
func respondBackendError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, client.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, client.ErrRejected):
		respondError(w, http.StatusBadRequest, "rejected", err.Error())
	case client.IsUnauthorized(err):
		respondError(w, http.StatusUnauthorized, "not_authenticated", message)
	case client.IsNotFound(err):
		respondError(w, http.StatusNotFound, "not_found", message)
	default:
		slog.Error(message, "error", err)
		respondError(w, http.StatusBadGateway, "backend_error", message)
	}
}
