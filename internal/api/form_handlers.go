package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inframe/campus-portal/internal/views"
)

// --- Form handlers ---

func (s *Server) handleSubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	var form views.EnquiryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	respondOutcome(w, s.forms.SubmitEnquiry(r.Context(), form))
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var form views.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	respondOutcome(w, s.forms.SubmitContact(r.Context(), form))
}

func (s *Server) handleSubmitJobApplication(w http.ResponseWriter, r *http.Request) {
	var form views.JobApplicationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	respondOutcome(w, s.forms.SubmitJobApplication(r.Context(), chi.URLParam(r, "id"), form))
}

// respondOutcome writes a submission outcome. The outcome is the body in
// every case so the form can show its message.
func respondOutcome(w http.ResponseWriter, out views.Outcome) {
	status := http.StatusOK
	switch {
	case out.Invalid():
		status = http.StatusUnprocessableEntity
	case !out.Success:
		status = http.StatusBadGateway
	}
	respondJSON(w, status, out)
}
