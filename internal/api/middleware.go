package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/inframe/campus-portal/internal/session"
)

const (
	sessionCookie = "campus_sid"
	sessionHeader = "X-Session-ID"
)

// sessionMiddleware attaches the visitor session id to the request context.
// The id comes from the campus_sid cookie or the X-Session-ID header; a
// visitor without one is issued a fresh id.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := extractSessionID(r)
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(sessionHeader, id)

		next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), id)))
	})
}

// extractSessionID returns a well-formed session id from the request, or ""
func extractSessionID(r *http.Request) string {
	candidates := []string{r.Header.Get(sessionHeader)}
	if c, err := r.Cookie(sessionCookie); err == nil {
		candidates = append(candidates, c.Value)
	}

	for _, id := range candidates {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return ""
}

// requireToken rejects requests whose session holds no backend token
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := s.sessions.Token(r.Context())
		if err != nil {
			slog.Error("failed to read session token", "error", err, "session_id", session.IDFromContext(r.Context()))
			respondError(w, http.StatusInternalServerError, "internal_error", "session unavailable")
			return
		}
		if token == "" {
			respondError(w, http.StatusUnauthorized, "not_authenticated", "login required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// noStaffRole is cached for sessions whose profile carries no staff role
const noStaffRole = "-"

// requireStaff rejects sessions whose backend profile has no staff role.
// The resolved role is cached in the session until the token changes.
func (s *Server) requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		role, err := s.sessions.Role(ctx)
		if err != nil {
			slog.Error("failed to read session role", "error", err, "session_id", session.IDFromContext(ctx))
			respondError(w, http.StatusInternalServerError, "internal_error", "session unavailable")
			return
		}

		if role == "" {
			profile, err := s.backend.Profile(ctx)
			if err != nil {
				respondBackendError(w, err, "failed to verify staff role")
				return
			}

			role = s.staffRole(profile)
			if err := s.sessions.SetRole(ctx, role); err != nil {
				slog.Warn("failed to cache session role", "error", err)
			}
		}

		if !s.staffRoles[role] {
			respondError(w, http.StatusForbidden, "forbidden", "staff role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// staffRole returns the first staff role named by a profile document, or
// noStaffRole. Roles are read from "role", "roles" and a nested "user".
func (s *Server) staffRole(profile map[string]any) string {
	for _, role := range profileRoles(profile) {
		if s.staffRoles[role] {
			return role
		}
	}
	return noStaffRole
}

func profileRoles(profile map[string]any) []string {
	var roles []string
	if role, ok := profile["role"].(string); ok {
		roles = append(roles, role)
	}
	if list, ok := profile["roles"].([]any); ok {
		for _, item := range list {
			if role, ok := item.(string); ok {
				roles = append(roles, role)
			}
		}
	}
	if user, ok := profile["user"].(map[string]any); ok {
		roles = append(roles, profileRoles(user)...)
	}
	return roles
}
