package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inframe/campus-portal/internal/config"
	"github.com/inframe/campus-portal/internal/session"
	"github.com/inframe/campus-portal/internal/storage"
	"github.com/inframe/campus-portal/internal/views"
	"github.com/inframe/campus-portal/pkg/client"
)

// Server represents the HTTP API the browser talks to
type Server struct {
	config     config.ServerConfig
	router     *chi.Mux
	backend    *client.Client
	pages      *views.Pages
	forms      *views.Forms
	repo       storage.Repository
	sessions   session.Store
	staffRoles map[string]bool
}

// NewServer creates a new API server. sessions must be the store the
// backend client reads its tokens from.
func NewServer(
	cfg config.ServerConfig,
	backend *client.Client,
	pages *views.Pages,
	forms *views.Forms,
	repo storage.Repository,
	sessions session.Store,
) *Server {
	s := &Server{
		config:     cfg,
		backend:    backend,
		pages:      pages,
		forms:      forms,
		repo:       repo,
		sessions:   sessions,
		staffRoles: make(map[string]bool),
	}

	roles := cfg.StaffRoles
	if len(roles) == 0 {
		roles = []string{"admin"}
	}
	for _, role := range roles {
		s.staffRoles[role] = true
	}

	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", sessionHeader},
		ExposedHeaders:   []string{"X-Request-ID", sessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(sessionMiddleware)

	// Health check (outside versioned API)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// Live views hold the connection open, so they skip the request timeout
	r.Get("/ws/views", s.handleLiveViews)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/views", func(r chi.Router) {
			r.Get("/courses", s.handleCourses)
			r.Get("/courses/{category}", s.handleCategory)
			r.Get("/courses/{category}/{degree}", s.handleProgram)
			r.Get("/blog", s.handleBlogList)
			r.Get("/blog/{slug}", s.handleBlogDetail)
			r.Get("/about", s.handleAbout)
			r.Get("/partners", s.handlePartners)
			r.Get("/advisors", s.handleAdvisors)
			r.Get("/memberships", s.handleMemberships)
			r.Get("/testimonials", s.handleTestimonials)
			r.Get("/clubs", s.handleClubs)
			r.Get("/events", s.handleEvents)
			r.Get("/careers", s.handleCareers)
			r.Get("/free-courses", s.handleFreeCourses)
			r.Get("/free-courses/{id}", s.handleFreeCourse)
			r.Get("/downloads", s.handleDownloads)
			r.Get("/news-events", s.handleNewsEvents)
		})

		r.Route("/forms", func(r chi.Router) {
			r.Post("/enquiry", s.handleSubmitEnquiry)
			r.Post("/contact", s.handleSubmitContact)
			r.Post("/careers/{id}/apply", s.handleSubmitJobApplication)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.With(s.requireToken).Get("/profile", s.handleProfile)
		})

		// Staff tools. The submission log never reaches the backend, so the
		// role is checked here as well.
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireToken)
			r.Use(s.requireStaff)
			r.Get("/submissions", s.handleListSubmissions)
			r.Get("/enquiries", s.handleListEnquiries)
			r.Patch("/enquiries/{id}/status", s.handleUpdateEnquiryStatus)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
