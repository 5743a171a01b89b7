package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fallacyscope/fallacyscope/internal/moderate"
	"github.com/fallacyscope/fallacyscope/internal/worker"
)

// Moderator runs the moderation pipeline for one (news, comment) pair
type Moderator interface {
	Moderate(ctx context.Context, news, comment string) (string, error)
}

// Analyzer runs thread-wide batch analysis
type Analyzer interface {
	Analyze(ctx context.Context, url string) (string, error)
}

// Server exposes the moderation pipeline over HTTP
type Server struct {
	router    *chi.Mux
	moderator Moderator
	analyzer  Analyzer
	cache     *moderate.ResultCache
	limiter   *worker.Limiter
}

// NewServer wires routes, CORS, and rate limiting around the pipeline
func NewServer(moderator Moderator, analyzer Analyzer, cache *moderate.ResultCache, limiter *worker.Limiter) *Server {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		router:    r,
		moderator: moderator,
		analyzer:  analyzer,
		cache:     cache,
		limiter:   limiter,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Liveness probe, used by the desktop widget to enable its button
	s.router.Get("/", s.handleHealth)

	s.router.Group(func(r chi.Router) {
		r.Use(s.rateLimit)

		r.Post("/moderate", s.handleModerate)
		r.Post("/moderate_stream", s.handleModerateStream)
		r.Post("/detect_all", s.handleDetectAll)
		r.Post("/detect_all_stream", s.handleDetectAllStream)
	})
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// rateLimit gates pipeline routes per caller address, before any work runs
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}

		if !s.limiter.Allow(addr) {
			respondJSON(w, http.StatusTooManyRequests, envelope{OK: false, Msg: "Too many requests"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// envelope is the uniform response body
type envelope struct {
	OK   bool   `json:"ok"`
	Data string `json:"data,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
