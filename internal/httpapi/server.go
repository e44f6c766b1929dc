// Package httpapi serves the career profiling REST API and the chat sessions
// over HTTP.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
)

type Server struct {
	profiler profiler.Profiler
	sessions *conversation.Registry
	logger   *zap.Logger
}

func NewServer(p profiler.Profiler, sessions *conversation.Registry, logger *zap.Logger) *Server {
	return &Server{profiler: p, sessions: sessions, logger: logger}
}

type RouterOptions struct {
	CORSOrigins     []string
	RateLimitPerMin int
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// ParseOrigins splits a comma separated origin list. Empty means "*".
func ParseOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Router builds the HTTP handler with all middlewares and routes.
func (s *Server) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(s.logger))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/agent1/health", s.handleHealth)
		r.Get("/agent1/profile/{userID}", s.handleGetProfile)
		r.Get("/agents", s.handleListAgents)
		r.Get("/sessions/{sessionID}", s.handleGetSession)
		r.Get("/sessions/{sessionID}/agents/{agentID}/messages", s.handleGetThread)

		// mutating endpoints are rate limited
		r.Group(func(r chi.Router) {
			if opts.RateLimitPerMin > 0 {
				r.Use(httprate.LimitByIP(opts.RateLimitPerMin, time.Minute))
			}
			r.Post("/agent1/profile/create", s.handleCreateProfile)
			r.Put("/agent1/profile/{userID}", s.handleUpdateProfile)
			r.Post("/agent1/profile/parse-resume", s.handleParseResume)
			r.Post("/agent1/profile/add-github", s.handleAddGitHub)
			r.Post("/agent1/profile/add-linkedin", s.handleAddLinkedIn)
			r.Post("/agent1/profile/analyze", s.handleAnalyze)

			r.Put("/sessions/{sessionID}/agent", s.handleSwitchAgent)
			r.Post("/sessions/{sessionID}/messages", s.handleSubmit)
			r.Post("/sessions/{sessionID}/resume", s.handleUpload)
		})
	})

	metricsHandler := promhttp.Handler()
	if opts.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	return r
}
