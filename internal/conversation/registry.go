package conversation

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/storage"
)

// Registry hands out one Orchestrator per session id. All sessions share the
// profiler and the thread store.
type Registry struct {
	profiler profiler.Profiler
	threads  storage.ThreadStorage
	logger   *zap.Logger
	metrics  *metrics.Metrics
	opts     []Option

	mu       sync.Mutex
	sessions map[string]*Orchestrator
}

// NewRegistry creates a registry. opts are applied to every orchestrator; m may be nil.
func NewRegistry(p profiler.Profiler, threads storage.ThreadStorage, logger *zap.Logger, m *metrics.Metrics, opts ...Option) *Registry {
	if m != nil {
		opts = append([]Option{WithMetrics(m)}, opts...)
	}
	return &Registry{
		profiler: p,
		threads:  threads,
		logger:   logger,
		metrics:  m,
		opts:     opts,
		sessions: make(map[string]*Orchestrator),
	}
}

// Session returns the orchestrator of sessionID, creating it on first use.
func (r *Registry) Session(sessionID string) *Orchestrator {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o, ok := r.sessions[sessionID]; ok {
		return o
	}
	o := New(sessionID, r.profiler, r.threads, r.logger, r.opts...)
	r.sessions[sessionID] = o
	if r.metrics != nil {
		r.metrics.ActiveSessions.Set(float64(len(r.sessions)))
	}
	r.logger.Debug("Session started", zap.String("session_id", sessionID))
	return o
}

// Lookup returns an existing session without creating one.
func (r *Registry) Lookup(sessionID string) (*Orchestrator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.sessions[sessionID]
	return o, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
