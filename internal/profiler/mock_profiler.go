package profiler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/storage"
)

// Simulated latencies of the remote API.
const (
	createLatency   = 800 * time.Millisecond
	getLatency      = 400 * time.Millisecond
	updateLatency   = 600 * time.Millisecond
	parseLatency    = 2000 * time.Millisecond
	githubLatency   = 1500 * time.Millisecond
	linkedinLatency = 1800 * time.Millisecond
	analyzeLatency  = 2500 * time.Millisecond
	healthLatency   = 200 * time.Millisecond
)

var validate = validator.New()

// Rand is the random source used for readiness scores. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MockProfiler simulates the career profiling API in process. Profiles live in
// the injected store; everything else is canned.
type MockProfiler struct {
	store        storage.ProfileStore
	logger       *zap.Logger
	latencyScale float64
	now          func() time.Time

	mu   sync.Mutex
	rand Rand
}

type MockOption func(*MockProfiler)

// WithLatencyScale multiplies every simulated delay. 0 disables them.
func WithLatencyScale(scale float64) MockOption {
	return func(m *MockProfiler) { m.latencyScale = scale }
}

// WithRand pins the random source of readiness scores.
func WithRand(r Rand) MockOption {
	return func(m *MockProfiler) { m.rand = r }
}

func WithClock(now func() time.Time) MockOption {
	return func(m *MockProfiler) { m.now = now }
}

func NewMockProfiler(store storage.ProfileStore, logger *zap.Logger, opts ...MockOption) *MockProfiler {
	m := &MockProfiler{
		store:        store,
		logger:       logger,
		latencyScale: 1,
		now:          time.Now,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockProfiler) CreateProfile(ctx context.Context, p models.Profile) (models.Response[models.Profile], error) {
	if err := m.delay(ctx, createLatency); err != nil {
		return models.Response[models.Profile]{}, err
	}
	if err := validate.Struct(p); err != nil {
		return models.Response[models.Profile]{}, fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}

	now := m.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := m.store.SaveProfile(ctx, &p); err != nil {
		return models.Response[models.Profile]{}, fmt.Errorf("failed to save profile: %w", err)
	}

	m.logger.Debug("Profile created", zap.String("user_id", p.UserID))
	return models.Response[models.Profile]{
		Success: true,
		Message: "Profile created successfully",
		Data:    *p.Clone(),
	}, nil
}

func (m *MockProfiler) GetProfile(ctx context.Context, userID string) (models.Response[models.Profile], error) {
	if err := m.delay(ctx, getLatency); err != nil {
		return models.Response[models.Profile]{}, err
	}

	p, err := m.store.GetProfile(ctx, userID)
	if err != nil {
		return models.Response[models.Profile]{}, err
	}
	return models.Response[models.Profile]{Success: true, Data: *p}, nil
}

func (m *MockProfiler) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.Response[models.Profile], error) {
	if err := m.delay(ctx, updateLatency); err != nil {
		return models.Response[models.Profile]{}, err
	}

	p, err := m.store.UpdateProfile(ctx, userID, func(p *models.Profile) error {
		upd.Apply(p)
		p.UpdatedAt = m.now()
		return nil
	})
	if err != nil {
		return models.Response[models.Profile]{}, err
	}

	m.logger.Debug("Profile updated", zap.String("user_id", userID))
	return models.Response[models.Profile]{
		Success: true,
		Message: "Profile updated successfully",
		Data:    *p,
	}, nil
}

// ParseResume returns the synthetic extraction and, when the user already has
// a profile, merges it in. A missing profile is not an error.
func (m *MockProfiler) ParseResume(ctx context.Context, userID string, file models.ResumeFile) (models.Response[models.ResumeExtraction], error) {
	if err := m.delay(ctx, parseLatency); err != nil {
		return models.Response[models.ResumeExtraction]{}, err
	}

	_, err := m.store.UpdateProfile(ctx, userID, func(p *models.Profile) error {
		mergeResume(p, resumeExtraction(), file.Name)
		p.UpdatedAt = m.now()
		return nil
	})
	switch {
	case errors.Is(err, models.ErrNotFound):
		m.logger.Debug("Resume parsed without stored profile", zap.String("user_id", userID))
	case err != nil:
		return models.Response[models.ResumeExtraction]{}, fmt.Errorf("failed to merge resume: %w", err)
	}

	m.logger.Info("Resume parsed",
		zap.String("user_id", userID),
		zap.String("filename", file.Name),
		zap.Int("size", len(file.Data)))
	return models.Response[models.ResumeExtraction]{
		Success: true,
		Message: "Resume parsed and analyzed successfully using AI",
		Data:    resumeExtraction(),
	}, nil
}

func (m *MockProfiler) AddGitHub(ctx context.Context, userID, username string) (models.Response[models.GitHubAnalysis], error) {
	if err := m.delay(ctx, githubLatency); err != nil {
		return models.Response[models.GitHubAnalysis]{}, err
	}
	return models.Response[models.GitHubAnalysis]{
		Success: true,
		Message: "GitHub profile analyzed successfully",
		Data:    githubAnalysis(username),
	}, nil
}

func (m *MockProfiler) AddLinkedIn(ctx context.Context, userID, linkedinURL string) (models.Response[models.LinkedInAnalysis], error) {
	if err := m.delay(ctx, linkedinLatency); err != nil {
		return models.Response[models.LinkedInAnalysis]{}, err
	}
	return models.Response[models.LinkedInAnalysis]{
		Success: true,
		Message: "LinkedIn profile analyzed successfully",
		Data:    linkedinAnalysis(),
	}, nil
}

// GenerateAnalysis never reports a missing profile; a default one is used instead.
func (m *MockProfiler) GenerateAnalysis(ctx context.Context, userID string) (models.Response[models.CareerAnalysis], error) {
	if err := m.delay(ctx, analyzeLatency); err != nil {
		return models.Response[models.CareerAnalysis]{}, err
	}

	p, err := m.store.GetProfile(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		p, err = fallbackProfile(), nil
	}
	if err != nil {
		return models.Response[models.CareerAnalysis]{}, err
	}

	score := m.score()
	m.logger.Debug("Analysis generated", zap.String("user_id", userID), zap.Int("readiness_score", score))
	return models.Response[models.CareerAnalysis]{
		Success: true,
		Message: "Career analysis completed",
		Data:    buildAnalysis(p, score),
	}, nil
}

func (m *MockProfiler) HealthCheck(ctx context.Context) (models.Health, error) {
	if err := m.delay(ctx, healthLatency); err != nil {
		return models.Health{}, err
	}
	return mockHealth(), nil
}

func (m *MockProfiler) score() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ScoreMin + m.rand.Intn(ScoreMax-ScoreMin+1)
}

// delay waits for the scaled latency d or until ctx is done.
func (m *MockProfiler) delay(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * m.latencyScale)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
