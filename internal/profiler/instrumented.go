package profiler

import (
	"context"
	"time"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// Instrumented records Prometheus metrics around another Profiler.
type Instrumented struct {
	next    Profiler
	metrics *metrics.Metrics
}

func NewInstrumented(next Profiler, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (i *Instrumented) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.metrics.ProfilerRequests.WithLabelValues(op, outcome).Inc()
	i.metrics.ProfilerDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (i *Instrumented) CreateProfile(ctx context.Context, p models.Profile) (models.Response[models.Profile], error) {
	start := time.Now()
	resp, err := i.next.CreateProfile(ctx, p)
	i.observe("create_profile", start, err)
	return resp, err
}

func (i *Instrumented) GetProfile(ctx context.Context, userID string) (models.Response[models.Profile], error) {
	start := time.Now()
	resp, err := i.next.GetProfile(ctx, userID)
	i.observe("get_profile", start, err)
	return resp, err
}

func (i *Instrumented) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.Response[models.Profile], error) {
	start := time.Now()
	resp, err := i.next.UpdateProfile(ctx, userID, upd)
	i.observe("update_profile", start, err)
	return resp, err
}

func (i *Instrumented) ParseResume(ctx context.Context, userID string, file models.ResumeFile) (models.Response[models.ResumeExtraction], error) {
	start := time.Now()
	resp, err := i.next.ParseResume(ctx, userID, file)
	i.observe("parse_resume", start, err)
	return resp, err
}

func (i *Instrumented) AddGitHub(ctx context.Context, userID, username string) (models.Response[models.GitHubAnalysis], error) {
	start := time.Now()
	resp, err := i.next.AddGitHub(ctx, userID, username)
	i.observe("add_github", start, err)
	return resp, err
}

func (i *Instrumented) AddLinkedIn(ctx context.Context, userID, linkedinURL string) (models.Response[models.LinkedInAnalysis], error) {
	start := time.Now()
	resp, err := i.next.AddLinkedIn(ctx, userID, linkedinURL)
	i.observe("add_linkedin", start, err)
	return resp, err
}

func (i *Instrumented) GenerateAnalysis(ctx context.Context, userID string) (models.Response[models.CareerAnalysis], error) {
	start := time.Now()
	resp, err := i.next.GenerateAnalysis(ctx, userID)
	i.observe("generate_analysis", start, err)
	if err == nil {
		i.metrics.ReadinessScore.Observe(float64(resp.Data.ReadinessScore))
	}
	return resp, err
}

func (i *Instrumented) HealthCheck(ctx context.Context) (models.Health, error) {
	start := time.Now()
	h, err := i.next.HealthCheck(ctx)
	i.observe("health_check", start, err)
	return h, err
}
