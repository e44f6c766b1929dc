// Package profiler implements the career profiling service the chat personas
// talk to: an in-process mock with simulated latency and an HTTP client for a
// remote deployment of the same API.
package profiler

import (
	"context"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// Profiler is the operation set shared by MockProfiler and HTTPProfiler.
type Profiler interface {
	CreateProfile(ctx context.Context, p models.Profile) (models.Response[models.Profile], error)
	GetProfile(ctx context.Context, userID string) (models.Response[models.Profile], error)
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.Response[models.Profile], error)
	ParseResume(ctx context.Context, userID string, file models.ResumeFile) (models.Response[models.ResumeExtraction], error)
	AddGitHub(ctx context.Context, userID, username string) (models.Response[models.GitHubAnalysis], error)
	AddLinkedIn(ctx context.Context, userID, linkedinURL string) (models.Response[models.LinkedInAnalysis], error)
	GenerateAnalysis(ctx context.Context, userID string) (models.Response[models.CareerAnalysis], error)
	HealthCheck(ctx context.Context) (models.Health, error)
}
