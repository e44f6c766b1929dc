package profiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

const DefaultBaseURL = "http://localhost:8000/api"

// Request bodies of the profiling API. The server side validates them.
type GitHubRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	GitHubUsername string `json:"github_username" validate:"required"`
}

type LinkedInRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	LinkedInURL string `json:"linkedin_url" validate:"required,url"`
}

type AnalyzeRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// TransportError reports a failed call to a remote profiler. It matches
// models.ErrTransport, and models.ErrNotFound when the server answered 404.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *TransportError) Unwrap() error { return models.ErrTransport }

func (e *TransportError) Is(target error) bool {
	return target == models.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// HTTPProfiler talks to a remote deployment of the profiling API.
type HTTPProfiler struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPProfiler(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPProfiler {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPProfiler{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (h *HTTPProfiler) CreateProfile(ctx context.Context, p models.Profile) (models.Response[models.Profile], error) {
	var out models.Response[models.Profile]
	err := h.do(ctx, "Failed to create profile", http.MethodPost, "/agent1/profile/create", p, &out)
	return out, err
}

func (h *HTTPProfiler) GetProfile(ctx context.Context, userID string) (models.Response[models.Profile], error) {
	var out models.Response[models.Profile]
	err := h.do(ctx, "Failed to get profile", http.MethodGet, "/agent1/profile/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (h *HTTPProfiler) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.Response[models.Profile], error) {
	var out models.Response[models.Profile]
	err := h.do(ctx, "Failed to update profile", http.MethodPut, "/agent1/profile/"+url.PathEscape(userID), upd, &out)
	return out, err
}

func (h *HTTPProfiler) ParseResume(ctx context.Context, userID string, file models.ResumeFile) (models.Response[models.ResumeExtraction], error) {
	const op = "Failed to parse resume"
	var out models.Response[models.ResumeExtraction]

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("resume", file.Name)
	if err != nil {
		return out, &TransportError{Op: op, Err: err}
	}
	if _, err := part.Write(file.Data); err != nil {
		return out, &TransportError{Op: op, Err: err}
	}
	if err := mw.WriteField("user_id", userID); err != nil {
		return out, &TransportError{Op: op, Err: err}
	}
	if err := mw.Close(); err != nil {
		return out, &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/agent1/profile/parse-resume", &body)
	if err != nil {
		return out, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	err = h.send(req, op, &out)
	return out, err
}

func (h *HTTPProfiler) AddGitHub(ctx context.Context, userID, username string) (models.Response[models.GitHubAnalysis], error) {
	var out models.Response[models.GitHubAnalysis]
	err := h.do(ctx, "Failed to add GitHub profile", http.MethodPost, "/agent1/profile/add-github",
		GitHubRequest{UserID: userID, GitHubUsername: username}, &out)
	return out, err
}

func (h *HTTPProfiler) AddLinkedIn(ctx context.Context, userID, linkedinURL string) (models.Response[models.LinkedInAnalysis], error) {
	var out models.Response[models.LinkedInAnalysis]
	err := h.do(ctx, "Failed to add LinkedIn profile", http.MethodPost, "/agent1/profile/add-linkedin",
		LinkedInRequest{UserID: userID, LinkedInURL: linkedinURL}, &out)
	return out, err
}

func (h *HTTPProfiler) GenerateAnalysis(ctx context.Context, userID string) (models.Response[models.CareerAnalysis], error) {
	var out models.Response[models.CareerAnalysis]
	err := h.do(ctx, "Failed to generate analysis", http.MethodPost, "/agent1/profile/analyze",
		AnalyzeRequest{UserID: userID}, &out)
	return out, err
}

func (h *HTTPProfiler) HealthCheck(ctx context.Context) (models.Health, error) {
	var out models.Health
	err := h.do(ctx, "Backend not responding", http.MethodGet, "/agent1/health", nil, &out)
	return out, err
}

func (h *HTTPProfiler) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return h.send(req, op, out)
}

// send performs req and decodes a 2xx body into out. Error bodies are not parsed.
func (h *HTTPProfiler) send(req *http.Request, op string, out any) error {
	resp, err := h.client.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		h.logger.Warn("Profiler request failed",
			zap.Error(err),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()))
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		h.logger.Warn("Profiler returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()))
		return &TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
