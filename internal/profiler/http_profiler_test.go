package profiler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

func TestHTTPProfiler_Requests(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotContentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"readiness_score":81,"strengths":["a"]}}`))
	}))
	defer srv.Close()

	h := NewHTTPProfiler(srv.URL+"/api/", time.Second, zap.NewNop())

	resp, err := h.GenerateAnalysis(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/agent1/profile/analyze", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"user_id":"u1"}`, string(gotBody))
	assert.True(t, resp.Success)
	assert.Equal(t, 81, resp.Data.ReadinessScore)

	_, err = h.AddGitHub(context.Background(), "u1", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "/api/agent1/profile/add-github", gotPath)
	assert.JSONEq(t, `{"user_id":"u1","github_username":"octocat"}`, string(gotBody))

	_, err = h.GetProfile(context.Background(), "user 1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/agent1/profile/user 1", gotPath)
}

func TestHTTPProfiler_ParseResumeMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agent1/profile/parse-resume", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "u1", r.FormValue("user_id"))
		f, hdr, err := r.FormFile("resume")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cv.txt", hdr.Filename)
		assert.Equal(t, "hello", string(data))

		_ = json.NewEncoder(w).Encode(models.Response[models.ResumeExtraction]{Success: true, Data: resumeExtraction()})
	}))
	defer srv.Close()

	h := NewHTTPProfiler(srv.URL+"/api", time.Second, zap.NewNop())
	resp, err := h.ParseResume(context.Background(), "u1", models.ResumeFile{Name: "cv.txt", Data: []byte("hello")})
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", resp.Data.Profile.FullName)
}

func TestHTTPProfiler_StatusMapping(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"detail":"ignored"}`))
	}))
	defer srv.Close()

	h := NewHTTPProfiler(srv.URL, time.Second, zap.NewNop())

	_, err := h.GetProfile(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, err, models.ErrTransport)
	assert.Equal(t, "Failed to get profile", err.Error())

	status = http.StatusInternalServerError
	_, err = h.CreateProfile(context.Background(), models.Profile{UserID: "u1"})
	assert.ErrorIs(t, err, models.ErrTransport)
	assert.False(t, errors.Is(err, models.ErrNotFound))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, "Failed to create profile", te.Op)

	_, err = h.HealthCheck(context.Background())
	assert.EqualError(t, err, "Backend not responding")
}

func TestHTTPProfiler_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	h := NewHTTPProfiler(url, time.Second, zap.NewNop())
	_, err := h.AddLinkedIn(context.Background(), "u1", "https://linkedin.com/in/x")
	assert.ErrorIs(t, err, models.ErrTransport)
}

func TestWaitHealthy(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(models.Health{Status: "healthy", Version: "1.0.0"})
	}))
	defer srv.Close()

	h := NewHTTPProfiler(srv.URL, time.Second, zap.NewNop())
	health, err := WaitHealthy(context.Background(), h, 10*time.Second, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 3, calls)
}

func TestWaitHealthy_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	h := NewHTTPProfiler(srv.URL, time.Second, zap.NewNop())
	_, err := WaitHealthy(context.Background(), h, 300*time.Millisecond, zap.NewNop())
	assert.ErrorIs(t, err, models.ErrTransport)
}

func TestInstrumented_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	mock := NewMockProfiler(nil, zap.NewNop(), WithLatencyScale(0), WithRand(fixedRand(0)))
	p := NewInstrumented(mock, m)

	_, err := p.HealthCheck(context.Background())
	require.NoError(t, err)
	_, err = p.AddGitHub(context.Background(), "u1", "octocat")
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, m.ProfilerRequests.WithLabelValues("health_check", "ok")))
	assert.Equal(t, 1.0, counterValue(t, m.ProfilerRequests.WithLabelValues("add_github", "ok")))
	assert.Equal(t, 0.0, counterValue(t, m.ProfilerRequests.WithLabelValues("add_github", "error")))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
