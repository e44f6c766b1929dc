package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/agents"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/storage"
)

type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }

// gatedProfiler blocks GenerateAnalysis until release is closed.
type gatedProfiler struct {
	profiler.Profiler
	started chan struct{}
	release chan struct{}
}

func (g *gatedProfiler) GenerateAnalysis(ctx context.Context, userID string) (models.Response[models.CareerAnalysis], error) {
	close(g.started)
	<-g.release
	return g.Profiler.GenerateAnalysis(ctx, userID)
}

func newTestServer(t *testing.T, wrap func(profiler.Profiler) profiler.Profiler) *httptest.Server {
	t.Helper()
	srv, _ := newTestServerWithSessions(t, wrap)
	return srv
}

func newTestServerWithSessions(t *testing.T, wrap func(profiler.Profiler) profiler.Profiler) (*httptest.Server, *conversation.Registry) {
	t.Helper()
	store := storage.NewMemoryStorage()
	var p profiler.Profiler = profiler.NewMockProfiler(store, zap.NewNop(),
		profiler.WithLatencyScale(0), profiler.WithRand(fixedRand(3)))
	if wrap != nil {
		p = wrap(p)
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	sessions := conversation.NewRegistry(p, store, zap.NewNop(), m, conversation.WithStaticDelay(0))

	srv := httptest.NewServer(NewServer(p, sessions, zap.NewNop()).Router(RouterOptions{
		RateLimitPerMin: 1000,
		Gatherer:        reg,
	}))
	t.Cleanup(srv.Close)
	return srv, sessions
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func uploadRequest(t *testing.T, url, filename string, data []byte, fields map[string]string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), &body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestProfileAPI_RoundTripWithHTTPProfiler(t *testing.T) {
	srv := newTestServer(t, nil)
	client := profiler.NewHTTPProfiler(srv.URL+"/api", 5*time.Second, zap.NewNop())
	ctx := context.Background()

	_, err := client.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	created, err := client.CreateProfile(ctx, models.Profile{UserID: "u1", FullName: "Ada", Skills: []models.Skill{{Name: "Go"}}})
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, "Profile created successfully", created.Message)

	got, err := client.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Data.Skills, 1)
	assert.Equal(t, "Go", got.Data.Skills[0].Name)

	level := "senior"
	updated, err := client.UpdateProfile(ctx, "u1", models.ProfileUpdate{CareerLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Data.FullName)
	assert.Equal(t, "senior", updated.Data.CareerLevel)
	assert.Equal(t, []string{"Go"}, updated.Data.SkillNames())

	parsed, err := client.ParseResume(ctx, "u1", models.ResumeFile{Name: "cv.txt", Data: []byte("plain resume")})
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", parsed.Data.Profile.CurrentRole)

	analysis, err := client.GenerateAnalysis(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, profiler.ScoreMin+3, analysis.Data.ReadinessScore)

	gh, err := client.AddGitHub(ctx, "u1", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", gh.Data.Username)

	li, err := client.AddLinkedIn(ctx, "u1", "https://www.linkedin.com/in/octocat")
	require.NoError(t, err)
	assert.Equal(t, "strong", li.Data.Analysis.NetworkStrength)

	health, err := client.HealthCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}

func TestProfileAPI_Validation(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/agent1/profile/create", map[string]any{"full_name": "no id"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decode[errorEnvelope](t, resp)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/agent1/profile/add-linkedin", map[string]any{"user_id": "u1", "linkedin_url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/agent1/profile/missing", map[string]any{"full_name": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = uploadRequest(t, srv.URL+"/api/agent1/profile/parse-resume", "cv.exe", []byte("MZ"), map[string]string{"user_id": "u1"})
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp = uploadRequest(t, srv.URL+"/api/agent1/profile/parse-resume", "cv.txt", []byte("text"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatAPI_Conversation(t *testing.T) {
	srv := newTestServer(t, nil)
	base := srv.URL + "/api/sessions/s1"

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/agents", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Persona](t, resp), 6)

	resp = doJSON(t, http.MethodPost, base+"/messages", submitRequest{Content: "Analyze my profile"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := decode[models.Message](t, resp)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "**📊 Readiness Score:** 78/100")

	resp = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[sessionView](t, resp)
	assert.Equal(t, agents.CareerProfiling, view.ActiveAgent)
	assert.Equal(t, "idle", view.State)
	assert.Equal(t, "resolved", view.LastOutcome)

	resp = doJSON(t, http.MethodGet, base+"/agents/career-profiling/messages", nil)
	assert.Len(t, decode[[]models.Message](t, resp), 2)

	resp = doJSON(t, http.MethodPost, base+"/messages", submitRequest{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, base+"/agent", switchAgentRequest{AgentID: "astrology"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, base+"/agent", switchAgentRequest{AgentID: agents.MarketIntelligence})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, agents.MarketIntelligence, decode[sessionView](t, resp).ActiveAgent)

	resp = doJSON(t, http.MethodPost, base+"/messages", submitRequest{Content: "Analyze my resume"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, agents.StaticReply(agents.MarketIntelligence), decode[models.Message](t, resp).Content)

	resp = uploadRequest(t, base+"/resume", "cv.txt", []byte("resume"), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "UPLOAD_NOT_ALLOWED", decode[errorEnvelope](t, resp).Error.Code)

	resp = doJSON(t, http.MethodGet, base+"/agents/astrology/messages", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChatAPI_ReadsDoNotCreateSessions(t *testing.T) {
	srv, sessions := newTestServerWithSessions(t, nil)

	for i := 0; i < 20; i++ {
		resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/sessions/s%d", srv.URL, i), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decode[errorEnvelope](t, resp).Error.Code)
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/sessions/ghost/agents/career-profiling/messages", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, sessions.Len())

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/sessions/s1/agent", switchAgentRequest{AgentID: agents.SkillRoadmap})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, sessions.Len())

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/s1/agents/skill-roadmap/messages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.Message](t, resp))
}

func TestChatAPI_Upload(t *testing.T) {
	srv := newTestServer(t, nil)
	base := srv.URL + "/api/sessions/s2"

	resp := uploadRequest(t, base+"/resume", "cv.txt", []byte("Alex Johnson resume"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := decode[models.Message](t, resp)
	assert.True(t, strings.HasPrefix(reply.Content, "✅ **Resume Analyzed Successfully!**"))

	resp = uploadRequest(t, base+"/resume", "cv.pdf", []byte("not really a pdf"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decode[models.Message](t, resp).Content, "📄 **cv.pdf**")

	resp = uploadRequest(t, base+"/resume", "cv.exe", []byte("MZ"), nil)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, base+"/agents/career-profiling/messages", nil)
	assert.Len(t, decode[[]models.Message](t, resp), 2)
}

func TestChatAPI_BusySession(t *testing.T) {
	gate := &gatedProfiler{started: make(chan struct{}), release: make(chan struct{})}
	srv := newTestServer(t, func(p profiler.Profiler) profiler.Profiler {
		gate.Profiler = p
		return gate
	})
	base := srv.URL + "/api/sessions/busy"

	first := make(chan int, 1)
	go func() {
		b, _ := json.Marshal(submitRequest{Content: "first"})
		resp, err := http.Post(base+"/messages", "application/json", bytes.NewReader(b))
		if err != nil {
			first <- 0
			return
		}
		resp.Body.Close()
		first <- resp.StatusCode
	}()
	<-gate.started

	resp := doJSON(t, http.MethodPost, base+"/messages", submitRequest{Content: "second"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "BUSY", decode[errorEnvelope](t, resp).Error.Code)

	resp = doJSON(t, http.MethodGet, base, nil)
	assert.Equal(t, "submitting", decode[sessionView](t, resp).State)

	close(gate.release)
	assert.Equal(t, http.StatusOK, <-first)

	resp = doJSON(t, http.MethodGet, base+"/agents/career-profiling/messages", nil)
	msgs := decode[[]models.Message](t, resp)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	doJSON(t, http.MethodPut, srv.URL+"/api/sessions/m1/agent", switchAgentRequest{AgentID: agents.SkillRoadmap})
	doJSON(t, http.MethodGet, srv.URL+"/api/sessions/m2", nil)
	resp := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "chat_sessions 1")
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, ParseOrigins(""))
	assert.Equal(t, []string{"*"}, ParseOrigins(" , "))
	assert.Equal(t, []string{"http://a", "http://b"}, ParseOrigins("http://a, http://b"))
}
