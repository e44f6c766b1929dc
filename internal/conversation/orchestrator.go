// Package conversation drives one chat session: the active persona, the
// per-persona threads and the submit/upload cycle against a profiler.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/agents"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/storage"
)

var (
	ErrBusy             = errors.New("another request is still in progress")
	ErrEmptyInput       = errors.New("message is empty")
	ErrUploadNotAllowed = errors.New("resume upload is only available for the career profiling agent")
	ErrUnknownAgent     = errors.New("unknown agent")
)

const DefaultStaticDelay = time.Second

type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Outcome is the result of the last finished operation.
type Outcome int

const (
	None Outcome = iota
	Resolved
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "none"
	}
}

// Orchestrator owns a single session. At most one submission or upload is in
// flight at a time; others are rejected with ErrBusy.
type Orchestrator struct {
	sessionID      string
	profiler       profiler.Profiler
	threads        storage.ThreadStorage
	logger         *zap.Logger
	metrics        *metrics.Metrics
	staticDelay    time.Duration
	requestTimeout time.Duration
	newID          func() string
	now            func() time.Time

	mu          sync.Mutex
	state       State
	lastOutcome Outcome
	active      models.AgentID
	input       string
	pendingFile string
}

type Option func(*Orchestrator)

// WithStaticDelay sets the pause before a canned persona reply.
func WithStaticDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.staticDelay = d }
}

// WithRequestTimeout bounds each submission and upload. 0 means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.requestTimeout = d }
}

func WithIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) { o.newID = fn }
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// New creates an orchestrator for sessionID. The session id doubles as the
// profile user id.
func New(sessionID string, p profiler.Profiler, threads storage.ThreadStorage, logger *zap.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sessionID:   sessionID,
		profiler:    p,
		threads:     threads,
		logger:      logger.With(zap.String("session_id", sessionID)),
		staticDelay: DefaultStaticDelay,
		newID:       func() string { return uuid.New().String() },
		now:         time.Now,
		active:      agents.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewSessionID returns a fresh session id in the "user_<unix millis>" form.
func NewSessionID() string {
	return fmt.Sprintf("user_%d", time.Now().UnixMilli())
}

func (o *Orchestrator) SessionID() string { return o.sessionID }

func (o *Orchestrator) ActiveAgent() models.AgentID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// SwitchAgent changes the active persona. Switching is allowed while a request
// is in flight; its reply still goes to the persona it was sent to.
func (o *Orchestrator) SwitchAgent(id models.AgentID) error {
	if _, ok := agents.Lookup(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}
	o.mu.Lock()
	o.active = id
	o.mu.Unlock()
	return nil
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) LastOutcome() Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastOutcome
}

// PendingFile is the name of the resume being parsed, or "".
func (o *Orchestrator) PendingFile() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pendingFile
}

func (o *Orchestrator) SetInput(text string) {
	o.mu.Lock()
	o.input = text
	o.mu.Unlock()
}

func (o *Orchestrator) Input() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.input
}

// Thread returns the messages exchanged with one persona, oldest first.
func (o *Orchestrator) Thread(ctx context.Context, id models.AgentID) ([]models.Message, error) {
	return o.threads.GetThread(ctx, o.sessionID, id)
}

// Send submits the current input buffer.
func (o *Orchestrator) Send(ctx context.Context) (models.Message, error) {
	return o.Submit(ctx, o.Input())
}

// Submit appends text as a user message to the active persona's thread and
// waits for the reply. Failures of the profiler are not returned; they become
// the reply. The returned error is only set when nothing was submitted.
func (o *Orchestrator) Submit(ctx context.Context, text string) (models.Message, error) {
	text = strings.TrimSpace(text)

	o.mu.Lock()
	if o.state == Submitting {
		o.mu.Unlock()
		return models.Message{}, ErrBusy
	}
	if text == "" {
		o.mu.Unlock()
		return models.Message{}, ErrEmptyInput
	}
	agent := o.active
	if err := o.threads.AppendMessage(ctx, o.sessionID, o.message(models.RoleUser, text, agent)); err != nil {
		o.mu.Unlock()
		return models.Message{}, fmt.Errorf("failed to save message: %w", err)
	}
	o.input = ""
	o.state = Submitting
	o.mu.Unlock()

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	var (
		content string
		err     error
	)
	if agents.IsWired(agent) {
		content, err = o.analyze(ctx)
	} else {
		content, err = o.staticReply(ctx, agent)
	}
	if err != nil {
		o.logger.Warn("Submission failed", zap.String("agent", string(agent)), zap.Error(err))
		content = renderError(err)
	}
	return o.finish(ctx, agent, "message", content, err)
}

// Upload parses a resume for the session's profile. Only the wired persona
// accepts uploads. Name and size failures are returned without touching the
// thread; a content mismatch is only logged.
func (o *Orchestrator) Upload(ctx context.Context, file models.ResumeFile) (models.Message, error) {
	o.mu.Lock()
	if o.state == Submitting {
		o.mu.Unlock()
		return models.Message{}, ErrBusy
	}
	agent := o.active
	if !agents.IsWired(agent) {
		o.mu.Unlock()
		return models.Message{}, ErrUploadNotAllowed
	}
	if err := profiler.ValidateResume(file); err != nil {
		o.mu.Unlock()
		return models.Message{}, err
	}
	if detected, ok := profiler.SniffResume(file); !ok {
		o.logger.Warn("Resume content does not match its extension",
			zap.String("filename", file.Name), zap.String("detected", detected))
	}
	o.state = Submitting
	o.pendingFile = file.Name
	o.mu.Unlock()

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	var content string
	resp, err := o.profiler.ParseResume(ctx, o.sessionID, file)
	if err != nil {
		o.logger.Warn("Resume upload failed", zap.String("filename", file.Name), zap.Error(err))
		content = renderUploadError(err)
	} else {
		content = renderResume(file.Name, resp.Data)
	}
	return o.finish(ctx, agent, "upload", content, err)
}

// analyze makes sure the session has a profile and asks for an analysis.
func (o *Orchestrator) analyze(ctx context.Context) (string, error) {
	_, err := o.profiler.GetProfile(ctx, o.sessionID)
	if errors.Is(err, models.ErrNotFound) {
		o.logger.Info("Creating default profile")
		if _, err = o.profiler.CreateProfile(ctx, defaultProfile(o.sessionID)); err != nil {
			return "", err
		}
		_, err = o.profiler.GetProfile(ctx, o.sessionID)
	}
	if err != nil {
		return "", err
	}

	resp, err := o.profiler.GenerateAnalysis(ctx, o.sessionID)
	if err != nil {
		return "", err
	}
	return renderAnalysis(resp.Data), nil
}

func (o *Orchestrator) staticReply(ctx context.Context, agent models.AgentID) (string, error) {
	if o.staticDelay > 0 {
		timer := time.NewTimer(o.staticDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return agents.StaticReply(agent), nil
}

// finish appends the reply and returns to Idle.
func (o *Orchestrator) finish(ctx context.Context, agent models.AgentID, kind, content string, opErr error) (models.Message, error) {
	reply := o.message(models.RoleAssistant, content, agent)
	outcome := Resolved
	if opErr != nil {
		outcome = Failed
	}

	// the reply is stored even if the request context is gone
	appendErr := o.threads.AppendMessage(context.WithoutCancel(ctx), o.sessionID, reply)

	o.mu.Lock()
	o.state = Idle
	o.pendingFile = ""
	o.lastOutcome = outcome
	o.mu.Unlock()

	if o.metrics != nil {
		o.metrics.Submissions.WithLabelValues(string(agent), kind, outcome.String()).Inc()
	}
	if appendErr != nil {
		return models.Message{}, fmt.Errorf("failed to save reply: %w", appendErr)
	}
	return reply, nil
}

func (o *Orchestrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.requestTimeout > 0 {
		return context.WithTimeout(ctx, o.requestTimeout)
	}
	return context.WithCancel(ctx)
}

func (o *Orchestrator) message(role models.Role, content string, agent models.AgentID) models.Message {
	return models.Message{
		ID:        o.newID(),
		Role:      role,
		Content:   content,
		Timestamp: o.now(),
		AgentID:   agent,
	}
}

// defaultProfile is created for sessions that talk to the profiling agent
// before they have a profile of their own.
func defaultProfile(userID string) models.Profile {
	return models.Profile{
		UserID:      userID,
		Email:       userID + "@careercompass.ai",
		FullName:    "Career Compass User",
		CareerLevel: "mid-level",
		Skills: []models.Skill{
			{Name: "JavaScript", Category: "Programming", ProficiencyLevel: "advanced"},
			{Name: "React", Category: "Frontend", ProficiencyLevel: "advanced"},
			{Name: "Python", Category: "Programming", ProficiencyLevel: "intermediate"},
		},
		Education: []models.Education{{
			Degree:         "Bachelor of Science",
			FieldOfStudy:   "Computer Science",
			Institution:    "University",
			GraduationYear: 2020,
		}},
		CareerInterests: []string{"Software Development", "AI/ML", "Web Development"},
		TargetRoles:     []string{"Senior Developer", "Tech Lead"},
	}
}
