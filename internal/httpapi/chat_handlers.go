package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/agents"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

type sessionView struct {
	SessionID   string         `json:"session_id"`
	ActiveAgent models.AgentID `json:"active_agent"`
	State       string         `json:"state"`
	LastOutcome string         `json:"last_outcome"`
	PendingFile string         `json:"pending_file,omitempty"`
}

type switchAgentRequest struct {
	AgentID models.AgentID `json:"agent_id" validate:"required"`
}

type submitRequest struct {
	Content string `json:"content" validate:"required"`
}

func viewOf(o *conversation.Orchestrator) sessionView {
	return sessionView{
		SessionID:   o.SessionID(),
		ActiveAgent: o.ActiveAgent(),
		State:       o.State().String(),
		LastOutcome: o.LastOutcome().String(),
		PendingFile: o.PendingFile(),
	}
}

// session returns the orchestrator of the request, creating it on first use.
// Only mutating routes call it.
func (s *Server) session(r *http.Request) *conversation.Orchestrator {
	return s.sessions.Session(chi.URLParam(r, "sessionID"))
}

// existingSession returns the orchestrator of the request or ErrNotFound.
func (s *Server) existingSession(r *http.Request) (*conversation.Orchestrator, error) {
	id := chi.URLParam(r, "sessionID")
	o, ok := s.sessions.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: session %s", models.ErrNotFound, id)
	}
	return o, nil
}

func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, agents.All())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	o, err := s.existingSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(o))
}

func (s *Server) handleSwitchAgent(w http.ResponseWriter, r *http.Request) {
	var req switchAgentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	o := s.session(r)
	if err := o.SwitchAgent(req.AgentID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(o))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	reply, err := s.session(r).Submit(r.Context(), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, err := readResume(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	reply, err := s.session(r).Upload(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	id := models.AgentID(chi.URLParam(r, "agentID"))
	if _, ok := agents.Lookup(id); !ok {
		writeError(w, conversation.ErrUnknownAgent)
		return
	}
	o, err := s.existingSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	msgs, err := o.Thread(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
