package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
)

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.profiler.CreateProfile(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.profiler.GetProfile(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.profiler.UpdateProfile(r.Context(), chi.URLParam(r, "userID"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	file, err := readResume(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		writeError(w, fmt.Errorf("%w: user_id is required", models.ErrInvalidArgument))
		return
	}
	if err := profiler.ValidateResume(file); err != nil {
		writeError(w, err)
		return
	}
	if detected, ok := profiler.SniffResume(file); !ok {
		s.logger.Warn("Resume content does not match its extension",
			zap.String("filename", file.Name), zap.String("detected", detected))
	}

	resp, err := s.profiler.ParseResume(r.Context(), userID, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddGitHub(w http.ResponseWriter, r *http.Request) {
	var req profiler.GitHubRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.profiler.AddGitHub(r.Context(), req.UserID, req.GitHubUsername)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req profiler.LinkedInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.profiler.AddLinkedIn(r.Context(), req.UserID, req.LinkedInURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req profiler.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.profiler.GenerateAnalysis(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h, err := s.profiler.HealthCheck(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// readResume reads the "resume" part of a multipart upload.
func readResume(w http.ResponseWriter, r *http.Request) (models.ResumeFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, profiler.MaxResumeSize+maxJSONBody)
	if err := r.ParseMultipartForm(profiler.MaxResumeSize); err != nil {
		return models.ResumeFile{}, fmt.Errorf("%w: parse multipart form: %v", models.ErrInvalidArgument, err)
	}
	f, hdr, err := r.FormFile("resume")
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("%w: resume file is required", models.ErrInvalidArgument)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return models.ResumeFile{Name: hdr.Filename, Data: data}, nil
}
