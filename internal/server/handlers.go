package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScoreRequest is the body for /score, /explain, and /project
type ScoreRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	JobID       string `json:"job_id" validate:"required,uuid"`
}

// CompareRequest is the body for /compare. Size bounds are enforced by
// the engine so oversized requests surface the typed comparison error.
type CompareRequest struct {
	CandidateID string   `json:"candidate_id" validate:"required,uuid"`
	JobIDs      []string `json:"job_ids" validate:"dive,uuid"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleScore evaluates one candidate against one job
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Score(r.Context(), req.candidateID, req.jobID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleCompare evaluates one candidate against up to ten jobs
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "candidate_id", Message: "must be a UUID"})
		return
	}
	jobIDs := make([]uuid.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: "job_ids", Message: "must be UUIDs"})
			return
		}
		jobIDs = append(jobIDs, id)
	}

	comparison, err := s.engine.Compare(r.Context(), candidateID, jobIDs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, comparison)
}

// handleExplain returns the strengths/gaps/action-plan view
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	explanation, err := s.engine.Explain(r.Context(), req.candidateID, req.jobID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, explanation)
}

// handleProject returns the improvement projection
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScoreRequest(w, r)
	if !ok {
		return
	}

	plan, err := s.engine.Project(r.Context(), req.candidateID, req.jobID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type parsedScoreRequest struct {
	candidateID uuid.UUID
	jobID       uuid.UUID
}

func (s *Server) decodeScoreRequest(w http.ResponseWriter, r *http.Request) (parsedScoreRequest, bool) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return parsedScoreRequest{}, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return parsedScoreRequest{}, false
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "candidate_id", Message: "must be a UUID"})
		return parsedScoreRequest{}, false
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "job_id", Message: "must be a UUID"})
		return parsedScoreRequest{}, false
	}
	return parsedScoreRequest{candidateID: candidateID, jobID: jobID}, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	} else {
		s.log.Debug("request rejected", zap.Error(err))
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
