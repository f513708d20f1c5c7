package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func (rt *Router) startInterview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Skills []string `json:"skills"`
		Branch string   `json:"branch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rt.writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "http.interview.start", fmt.Errorf("invalid json body: %w", err)))
		return
	}

	token, err := rt.interview.Start(r.Context(), sessionToken(r), req.Skills, req.Branch)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}

	rt.metrics.RecordSessionStart(rt.service)
	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "started",
		"session_id": token,
	})
}

func (rt *Router) nextQuestion(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	question, err := rt.interview.NextQuestion(r.Context(), sessionToken(r))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if question == nil {
		writeJSON(w, http.StatusOK, map[string]any{"question": nil})
		return
	}

	rt.metrics.RecordQuestion(rt.service, string(question.Origin))
	writeJSON(w, http.StatusOK, map[string]any{"question": question.Text})
}

func (rt *Router) recordResponse(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Audio    string `json:"audio"`
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rt.writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "http.interview.record", fmt.Errorf("invalid json body: %w", err)))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		rt.writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "http.interview.record", fmt.Errorf("field 'question' is required")))
		return
	}

	record, err := rt.interview.RecordResponse(r.Context(), sessionToken(r), req.Audio, req.Question)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}

	rt.metrics.RecordAnswerScore(rt.service, record.Score)
	writeJSON(w, http.StatusOK, record)
}

func (rt *Router) endInterview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	report, err := rt.interview.End(r.Context(), sessionToken(r))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}

	rt.metrics.RecordReport(rt.service)
	writeJSON(w, http.StatusOK, report)
}

func (rt *Router) interviewResults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	report, err := rt.interview.Results(r.Context(), sessionToken(r))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func sessionToken(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(sessionIDHeader))
}
