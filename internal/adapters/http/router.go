// Package httpadapter exposes the resume and interview services over HTTP.
package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vintervu/interview-server/internal/core/ports"
	"github.com/vintervu/interview-server/internal/observability/metrics"
)

const sessionIDHeader = "X-Session-Id"

type Router struct {
	resume    ports.ResumeAnalyzer
	interview ports.InterviewService
	metrics   *metrics.HTTPServerMetrics
	logger    *slog.Logger
	service   string
	maxUpload int64
}

func NewRouter(
	resume ports.ResumeAnalyzer,
	interview ports.InterviewService,
	m *metrics.HTTPServerMetrics,
	logger *slog.Logger,
	service string,
	maxUploadBytes int64,
) *Router {
	return &Router{
		resume:    resume,
		interview: interview,
		metrics:   m,
		logger:    logger,
		service:   service,
		maxUpload: maxUploadBytes,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/resume/upload", rt.uploadResume)
	mux.HandleFunc("/resume/analyze", rt.analyzeResume)
	mux.HandleFunc("/interview/start", rt.startInterview)
	mux.HandleFunc("/interview/next-question", rt.nextQuestion)
	mux.HandleFunc("/interview/record-response", rt.recordResponse)
	mux.HandleFunc("/interview/end", rt.endInterview)
	mux.HandleFunc("/interview/results", rt.interviewResults)

	var handler http.Handler = mux
	handler = rt.metrics.Middleware(rt.service, handler)
	handler = accessLogMiddleware(rt.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToHTTPStatus(err)
	if status >= 500 {
		rt.logger.Error("request failed",
			"request_id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	return true
}
