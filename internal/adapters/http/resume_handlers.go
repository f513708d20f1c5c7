package httpadapter

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func (rt *Router) uploadResume(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	file, header, ok := rt.resumeFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	profile, err := rt.resume.Extract(r.Context(), header.Filename, file)
	if err != nil {
		rt.metrics.RecordResumeUpload(rt.service, "error")
		rt.writeError(w, r, err)
		return
	}

	rt.metrics.RecordResumeUpload(rt.service, "success")
	writeJSON(w, http.StatusOK, profile)
}

func (rt *Router) analyzeResume(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	file, header, ok := rt.resumeFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	role := strings.TrimSpace(r.FormValue("job_role"))
	if role == "" {
		rt.writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "http.analyze", fmt.Errorf("form field 'job_role' is required")))
		return
	}

	result, err := rt.resume.Analyze(r.Context(), header.Filename, file, role)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) resumeFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		rt.writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "http.resume", fmt.Errorf("multipart field 'file' is required: %w", err)))
		return nil, nil, false
	}
	return file, header, true
}
