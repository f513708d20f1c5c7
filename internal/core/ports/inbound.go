package ports

import (
	"context"
	"io"

	"github.com/vintervu/interview-server/internal/core/domain"
)

// ResumeAnalyzer is the inbound contract for résumé ingestion and role matching.
type ResumeAnalyzer interface {
	Extract(ctx context.Context, filename string, body io.Reader) (*domain.ExtractedProfile, error)
	Analyze(ctx context.Context, filename string, body io.Reader, role string) (*domain.MatchResult, error)
}

// InterviewService is the inbound contract for the interview session lifecycle.
// NextQuestion returns (nil, nil) once the question budget is exhausted; that
// is the explicit "interview over" signal, not an error.
type InterviewService interface {
	Start(ctx context.Context, token string, skills []string, branch string) (string, error)
	NextQuestion(ctx context.Context, token string) (*domain.Question, error)
	RecordResponse(ctx context.Context, token, transcript, question string) (*domain.ResponseRecord, error)
	End(ctx context.Context, token string) (*domain.FeedbackReport, error)
	Results(ctx context.Context, token string) (*domain.FeedbackReport, error)
}

// ReportArchiver is the inbound contract for asynchronous report persistence.
type ReportArchiver interface {
	Archive(ctx context.Context, event domain.InterviewCompleted) error
}
