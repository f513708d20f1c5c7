package ports

import (
	"context"
	"io"

	"github.com/vintervu/interview-server/internal/core/domain"
)

// ObjectStorage stages uploaded résumés for extraction.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// DocumentExtractor turns a staged document into plain text.
// Format is the lowercased extension without the dot ("pdf", "docx").
type DocumentExtractor interface {
	ExtractText(ctx context.Context, storageKey, format string) (string, error)
}

// SkillTaxonomy is the immutable canonical skill vocabulary.
type SkillTaxonomy interface {
	FindSkills(text string) []string
	InferBranch(skills []string) string
}

// RoleCatalog resolves named job role profiles.
type RoleCatalog interface {
	Get(name string) (domain.JobRoleProfile, bool)
}

// QuestionGenerator is the narrow contract over the external language-model
// service. Implementations must inject a fresh uniqueness nonce per call so
// repeated calls with identical inputs vary across sessions.
type QuestionGenerator interface {
	BasicQuestions(ctx context.Context) ([]string, error)
	TechnicalQuestions(ctx context.Context, skills []string, branch string) ([]string, error)
	AdaptiveQuestion(ctx context.Context, transcripts, skills []string, branch string) (string, error)
}

// AnswerGrader scores one transcript against the question it answers.
// Score is clamped to [0, MaxAnswerScore]; feedback and suggestion are
// always non-empty.
type AnswerGrader interface {
	Grade(ctx context.Context, transcript, question string) (domain.Evaluation, error)
}

// SessionStore holds live interview sessions keyed by token.
// Acquire locks the session's entry and returns a release func; callers must
// not hold the lock across slow I/O.
type SessionStore interface {
	Put(sess *domain.Session)
	Acquire(token string) (*domain.Session, func(), error)
}

// ReportRepository persists completed interview reports.
type ReportRepository interface {
	SaveReport(ctx context.Context, event domain.InterviewCompleted) error
}

// EventQueue publishes/consumes interview lifecycle events.
type EventQueue interface {
	PublishInterviewCompleted(ctx context.Context, event domain.InterviewCompleted) error
	SubscribeInterviewCompleted(ctx context.Context, handler func(context.Context, domain.InterviewCompleted) error) error
}
