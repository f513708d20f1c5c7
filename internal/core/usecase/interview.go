package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// InterviewConfig bounds the question plan of one session.
type InterviewConfig struct {
	MaxQuestions   int
	BasicCount     int
	TechnicalCount int
}

func DefaultInterviewConfig() InterviewConfig {
	return InterviewConfig{MaxQuestions: 10, BasicCount: 5, TechnicalCount: 5}
}

// InterviewUseCase drives the interview session lifecycle. Question
// generation and grading go to the primary generator/grader first and fall
// back to the deterministic implementations when the primary fails, so a
// session always makes progress.
//
// Sessions are guarded by the store's per-entry lock. The lock is never held
// across generator or grader calls: state is copied out, the slow call runs
// unlocked, and the session is re-validated after re-acquiring.
type InterviewUseCase struct {
	sessions       ports.SessionStore
	generator      ports.QuestionGenerator
	fallbackGen    ports.QuestionGenerator
	grader         ports.AnswerGrader
	fallbackGrader ports.AnswerGrader
	queue          ports.EventQueue
	cfg            InterviewConfig
	logger         *slog.Logger
	now            func() time.Time
}

func NewInterviewUseCase(
	sessions ports.SessionStore,
	generator ports.QuestionGenerator,
	fallbackGen ports.QuestionGenerator,
	grader ports.AnswerGrader,
	fallbackGrader ports.AnswerGrader,
	queue ports.EventQueue,
	cfg InterviewConfig,
	logger *slog.Logger,
) *InterviewUseCase {
	return &InterviewUseCase{
		sessions:       sessions,
		generator:      generator,
		fallbackGen:    fallbackGen,
		grader:         grader,
		fallbackGrader: fallbackGrader,
		queue:          queue,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// Start creates a fresh session seeded with the basic and technical question
// batches and returns its token. A non-empty token naming a session that is
// still in progress is rejected; anything else starts clean under a new token.
func (uc *InterviewUseCase) Start(ctx context.Context, token string, skills []string, branch string) (string, error) {
	if token != "" {
		if sess, release, err := uc.sessions.Acquire(token); err == nil {
			status := sess.Status
			release()
			if status == domain.StatusInProgress {
				return "", domain.WrapError(domain.ErrSessionActive, "usecase.interview.start", fmt.Errorf("session %s is in progress", token))
			}
		}
	}

	basics, err := uc.generateBatch(ctx, "basic", func(gen ports.QuestionGenerator) ([]string, error) {
		return gen.BasicQuestions(ctx)
	})
	if err != nil {
		return "", err
	}
	technical, err := uc.generateBatch(ctx, "technical", func(gen ports.QuestionGenerator) ([]string, error) {
		return gen.TechnicalQuestions(ctx, skills, branch)
	})
	if err != nil {
		return "", err
	}

	sess := &domain.Session{
		Token:     uuid.NewString(),
		Status:    domain.StatusInProgress,
		Skills:    append([]string(nil), skills...),
		Branch:    branch,
		Queue:     buildQueue(basics, uc.cfg.BasicCount, technical, uc.cfg.TechnicalCount),
		StartedAt: uc.now(),
	}
	uc.sessions.Put(sess)
	return sess.Token, nil
}

// NextQuestion returns the current question, issuing a new one only when the
// previous one has been answered. Repeated calls without an intervening
// RecordResponse return the same question. (nil, nil) means the budget is
// spent and the interview should end.
func (uc *InterviewUseCase) NextQuestion(ctx context.Context, token string) (*domain.Question, error) {
	sess, release, err := uc.sessions.Acquire(token)
	if err != nil {
		return nil, err
	}
	if sess.Status != domain.StatusInProgress {
		release()
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.next", fmt.Errorf("session %s is %s", token, sess.Status))
	}
	if sess.Pending != nil {
		q := *sess.Pending
		release()
		return &q, nil
	}
	if len(sess.Queue) > 0 {
		q := sess.Queue[0]
		sess.Queue = sess.Queue[1:]
		sess.Asked++
		q.Sequence = sess.Asked
		sess.Pending = &q
		release()
		return &q, nil
	}
	if sess.Asked >= uc.cfg.MaxQuestions {
		release()
		return nil, nil
	}

	// Queue is empty but the budget is not spent: generate an adaptive
	// question from everything said so far. Copy state out before releasing.
	transcripts := make([]string, 0, len(sess.Responses))
	for _, r := range sess.Responses {
		transcripts = append(transcripts, r.Transcript)
	}
	skills := append([]string(nil), sess.Skills...)
	branch := sess.Branch
	release()

	text, err := uc.generator.AdaptiveQuestion(ctx, transcripts, skills, branch)
	if err != nil {
		uc.logger.Warn("adaptive question generation failed, using fallback", "error", err)
		text, err = uc.fallbackGen.AdaptiveQuestion(ctx, transcripts, skills, branch)
		if err != nil {
			return nil, err
		}
	}

	sess, release, err = uc.sessions.Acquire(token)
	if err != nil {
		return nil, err
	}
	defer release()
	if sess.Status != domain.StatusInProgress {
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.next", fmt.Errorf("session %s ended during generation", token))
	}
	// A concurrent call may have issued a question while the lock was
	// released; honor its pending question for idempotence.
	if sess.Pending != nil {
		q := *sess.Pending
		return &q, nil
	}
	if sess.Asked >= uc.cfg.MaxQuestions {
		return nil, nil
	}
	sess.Asked++
	q := domain.Question{Text: text, Origin: domain.OriginAdaptive, Sequence: sess.Asked}
	sess.Pending = &q
	return &q, nil
}

// RecordResponse grades the transcript against the pending question and
// appends the result to the session log. The question must match the pending
// one; an empty transcript scores zero without a grader round-trip.
func (uc *InterviewUseCase) RecordResponse(ctx context.Context, token, transcript, question string) (*domain.ResponseRecord, error) {
	sess, release, err := uc.sessions.Acquire(token)
	if err != nil {
		return nil, err
	}
	if sess.Status != domain.StatusInProgress {
		release()
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.record", fmt.Errorf("session %s is %s", token, sess.Status))
	}
	if sess.Pending == nil || sess.Pending.Text != question {
		release()
		return nil, domain.WrapError(domain.ErrNoActiveQuestion, "usecase.interview.record", fmt.Errorf("question does not match the pending one"))
	}
	release()

	eval, err := uc.grade(ctx, transcript, question)
	if err != nil {
		return nil, err
	}

	sess, release, err = uc.sessions.Acquire(token)
	if err != nil {
		return nil, err
	}
	defer release()
	if sess.Status != domain.StatusInProgress {
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.record", fmt.Errorf("session %s ended during grading", token))
	}
	if sess.Pending == nil || sess.Pending.Text != question {
		return nil, domain.WrapError(domain.ErrNoActiveQuestion, "usecase.interview.record", fmt.Errorf("question was answered concurrently"))
	}

	record := domain.ResponseRecord{
		Question:   question,
		Transcript: transcript,
		Score:      eval.Score,
		Feedback:   eval.Feedback,
		Suggestion: eval.Suggestion,
	}
	sess.Responses = append(sess.Responses, record)
	sess.Pending = nil
	return &record, nil
}

// End closes the session, aggregates the report and publishes the completion
// event. Publishing is best effort: the caller still gets the report when the
// queue is down.
func (uc *InterviewUseCase) End(ctx context.Context, token string) (*domain.FeedbackReport, error) {
	sess, release, err := uc.sessions.Acquire(token)
	if err != nil {
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.end", err)
	}
	if sess.Status != domain.StatusInProgress {
		release()
		return nil, domain.WrapError(domain.ErrNothingToEnd, "usecase.interview.end", fmt.Errorf("session %s is %s", token, sess.Status))
	}

	report := Aggregate(sess.Responses)
	sess.Status = domain.StatusEnded
	sess.EndedAt = uc.now()
	sess.Report = &report
	sess.Queue = nil
	sess.Pending = nil

	event := domain.InterviewCompleted{
		Token:       sess.Token,
		Branch:      sess.Branch,
		Skills:      append([]string(nil), sess.Skills...),
		StartedAt:   sess.StartedAt,
		CompletedAt: sess.EndedAt,
		Report:      report,
	}
	release()

	if err := uc.queue.PublishInterviewCompleted(ctx, event); err != nil {
		uc.logger.Warn("failed to publish interview completion", "token", token, "error", err)
	}
	return &report, nil
}

// Results returns the report of the last completed session under token.
func (uc *InterviewUseCase) Results(ctx context.Context, token string) (*domain.FeedbackReport, error) {
	sess, release, err := uc.sessions.Acquire(token)
	if err != nil {
		return nil, domain.WrapError(domain.ErrNoCompletedSession, "usecase.interview.results", err)
	}
	defer release()
	if sess.Report == nil {
		return nil, domain.WrapError(domain.ErrNoCompletedSession, "usecase.interview.results", fmt.Errorf("session %s has no report yet", token))
	}
	report := *sess.Report
	return &report, nil
}

func (uc *InterviewUseCase) generateBatch(ctx context.Context, kind string, call func(ports.QuestionGenerator) ([]string, error)) ([]string, error) {
	questions, err := call(uc.generator)
	if err != nil || len(questions) == 0 {
		if err != nil {
			uc.logger.Warn("question generation failed, using fallback bank", "kind", kind, "error", err)
		}
		questions, err = call(uc.fallbackGen)
		if err != nil {
			return nil, domain.WrapError(domain.ErrTemporary, "usecase.interview.start", err)
		}
	}
	return questions, nil
}

func (uc *InterviewUseCase) grade(ctx context.Context, transcript, question string) (domain.Evaluation, error) {
	if transcript == "" {
		return domain.Evaluation{
			Score:      0,
			Feedback:   "No response was captured for this question.",
			Suggestion: "Check your microphone and answer aloud; a partial answer always scores better than silence.",
		}, nil
	}
	eval, err := uc.grader.Grade(ctx, transcript, question)
	if err != nil {
		uc.logger.Warn("grading failed, using heuristic fallback", "error", err)
		eval, err = uc.fallbackGrader.Grade(ctx, transcript, question)
		if err != nil {
			return domain.Evaluation{}, domain.WrapError(domain.ErrTemporary, "usecase.interview.record", err)
		}
	}
	eval.Score = clampScore(eval.Score)
	return eval, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > domain.MaxAnswerScore {
		return domain.MaxAnswerScore
	}
	return score
}

func buildQueue(basics []string, basicCount int, technical []string, technicalCount int) []domain.Question {
	queue := make([]domain.Question, 0, basicCount+technicalCount)
	for _, text := range truncate(basics, basicCount) {
		queue = append(queue, domain.Question{Text: text, Origin: domain.OriginBasic})
	}
	for _, text := range truncate(technical, technicalCount) {
		queue = append(queue, domain.Question{Text: text, Origin: domain.OriginTechnical})
	}
	return queue
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
