package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// ReportRepository archives completed interview reports.
type ReportRepository struct {
	db *sql.DB
}

var _ ports.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026090101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS interview_reports (
	id TEXT PRIMARY KEY,
	session_token TEXT NOT NULL,
	branch TEXT NOT NULL,
	skills JSONB NOT NULL DEFAULT '[]'::jsonb,
	total_score INTEGER NOT NULL,
	max_score INTEGER NOT NULL,
	percentage DOUBLE PRECISION NOT NULL,
	feedback JSONB NOT NULL DEFAULT '[]'::jsonb,
	started_at TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interview_reports_token ON interview_reports(session_token);
CREATE INDEX IF NOT EXISTS idx_interview_reports_completed_at ON interview_reports(completed_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *ReportRepository) SaveReport(ctx context.Context, event domain.InterviewCompleted) error {
	skillsJSON, err := json.Marshal(event.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	feedbackJSON, err := json.Marshal(event.Report.Feedback)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO interview_reports (
	id, session_token, branch, skills, total_score, max_score, percentage, feedback, started_at, completed_at, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`,
		uuid.NewString(), event.Token, event.Branch, skillsJSON,
		event.Report.TotalScore, event.Report.MaxScore, event.Report.Percentage, feedbackJSON,
		event.StartedAt, event.CompletedAt, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert interview report: %w", err)
	}
	return nil
}

// LatestByToken returns the most recently archived report for a session
// token, or sql.ErrNoRows wrapped when none exists.
func (r *ReportRepository) LatestByToken(ctx context.Context, token string) (*domain.FeedbackReport, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT total_score, max_score, percentage, feedback
FROM interview_reports
WHERE session_token = $1
ORDER BY completed_at DESC
LIMIT 1
`, token)

	var report domain.FeedbackReport
	var feedbackRaw []byte
	if err := row.Scan(&report.TotalScore, &report.MaxScore, &report.Percentage, &feedbackRaw); err != nil {
		return nil, fmt.Errorf("select interview report: %w", err)
	}
	if err := json.Unmarshal(feedbackRaw, &report.Feedback); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return &report, nil
}
