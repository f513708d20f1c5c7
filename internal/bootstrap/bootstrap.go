// Package bootstrap wires configuration, infrastructure and usecases for
// both the api and worker binaries.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vintervu/interview-server/internal/config"
	"github.com/vintervu/interview-server/internal/core/ports"
	"github.com/vintervu/interview-server/internal/core/usecase"
	"github.com/vintervu/interview-server/internal/infrastructure/extractor/document"
	"github.com/vintervu/interview-server/internal/infrastructure/grading"
	"github.com/vintervu/interview-server/internal/infrastructure/llm/gemini"
	"github.com/vintervu/interview-server/internal/infrastructure/questionbank"
	"github.com/vintervu/interview-server/internal/infrastructure/queue/nats"
	"github.com/vintervu/interview-server/internal/infrastructure/repository/postgres"
	"github.com/vintervu/interview-server/internal/infrastructure/resilience"
	"github.com/vintervu/interview-server/internal/infrastructure/session"
	"github.com/vintervu/interview-server/internal/infrastructure/storage/localfs"
	"github.com/vintervu/interview-server/internal/infrastructure/taxonomy"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue       ports.EventQueue
	ResumeUC    ports.ResumeAnalyzer
	InterviewUC ports.InterviewService
	ArchiveUC   ports.ReportArchiver

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewReportRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy(), logger)

	queue, err := nats.Connect(cfg.NATSURL, cfg.NATSSubject, logger, nats.Options{Executor: executor})
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	skills, err := taxonomy.LoadFile(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load skill taxonomy: %w", err)
	}
	roles, err := taxonomy.LoadRolesFile(cfg.RolesPath)
	if err != nil {
		return nil, fmt.Errorf("load role catalog: %w", err)
	}

	bank := questionbank.New()
	heuristic := grading.NewHeuristic()

	// Without an API key the static bank and heuristic grader carry the
	// whole interview.
	var generator ports.QuestionGenerator = bank
	var grader ports.AnswerGrader = heuristic
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, executor)
		if err != nil {
			return nil, fmt.Errorf("init gemini client: %w", err)
		}
		generator = gemini.NewGenerator(client, max(cfg.BasicQuestionCount, cfg.TechnicalQuestionCount))
		grader = gemini.NewGrader(client)
	} else {
		logger.Warn("GEMINI_API_KEY is not set, running on the static question bank and heuristic grader")
	}

	extractor := document.NewExtractor(storage)
	resumeUC := usecase.NewResumeUseCase(storage, extractor, skills, roles, logger)
	interviewUC := usecase.NewInterviewUseCase(
		session.NewStore(),
		generator,
		bank,
		grader,
		heuristic,
		queue,
		usecase.InterviewConfig{
			MaxQuestions:   cfg.MaxQuestions,
			BasicCount:     cfg.BasicQuestionCount,
			TechnicalCount: cfg.TechnicalQuestionCount,
		},
		logger,
	)
	archiveUC := usecase.NewArchiveUseCase(repo)

	return &App{
		Config: cfg,
		Logger: logger,

		Queue:       queue,
		ResumeUC:    resumeUC,
		InterviewUC: interviewUC,
		ArchiveUC:   archiveUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
