package usecase

import (
	"context"
	"fmt"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// ArchiveUseCase persists completion events consumed from the queue.
type ArchiveUseCase struct {
	repo ports.ReportRepository
}

func NewArchiveUseCase(repo ports.ReportRepository) *ArchiveUseCase {
	return &ArchiveUseCase{repo: repo}
}

func (uc *ArchiveUseCase) Archive(ctx context.Context, event domain.InterviewCompleted) error {
	if event.Token == "" {
		return domain.WrapError(domain.ErrInvalidInput, "usecase.archive", fmt.Errorf("event has no session token"))
	}
	return uc.repo.SaveReport(ctx, event)
}
