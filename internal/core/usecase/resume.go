package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// ResumeUseCase stages an uploaded resume, extracts its text and derives a
// skill profile from it. Staged files are transient: they are removed on
// every exit path, success or failure.
type ResumeUseCase struct {
	storage   ports.ObjectStorage
	extractor ports.DocumentExtractor
	taxonomy  ports.SkillTaxonomy
	roles     ports.RoleCatalog
	logger    *slog.Logger
}

func NewResumeUseCase(
	storage ports.ObjectStorage,
	extractor ports.DocumentExtractor,
	taxonomy ports.SkillTaxonomy,
	roles ports.RoleCatalog,
	logger *slog.Logger,
) *ResumeUseCase {
	return &ResumeUseCase{
		storage:   storage,
		extractor: extractor,
		taxonomy:  taxonomy,
		roles:     roles,
		logger:    logger,
	}
}

func (uc *ResumeUseCase) Extract(ctx context.Context, filename string, body io.Reader) (*domain.ExtractedProfile, error) {
	text, err := uc.extractText(ctx, filename, body)
	if err != nil {
		return nil, err
	}

	skills := uc.taxonomy.FindSkills(text)
	return &domain.ExtractedProfile{
		Skills:   skills,
		Projects: extractProjects(text),
		Branch:   uc.taxonomy.InferBranch(skills),
	}, nil
}

func (uc *ResumeUseCase) Analyze(ctx context.Context, filename string, body io.Reader, role string) (*domain.MatchResult, error) {
	profile, ok := uc.roles.Get(role)
	if !ok {
		return nil, domain.WrapError(domain.ErrUnknownRole, "usecase.resume.analyze", fmt.Errorf("role %q is not in the catalog", role))
	}

	text, err := uc.extractText(ctx, filename, body)
	if err != nil {
		return nil, err
	}

	result := Match(profile, uc.taxonomy.FindSkills(text), text)
	return &result, nil
}

func (uc *ResumeUseCase) extractText(ctx context.Context, filename string, body io.Reader) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", domain.WrapError(domain.ErrInvalidInput, "usecase.resume.extract", fmt.Errorf("filename is required"))
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format != "pdf" && format != "docx" {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "usecase.resume.extract", fmt.Errorf("extension %q (want pdf or docx)", format))
	}

	key := uuid.NewString() + "-" + sanitizeFilename(filename)
	if err := uc.storage.Save(ctx, key, body); err != nil {
		return "", domain.WrapError(domain.ErrExtractionFailed, "usecase.resume.extract", err)
	}
	defer func() {
		if removeErr := uc.storage.Remove(ctx, key); removeErr != nil {
			uc.logger.Warn("failed to remove staged resume", "key", key, "error", removeErr)
		}
	}()

	return uc.extractor.ExtractText(ctx, key, format)
}

// sanitizeFilename keeps staged object keys path-safe: the base name only,
// with anything outside a conservative character set replaced by '_'.
func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

var projectHeadings = map[string]bool{
	"projects": true, "personal projects": true, "academic projects": true,
	"selected projects": true, "project experience": true,
}

var sectionHeadings = map[string]bool{
	"education": true, "experience": true, "work experience": true,
	"skills": true, "technical skills": true, "certifications": true,
	"achievements": true, "publications": true, "languages": true,
	"interests": true, "references": true, "summary": true, "objective": true,
}

// extractProjects collects the lines that follow a project section heading,
// up to the next recognized section heading. Bullet markers are stripped;
// blank lines are skipped. Resumes without a project section yield nil.
func extractProjects(text string) []string {
	var projects []string
	inProjects := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		heading := strings.ToLower(strings.TrimRight(trimmed, ":"))
		if projectHeadings[heading] {
			inProjects = true
			continue
		}
		if sectionHeadings[heading] {
			inProjects = false
			continue
		}
		if inProjects {
			projects = append(projects, strings.TrimSpace(strings.TrimLeft(trimmed, "-*•\t ")))
		}
	}
	return projects
}
