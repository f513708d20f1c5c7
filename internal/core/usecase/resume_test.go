package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

type fakeStorage struct {
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeStorage) Save(_ context.Context, key string, data io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	_, _ = io.Copy(io.Discard, data)
	f.saved = append(f.saved, key)
	return nil
}

func (f *fakeStorage) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeStorage) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(context.Context, string, string) (string, error) {
	return f.text, f.err
}

type fakeTaxonomy struct {
	skills []string
	branch string
}

func (f *fakeTaxonomy) FindSkills(string) []string  { return f.skills }
func (f *fakeTaxonomy) InferBranch([]string) string { return f.branch }

type fakeCatalog struct {
	roles map[string]domain.JobRoleProfile
}

func (f *fakeCatalog) Get(name string) (domain.JobRoleProfile, bool) {
	role, ok := f.roles[name]
	return role, ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractBuildsProfile(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewResumeUseCase(
		storage,
		&fakeExtractor{text: "Skills\npython docker\nProjects\n- Chat server in Go\n- Portfolio site\nEducation\nBSc"},
		&fakeTaxonomy{skills: []string{"python", "docker"}, branch: "Computer Science"},
		&fakeCatalog{},
		discardLogger(),
	)

	profile, err := uc.Extract(context.Background(), "resume.pdf", strings.NewReader("%PDF..."))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !reflect.DeepEqual(profile.Skills, []string{"python", "docker"}) {
		t.Fatalf("unexpected skills: %v", profile.Skills)
	}
	if profile.Branch != "Computer Science" {
		t.Fatalf("unexpected branch: %q", profile.Branch)
	}
	if !reflect.DeepEqual(profile.Projects, []string{"Chat server in Go", "Portfolio site"}) {
		t.Fatalf("unexpected projects: %v", profile.Projects)
	}

	if len(storage.saved) != 1 || len(storage.removed) != 1 || storage.saved[0] != storage.removed[0] {
		t.Fatalf("staged file must be removed after extraction: saved=%v removed=%v", storage.saved, storage.removed)
	}
}

func TestExtractCleansUpOnExtractionFailure(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewResumeUseCase(
		storage,
		&fakeExtractor{err: domain.WrapError(domain.ErrExtractionFailed, "extract pdf", errors.New("scanned image"))},
		&fakeTaxonomy{},
		&fakeCatalog{},
		discardLogger(),
	)

	_, err := uc.Extract(context.Background(), "resume.pdf", strings.NewReader("binary"))
	if !domain.IsKind(err, domain.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if len(storage.removed) != 1 {
		t.Fatalf("staged file must be removed on failure too, removed=%v", storage.removed)
	}
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewResumeUseCase(storage, &fakeExtractor{}, &fakeTaxonomy{}, &fakeCatalog{}, discardLogger())

	_, err := uc.Extract(context.Background(), "resume.txt", strings.NewReader("plain"))
	if !domain.IsKind(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if len(storage.saved) != 0 {
		t.Fatal("nothing should be staged for an unsupported extension")
	}
}

func TestExtractRequiresFilename(t *testing.T) {
	uc := NewResumeUseCase(&fakeStorage{}, &fakeExtractor{}, &fakeTaxonomy{}, &fakeCatalog{}, discardLogger())

	_, err := uc.Extract(context.Background(), "  ", strings.NewReader("data"))
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeUnknownRole(t *testing.T) {
	uc := NewResumeUseCase(&fakeStorage{}, &fakeExtractor{text: "text"}, &fakeTaxonomy{}, &fakeCatalog{}, discardLogger())

	_, err := uc.Analyze(context.Background(), "resume.pdf", strings.NewReader("data"), "astronaut")
	if !domain.IsKind(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAnalyzeMatchesRole(t *testing.T) {
	catalog := &fakeCatalog{roles: map[string]domain.JobRoleProfile{
		"backend developer": {Name: "backend developer", Keywords: []string{"api", "docker", "python", "sql"}},
	}}
	uc := NewResumeUseCase(
		&fakeStorage{},
		&fakeExtractor{text: "Python and SQL, some Docker."},
		&fakeTaxonomy{skills: []string{"python", "sql", "docker"}},
		catalog,
		discardLogger(),
	)

	result, err := uc.Analyze(context.Background(), "resume.docx", strings.NewReader("data"), "backend developer")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Score != 75 {
		t.Fatalf("expected 75 for 3 of 4 keywords, got %d", result.Score)
	}
	if !reflect.DeepEqual(result.MissingKeywords, []string{"api"}) {
		t.Fatalf("unexpected missing keywords: %v", result.MissingKeywords)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":           "resume.pdf",
		"../../etc/passwd":     "passwd",
		"my resume (new).docx": "my_resume__new_.docx",
		"отчёт.pdf":            "_____.pdf",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
