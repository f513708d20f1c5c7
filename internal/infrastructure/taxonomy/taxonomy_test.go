package taxonomy

import (
	"slices"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func mustLoadDefaults(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := Load(defaultTaxonomyYAML)
	if err != nil {
		t.Fatalf("load embedded taxonomy: %v", err)
	}
	return tax
}

func TestFindSkillsMatchesOnTokenBoundaries(t *testing.T) {
	tax := mustLoadDefaults(t)

	text := "Built REST APIs in Python, containerized with Docker, frontend in React."
	skills := tax.FindSkills(text)

	for _, want := range []string{"python", "docker", "react"} {
		if !slices.Contains(skills, want) {
			t.Fatalf("expected %q in skills, got %v", want, skills)
		}
	}
	if slices.Contains(skills, "java") {
		t.Fatalf("'java' must not match inside other words, got %v", skills)
	}
}

func TestFindSkillsIsDeduplicated(t *testing.T) {
	tax := mustLoadDefaults(t)

	skills := tax.FindSkills("python python python")
	count := 0
	for _, s := range skills {
		if s == "python" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single 'python' entry, got %v", skills)
	}
}

func TestInferBranchMajorityVote(t *testing.T) {
	tax := mustLoadDefaults(t)

	branch := tax.InferBranch([]string{"python", "java", "tensorflow"})
	if branch != "Computer Science" {
		t.Fatalf("expected Computer Science by majority, got %q", branch)
	}
}

func TestInferBranchTieBreaksByPriority(t *testing.T) {
	tax := mustLoadDefaults(t)

	// One Data Science skill against one DevOps skill; Data Science sits
	// higher in the priority list.
	branch := tax.InferBranch([]string{"tensorflow", "docker"})
	if branch != "Data Science" {
		t.Fatalf("expected Data Science on priority tie-break, got %q", branch)
	}
}

func TestInferBranchUnknownWithoutSkills(t *testing.T) {
	tax := mustLoadDefaults(t)

	if branch := tax.InferBranch(nil); branch != domain.UnknownBranch {
		t.Fatalf("expected %q, got %q", domain.UnknownBranch, branch)
	}
	if branch := tax.InferBranch([]string{"underwater basket weaving"}); branch != domain.UnknownBranch {
		t.Fatalf("expected %q for unrecognized skills, got %q", domain.UnknownBranch, branch)
	}
}

func TestInferBranchIsDeterministic(t *testing.T) {
	tax := mustLoadDefaults(t)

	skills := []string{"docker", "tensorflow", "python", "figma"}
	first := tax.InferBranch(skills)
	for i := 0; i < 20; i++ {
		if got := tax.InferBranch(skills); got != first {
			t.Fatalf("inference not deterministic: %q then %q", first, got)
		}
	}
}

func TestLoadRejectsDuplicateKeywords(t *testing.T) {
	raw := []byte("skills:\n  Python: Computer Science\n  python: Data Science\n")
	if _, err := Load(raw); err == nil {
		t.Fatal("expected duplicate keyword error")
	}
}

func TestLoadRejectsEmptyTable(t *testing.T) {
	if _, err := Load([]byte("skills: {}\n")); err == nil {
		t.Fatal("expected empty table error")
	}
}

func TestLoadRolesEmbeddedCatalog(t *testing.T) {
	catalog, err := LoadRoles(defaultRolesYAML)
	if err != nil {
		t.Fatalf("load embedded roles: %v", err)
	}

	role, ok := catalog.Get("Backend Developer")
	if !ok {
		t.Fatal("expected 'backend developer' role (case-insensitive lookup)")
	}
	for _, want := range []string{"python", "sql", "docker", "api"} {
		if !slices.Contains(role.Keywords, want) {
			t.Fatalf("expected keyword %q in backend developer role, got %v", want, role.Keywords)
		}
	}

	if _, ok := catalog.Get("astronaut"); ok {
		t.Fatal("unexpected role 'astronaut'")
	}
}

func TestLoadRolesRejectsEmptyKeywordSet(t *testing.T) {
	raw := []byte("roles:\n  empty role: []\n")
	if _, err := LoadRoles(raw); err == nil {
		t.Fatal("expected error for role without keywords")
	}
}
