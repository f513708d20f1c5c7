package usecase

import (
	"reflect"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func backendRole() domain.JobRoleProfile {
	return domain.JobRoleProfile{
		Name:     "backend developer",
		Keywords: []string{"api", "docker", "python", "sql"},
	}
}

func TestMatchPartitionsKeywords(t *testing.T) {
	result := Match(backendRole(), []string{"python", "sql"}, "Experience with Python and SQL on large datasets.")

	if result.Score != 50 {
		t.Fatalf("expected score 50 for 2 of 4 keywords, got %d", result.Score)
	}
	if !reflect.DeepEqual(result.FoundKeywords, []string{"python", "sql"}) {
		t.Fatalf("unexpected found keywords: %v", result.FoundKeywords)
	}
	if !reflect.DeepEqual(result.MissingKeywords, []string{"api", "docker"}) {
		t.Fatalf("unexpected missing keywords: %v", result.MissingKeywords)
	}
	if len(result.Suggestions) != len(result.MissingKeywords) {
		t.Fatalf("expected one suggestion per missing keyword, got %d for %d missing",
			len(result.Suggestions), len(result.MissingKeywords))
	}
	if got := len(result.FoundKeywords) + len(result.MissingKeywords); got != len(backendRole().Keywords) {
		t.Fatalf("found+missing must partition the required set, got %d of %d", got, len(backendRole().Keywords))
	}
}

func TestMatchFindsKeywordInRawTextOnly(t *testing.T) {
	// "api" is not an extracted skill but appears in the raw text.
	result := Match(backendRole(), []string{"python"}, "Designed a REST API in Python.")

	found := map[string]bool{}
	for _, kw := range result.FoundKeywords {
		found[kw] = true
	}
	if !found["api"] {
		t.Fatalf("expected 'api' found via raw text, got %v", result.FoundKeywords)
	}
}

func TestMatchFullCoverage(t *testing.T) {
	result := Match(backendRole(), []string{"api", "docker", "python", "sql"}, "")

	if result.Score != 100 {
		t.Fatalf("expected 100, got %d", result.Score)
	}
	if len(result.MissingKeywords) != 0 || len(result.Suggestions) != 0 {
		t.Fatalf("expected no missing keywords or suggestions, got %v / %v",
			result.MissingKeywords, result.Suggestions)
	}
}

func TestMatchNoCoverage(t *testing.T) {
	result := Match(backendRole(), nil, "nothing relevant here")

	if result.Score != 0 {
		t.Fatalf("expected 0, got %d", result.Score)
	}
	if len(result.FoundKeywords) != 0 {
		t.Fatalf("expected no found keywords, got %v", result.FoundKeywords)
	}
}

func TestMatchScoreMonotonicInSkills(t *testing.T) {
	role := backendRole()
	skills := []string{}
	prev := -1
	for _, add := range role.Keywords {
		skills = append(skills, add)
		result := Match(role, skills, "")
		if result.Score < prev {
			t.Fatalf("score must not decrease as skills grow: %d after %d", result.Score, prev)
		}
		prev = result.Score
	}
	if prev != 100 {
		t.Fatalf("expected full coverage at the end, got %d", prev)
	}
}

func TestMatchScoreRounding(t *testing.T) {
	role := domain.JobRoleProfile{Name: "qa", Keywords: []string{"a1", "b2", "c3"}}
	result := Match(role, []string{"a1"}, "")
	// 1 of 3 → 33.33 rounds to 33.
	if result.Score != 33 {
		t.Fatalf("expected 33, got %d", result.Score)
	}
	result = Match(role, []string{"a1", "b2"}, "")
	// 2 of 3 → 66.67 rounds to 67.
	if result.Score != 67 {
		t.Fatalf("expected 67, got %d", result.Score)
	}
}
