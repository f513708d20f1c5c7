package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vintervu/interview-server/internal/core/domain"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// Taxonomy is the canonical skill vocabulary: keyword → branch, plus the
// declared branch priority order used to break inference ties. Loaded once
// at process start and immutable afterwards.
type Taxonomy struct {
	branches       map[string]string
	branchPriority []string
	keywords       []string
}

type taxonomyFile struct {
	BranchPriority []string          `yaml:"branch_priority"`
	Skills         map[string]string `yaml:"skills"`
}

// Load parses a taxonomy document. Keys are case-normalized and must be
// unique after normalization.
func Load(raw []byte) (*Taxonomy, error) {
	var file taxonomyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy yaml: %w", err)
	}
	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("taxonomy has no skills")
	}

	branches := make(map[string]string, len(file.Skills))
	for keyword, branch := range file.Skills {
		normalized := normalize(keyword)
		if normalized == "" {
			return nil, fmt.Errorf("taxonomy has an empty skill keyword")
		}
		if _, exists := branches[normalized]; exists {
			return nil, fmt.Errorf("duplicate taxonomy keyword %q", normalized)
		}
		if strings.TrimSpace(branch) == "" {
			return nil, fmt.Errorf("taxonomy keyword %q has no branch", normalized)
		}
		branches[normalized] = strings.TrimSpace(branch)
	}

	keywords := make([]string, 0, len(branches))
	for keyword := range branches {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	return &Taxonomy{
		branches:       branches,
		branchPriority: file.BranchPriority,
		keywords:       keywords,
	}, nil
}

// LoadFile reads a taxonomy from path, or the embedded default when path is
// empty.
func LoadFile(path string) (*Taxonomy, error) {
	if path == "" {
		return Load(defaultTaxonomyYAML)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	return Load(raw)
}

// FindSkills scans text case-insensitively for every taxonomy keyword and
// returns the de-duplicated matches. Multi-word keywords match as phrases;
// matches must sit on token boundaries so "java" does not fire on
// "javascript".
func (t *Taxonomy) FindSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, keyword := range t.keywords {
		if domain.ContainsKeyword(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// InferBranch majority-votes the branches of the given skills. Ties break by
// the taxonomy's declared priority order, then lexicographically for
// branches outside the priority list. No matching skill yields
// domain.UnknownBranch.
func (t *Taxonomy) InferBranch(skills []string) string {
	votes := make(map[string]int)
	for _, skill := range skills {
		if branch, ok := t.branches[normalize(skill)]; ok {
			votes[branch]++
		}
	}
	if len(votes) == 0 {
		return domain.UnknownBranch
	}

	candidates := make([]string, 0, len(votes))
	for branch := range votes {
		candidates = append(candidates, branch)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if votes[candidates[i]] != votes[candidates[j]] {
			return votes[candidates[i]] > votes[candidates[j]]
		}
		pi, pj := t.priorityRank(candidates[i]), t.priorityRank(candidates[j])
		if pi != pj {
			return pi < pj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0]
}

// Has reports whether keyword is a taxonomy key.
func (t *Taxonomy) Has(keyword string) bool {
	_, ok := t.branches[normalize(keyword)]
	return ok
}

func (t *Taxonomy) priorityRank(branch string) int {
	for idx, name := range t.branchPriority {
		if strings.EqualFold(name, branch) {
			return idx
		}
	}
	return len(t.branchPriority)
}

func normalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
