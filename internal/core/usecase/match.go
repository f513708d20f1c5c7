package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
)

// Match scores extracted skills and raw resume text against a role's
// required keywords. A keyword counts as found when it is in the extracted
// skill set or occurs in the raw text on a token boundary, so resumes can
// satisfy a role with terms the taxonomy does not carry.
func Match(role domain.JobRoleProfile, skills []string, rawText string) domain.MatchResult {
	skillSet := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skillSet[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	textLower := strings.ToLower(rawText)

	result := domain.MatchResult{
		Role:            role.Name,
		FoundKeywords:   []string{},
		MissingKeywords: []string{},
		Suggestions:     []string{},
	}
	for _, keyword := range role.Keywords {
		if skillSet[keyword] || domain.ContainsKeyword(textLower, keyword) {
			result.FoundKeywords = append(result.FoundKeywords, keyword)
			continue
		}
		result.MissingKeywords = append(result.MissingKeywords, keyword)
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Add experience with %s to strengthen your fit for the %s role.", keyword, role.Name))
	}

	if len(role.Keywords) > 0 {
		result.Score = int(math.Round(100 * float64(len(result.FoundKeywords)) / float64(len(role.Keywords))))
	}
	return result
}
