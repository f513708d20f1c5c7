// Package grading holds the deterministic fallback grader used when the
// language-model grader is unavailable.
package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// Heuristic grades transcripts from answer length and keyword coverage of
// the question. Same inputs always produce the same evaluation.
type Heuristic struct{}

var _ ports.AnswerGrader = Heuristic{}

func NewHeuristic() Heuristic { return Heuristic{} }

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "about": true,
	"can": true, "do": true, "does": true, "for": true, "how": true,
	"in": true, "is": true, "it": true, "of": true, "on": true,
	"or": true, "tell": true, "that": true, "the": true, "to": true,
	"us": true, "what": true, "when": true, "where": true, "which": true,
	"why": true, "with": true, "would": true, "you": true, "your": true,
}

func (Heuristic) Grade(_ context.Context, transcript, question string) (domain.Evaluation, error) {
	words := tokenize(transcript)
	if len(words) == 0 {
		return domain.Evaluation{
			Score:      0,
			Feedback:   "No response was captured for this question.",
			Suggestion: "Check your microphone and answer aloud; a partial answer always scores better than silence.",
		}, nil
	}

	answered := make(map[string]bool, len(words))
	for _, w := range words {
		answered[w] = true
	}

	var covered, total int
	for _, w := range tokenize(question) {
		if stopwords[w] {
			continue
		}
		total++
		if answered[w] {
			covered++
		}
	}

	score := 2
	if len(words) >= 10 {
		score++
	}
	if len(words) >= 30 {
		score++
	}
	if total > 0 {
		score += (6*covered + total/2) / total
	}
	if score > domain.MaxAnswerScore {
		score = domain.MaxAnswerScore
	}

	return domain.Evaluation{
		Score:      score,
		Feedback:   fmt.Sprintf("Your answer used %d words and touched %d of %d key terms from the question.", len(words), covered, total),
		Suggestion: "Structure the answer around the question's key terms and back each point with a concrete example.",
	}, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}
