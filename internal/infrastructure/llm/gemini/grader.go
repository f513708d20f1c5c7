package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// Grader scores one transcript against its question with a strict-JSON
// prompt. Scores outside [0, MaxAnswerScore] are clamped, missing feedback
// fields are filled with neutral text, and malformed output is an error so
// the caller can fall back to the heuristic grader.
type Grader struct {
	gen textGenerator
}

var _ ports.AnswerGrader = (*Grader)(nil)

func NewGrader(client *Client) *Grader {
	return &Grader{gen: client}
}

type gradeResponse struct {
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Suggestion string `json:"suggestion"`
}

func (g *Grader) Grade(ctx context.Context, transcript, question string) (domain.Evaluation, error) {
	prompt := fmt.Sprintf(`You are grading a spoken interview answer.

Question: %s

Answer transcript: %s

Grade the answer for relevance, depth and clarity. Respond with ONLY a JSON object, no markdown, in this exact shape:
{"score": <integer 0-10>, "feedback": "<one or two sentences on the answer>", "suggestion": "<one concrete way to improve it>"}`,
		question, transcript)

	raw, err := g.gen.GenerateText(ctx, "gemini.grade_answer", prompt)
	if err != nil {
		return domain.Evaluation{}, err
	}

	var parsed gradeResponse
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return domain.Evaluation{}, fmt.Errorf("parse grading response: %w", err)
	}

	eval := domain.Evaluation{
		Score:      parsed.Score,
		Feedback:   strings.TrimSpace(parsed.Feedback),
		Suggestion: strings.TrimSpace(parsed.Suggestion),
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > domain.MaxAnswerScore {
		eval.Score = domain.MaxAnswerScore
	}
	if eval.Feedback == "" {
		eval.Feedback = "The answer was graded without detailed feedback."
	}
	if eval.Suggestion == "" {
		eval.Suggestion = "Add more specifics and a concrete example next time."
	}
	return eval, nil
}

// extractJSON pulls the first JSON object out of model output that may be
// wrapped in markdown fences or prose.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if fenced, ok := strings.CutPrefix(raw, "```json"); ok {
		raw = fenced
	} else if fenced, ok := strings.CutPrefix(raw, "```"); ok {
		raw = fenced
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
