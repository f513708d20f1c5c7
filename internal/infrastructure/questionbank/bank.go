// Package questionbank is the static question source used when the
// language-model generator is unavailable. It never errors and is fully
// deterministic for the same inputs.
package questionbank

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/vintervu/interview-server/internal/core/ports"
)

//go:embed basic.txt
var basicRaw string

//go:embed technical.txt
var technicalRaw string

type Bank struct {
	basic     []string
	technical []string
}

var _ ports.QuestionGenerator = (*Bank)(nil)

func New() *Bank {
	return &Bank{
		basic:     splitLines(basicRaw),
		technical: splitLines(technicalRaw),
	}
}

func (b *Bank) BasicQuestions(context.Context) ([]string, error) {
	return append([]string(nil), b.basic...), nil
}

// TechnicalQuestions asks about the candidate's own skills first and fills
// the remainder from the generic pool.
func (b *Bank) TechnicalQuestions(_ context.Context, skills []string, branch string) ([]string, error) {
	questions := make([]string, 0, len(b.technical))
	for _, skill := range skills {
		if len(questions) == len(b.technical) {
			break
		}
		questions = append(questions, fmt.Sprintf("Describe a project where you used %s. What was your specific contribution?", skill))
	}
	for _, q := range b.technical {
		if len(questions) == len(b.technical) {
			break
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// AdaptiveQuestion rotates through the generic pool, offset by how much has
// been said so far, so follow-ups within one session differ.
func (b *Bank) AdaptiveQuestion(_ context.Context, transcripts, skills []string, branch string) (string, error) {
	idx := (len(transcripts) + len(skills)) % len(b.technical)
	return b.technical[idx], nil
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
