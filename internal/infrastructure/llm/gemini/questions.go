package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vintervu/interview-server/internal/core/ports"
)

// Generator produces interview questions. Every prompt carries a fresh
// uniqueness seed so identical inputs still yield varied questions across
// sessions.
type Generator struct {
	gen   textGenerator
	count int
}

var _ ports.QuestionGenerator = (*Generator)(nil)

func NewGenerator(client *Client, count int) *Generator {
	return &Generator{gen: client, count: count}
}

func (g *Generator) BasicQuestions(ctx context.Context) ([]string, error) {
	prompt := fmt.Sprintf(`You are a professional interviewer. Generate %d basic interview questions that assess communication, motivation and general background. Questions must be answerable by speaking for one to two minutes.

Return exactly %d questions, one per line, with no numbering and no extra text.

Uniqueness seed (ignore in content): %s`, g.count, g.count, uuid.NewString())

	raw, err := g.gen.GenerateText(ctx, "gemini.basic_questions", prompt)
	if err != nil {
		return nil, err
	}
	return parseQuestionList(raw, g.count)
}

func (g *Generator) TechnicalQuestions(ctx context.Context, skills []string, branch string) ([]string, error) {
	topic := "general engineering topics"
	if len(skills) > 0 {
		topic = "the candidate's skills: " + strings.Join(skills, ", ")
	}
	if branch != "" && branch != "Unknown" {
		topic += fmt.Sprintf(" (field: %s)", branch)
	}
	prompt := fmt.Sprintf(`You are a professional technical interviewer. Generate %d technical interview questions about %s. Questions must be answerable verbally, without writing code.

Return exactly %d questions, one per line, with no numbering and no extra text.

Uniqueness seed (ignore in content): %s`, g.count, topic, g.count, uuid.NewString())

	raw, err := g.gen.GenerateText(ctx, "gemini.technical_questions", prompt)
	if err != nil {
		return nil, err
	}
	return parseQuestionList(raw, g.count)
}

func (g *Generator) AdaptiveQuestion(ctx context.Context, transcripts, skills []string, branch string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional interviewer in the middle of an interview. The candidate's answers so far, in order:

%s

Candidate skills: %s. Field: %s.

Generate one follow-up question that digs deeper into what the candidate said. Return only the question text.

Uniqueness seed (ignore in content): %s`,
		strings.Join(transcripts, "\n---\n"), strings.Join(skills, ", "), branch, uuid.NewString())

	raw, err := g.gen.GenerateText(ctx, "gemini.adaptive_question", prompt)
	if err != nil {
		return "", err
	}
	questions, err := parseQuestionList(raw, 1)
	if err != nil {
		return "", err
	}
	return questions[0], nil
}

// parseQuestionList splits model output into clean question lines, stripping
// markdown fences, bullets and numbering the model adds despite instructions.
func parseQuestionList(raw string, limit int) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimLeft(line, "-*• ")
		line = stripNumbering(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == limit {
			break
		}
	}
	if len(questions) == 0 {
		return nil, errors.New("no questions in model output")
	}
	return questions, nil
}

func stripNumbering(line string) string {
	idx := 0
	for idx < len(line) && line[idx] >= '0' && line[idx] <= '9' {
		idx++
	}
	if idx == 0 || idx >= len(line) {
		return line
	}
	if line[idx] == '.' || line[idx] == ')' {
		return strings.TrimSpace(line[idx+1:])
	}
	return line
}
