package questionbank

import (
	"context"
	"strings"
	"testing"
)

func TestBankIsNeverEmpty(t *testing.T) {
	bank := New()
	ctx := context.Background()

	basics, err := bank.BasicQuestions(ctx)
	if err != nil || len(basics) == 0 {
		t.Fatalf("basic questions: %v (%d)", err, len(basics))
	}
	technical, err := bank.TechnicalQuestions(ctx, nil, "Unknown")
	if err != nil || len(technical) == 0 {
		t.Fatalf("technical questions: %v (%d)", err, len(technical))
	}
	adaptive, err := bank.AdaptiveQuestion(ctx, nil, nil, "Unknown")
	if err != nil || adaptive == "" {
		t.Fatalf("adaptive question: %v (%q)", err, adaptive)
	}
}

func TestTechnicalQuestionsLeadWithSkills(t *testing.T) {
	bank := New()

	questions, err := bank.TechnicalQuestions(context.Background(), []string{"python", "docker"}, "Computer Science")
	if err != nil {
		t.Fatalf("technical questions: %v", err)
	}
	if !strings.Contains(questions[0], "python") {
		t.Fatalf("first question must target the first skill, got %q", questions[0])
	}
	if !strings.Contains(questions[1], "docker") {
		t.Fatalf("second question must target the second skill, got %q", questions[1])
	}
}

func TestAdaptiveQuestionVariesWithProgress(t *testing.T) {
	bank := New()
	ctx := context.Background()

	first, _ := bank.AdaptiveQuestion(ctx, []string{"one answer"}, nil, "")
	second, _ := bank.AdaptiveQuestion(ctx, []string{"one answer", "two answers"}, nil, "")
	if first == second {
		t.Fatalf("adaptive question should rotate as the interview progresses, got %q twice", first)
	}

	again, _ := bank.AdaptiveQuestion(ctx, []string{"one answer"}, nil, "")
	if first != again {
		t.Fatal("same inputs must produce the same question")
	}
}

func TestBasicQuestionsReturnsCopy(t *testing.T) {
	bank := New()

	first, _ := bank.BasicQuestions(context.Background())
	first[0] = "mutated"
	second, _ := bank.BasicQuestions(context.Background())
	if second[0] == "mutated" {
		t.Fatal("callers must not be able to mutate the bank")
	}
}
