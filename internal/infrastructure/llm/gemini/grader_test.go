package gemini

import (
	"context"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func TestGradeParsesStrictJSON(t *testing.T) {
	fake := &fakeTextGenerator{output: `{"score": 7, "feedback": "Solid answer.", "suggestion": "Add an example."}`}
	grader := &Grader{gen: fake}

	eval, err := grader.Grade(context.Background(), "my answer", "the question")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	want := domain.Evaluation{Score: 7, Feedback: "Solid answer.", Suggestion: "Add an example."}
	if eval != want {
		t.Fatalf("unexpected evaluation: %+v", eval)
	}
}

func TestGradeUnwrapsMarkdownFence(t *testing.T) {
	fake := &fakeTextGenerator{output: "```json\n{\"score\": 4, \"feedback\": \"Thin.\", \"suggestion\": \"More depth.\"}\n```"}
	grader := &Grader{gen: fake}

	eval, err := grader.Grade(context.Background(), "answer", "question")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if eval.Score != 4 || eval.Feedback != "Thin." {
		t.Fatalf("unexpected evaluation: %+v", eval)
	}
}

func TestGradeIgnoresSurroundingProse(t *testing.T) {
	fake := &fakeTextGenerator{output: `Here is my grading: {"score": 6, "feedback": "Fine.", "suggestion": "Tighten it."} Hope that helps!`}
	grader := &Grader{gen: fake}

	eval, err := grader.Grade(context.Background(), "answer", "question")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if eval.Score != 6 {
		t.Fatalf("expected score 6, got %d", eval.Score)
	}
}

func TestGradeClampsScore(t *testing.T) {
	cases := map[string]int{
		`{"score": 99, "feedback": "f", "suggestion": "s"}`: domain.MaxAnswerScore,
		`{"score": -3, "feedback": "f", "suggestion": "s"}`: 0,
	}
	for output, want := range cases {
		grader := &Grader{gen: &fakeTextGenerator{output: output}}
		eval, err := grader.Grade(context.Background(), "answer", "question")
		if err != nil {
			t.Fatalf("grade %q: %v", output, err)
		}
		if eval.Score != want {
			t.Fatalf("grade %q: score %d, want %d", output, eval.Score, want)
		}
	}
}

func TestGradeFillsMissingFeedback(t *testing.T) {
	grader := &Grader{gen: &fakeTextGenerator{output: `{"score": 5}`}}

	eval, err := grader.Grade(context.Background(), "answer", "question")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if eval.Feedback == "" || eval.Suggestion == "" {
		t.Fatalf("feedback and suggestion must never be empty: %+v", eval)
	}
}

func TestGradeMalformedOutputErrors(t *testing.T) {
	grader := &Grader{gen: &fakeTextGenerator{output: "I would give this a seven out of ten."}}

	if _, err := grader.Grade(context.Background(), "answer", "question"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}
