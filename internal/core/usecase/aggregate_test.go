package usecase

import (
	"math"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func TestAggregateEmptyLog(t *testing.T) {
	report := Aggregate(nil)

	if report.TotalScore != 0 || report.MaxScore != 0 || report.Percentage != 0 {
		t.Fatalf("empty log must aggregate to zeros, got %+v", report)
	}
	if report.Feedback == nil || len(report.Feedback) != 0 {
		t.Fatalf("expected empty feedback list, got %v", report.Feedback)
	}
}

func TestAggregateSumsAndPercentage(t *testing.T) {
	responses := []domain.ResponseRecord{
		{Question: "q1", Score: 7},
		{Question: "q2", Score: 0},
		{Question: "q3", Score: 10},
	}
	report := Aggregate(responses)

	if report.TotalScore != 17 {
		t.Fatalf("expected total 17, got %d", report.TotalScore)
	}
	if report.MaxScore != 30 {
		t.Fatalf("expected max 30, got %d", report.MaxScore)
	}
	want := 100 * 17.0 / 30.0
	if math.Abs(report.Percentage-want) > 1e-9 {
		t.Fatalf("expected percentage %.4f, got %.4f", want, report.Percentage)
	}
}

func TestAggregatePreservesOrder(t *testing.T) {
	responses := []domain.ResponseRecord{
		{Question: "first"},
		{Question: "second"},
		{Question: "third"},
	}
	report := Aggregate(responses)

	for i, r := range report.Feedback {
		if r.Question != responses[i].Question {
			t.Fatalf("feedback order changed at %d: %q", i, r.Question)
		}
	}
}

func TestAggregateCopiesTheLog(t *testing.T) {
	responses := []domain.ResponseRecord{{Question: "q1", Score: 5}}
	report := Aggregate(responses)

	responses[0].Score = 0
	if report.Feedback[0].Score != 5 {
		t.Fatal("report must not alias the caller's slice")
	}
}
