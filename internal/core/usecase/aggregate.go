package usecase

import "github.com/vintervu/interview-server/internal/core/domain"

// Aggregate reduces a response log into the final report. An empty log yields
// zero totals and an empty feedback list, never an error.
func Aggregate(responses []domain.ResponseRecord) domain.FeedbackReport {
	report := domain.FeedbackReport{
		MaxScore: len(responses) * domain.MaxAnswerScore,
		Feedback: make([]domain.ResponseRecord, len(responses)),
	}
	copy(report.Feedback, responses)
	for _, response := range responses {
		report.TotalScore += response.Score
	}
	if report.MaxScore > 0 {
		report.Percentage = 100 * float64(report.TotalScore) / float64(report.MaxScore)
	}
	return report
}
