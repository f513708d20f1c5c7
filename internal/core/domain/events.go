package domain

import "time"

// InterviewCompleted is published when a session ends; the worker archives it.
type InterviewCompleted struct {
	Token       string         `json:"token"`
	Branch      string         `json:"branch"`
	Skills      []string       `json:"skills"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
	Report      FeedbackReport `json:"report"`
}
