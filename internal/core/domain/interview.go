package domain

import "time"

type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusEnded      SessionStatus = "ended"
)

type QuestionOrigin string

const (
	OriginBasic     QuestionOrigin = "basic"
	OriginTechnical QuestionOrigin = "technical"
	OriginAdaptive  QuestionOrigin = "adaptive"
)

// MaxAnswerScore is the per-answer score ceiling; totals are answered*10.
const MaxAnswerScore = 10

// Question is one interview prompt, immutable once issued.
type Question struct {
	Text     string         `json:"text"`
	Origin   QuestionOrigin `json:"origin"`
	Sequence int            `json:"sequence"`
}

// Evaluation is the grading outcome for a single answer.
type Evaluation struct {
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Suggestion string `json:"suggestion"`
}

// ResponseRecord captures one answered question. Transcript is the raw
// browser transcript; the empty string is the explicit no-speech sentinel.
type ResponseRecord struct {
	Question   string `json:"question"`
	Transcript string `json:"response"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Suggestion string `json:"suggestion"`
}

// Session is the full state of one interview run, keyed by Token.
type Session struct {
	Token     string
	Status    SessionStatus
	Skills    []string
	Branch    string
	Queue     []Question
	Pending   *Question
	Asked     int
	Responses []ResponseRecord
	Report    *FeedbackReport
	StartedAt time.Time
	EndedAt   time.Time
}

// FeedbackReport is the final summary produced at end of interview.
type FeedbackReport struct {
	TotalScore int              `json:"totalScore"`
	MaxScore   int              `json:"maxScore"`
	Percentage float64          `json:"percentage"`
	Feedback   []ResponseRecord `json:"feedback"`
}
