package models

import "time"

// InterviewType distinguishes the two supported interview styles.
type InterviewType string

const (
	InterviewTechnical    InterviewType = "technical"
	InterviewNonTechnical InterviewType = "non-technical"
)

// Valid reports whether t is a supported interview type.
func (t InterviewType) Valid() bool {
	return t == InterviewTechnical || t == InterviewNonTechnical
}

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerAI   Speaker = "ai"
)

// InterviewStatus is the lifecycle state of a live session: initialized
// until the candidate's first turn, in progress after. Completion and
// cancellation drop the session rather than marking it.
type InterviewStatus string

const (
	InterviewInitialized InterviewStatus = "initialized"
	InterviewInProgress  InterviewStatus = "in_progress"
)

// ConversationTurn is one entry in the ordered conversation log. FromAudio
// marks user turns that originated from audio transcription.
type ConversationTurn struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	FromAudio bool      `json:"fromAudio,omitempty"`
}

// InterviewSession holds one in-flight mock interview.
type InterviewSession struct {
	ID             string             `json:"id"`
	Type           InterviewType      `json:"type"`
	Topic          string             `json:"topic"`
	Turns          []ConversationTurn `json:"turns"`
	QuestionCount  int                `json:"questionCount"`
	ShouldContinue bool               `json:"shouldContinue"`
	Status         InterviewStatus    `json:"status"`
	StartedAt      time.Time          `json:"startedAt"`
}

// InterviewFeedback is the performance report produced on completion. It
// persists independently of the session until explicitly cleared.
type InterviewFeedback struct {
	SessionID         string        `json:"sessionId"`
	Type              InterviewType `json:"type,omitempty"`
	TechnicalAccuracy float64       `json:"technicalAccuracy"`
	Communication     float64       `json:"communication"`
	ProblemSolving    float64       `json:"problemSolving"`
	OverallScore      float64       `json:"overallScore"`
	ConfidenceLevel   float64       `json:"confidenceLevel"`
	Summary           string        `json:"summary"`
	Strengths         []string      `json:"strengths"`
	Improvements      []string      `json:"improvements"`
	Recommendations   []string      `json:"recommendations"`
	Duration          int           `json:"duration"` // seconds
	TotalQuestions    int           `json:"totalQuestions"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// InterviewHistoryFilter narrows interview history queries.
type InterviewHistoryFilter struct {
	Type  InterviewType `json:"type,omitempty"`
	Limit int           `json:"limit,omitempty"`
}
