package models

import "time"

// Quiz generation constraints enforced locally before any backend call.
const (
	MinQuestionCount = 5
	MaxQuestionCount = 20
	MinTimeLimit     = 5  // minutes
	MaxTimeLimit     = 60 // minutes
)

// QuizConfig is the user-provided configuration for quiz generation. UserID
// is filled in server-side from the request identity, never by the client.
type QuizConfig struct {
	UserID            string `json:"-"`
	Subject           string `json:"subject"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
	Difficulty        string `json:"difficulty"`
	TimeLimit         int    `json:"timeLimit"` // minutes
}

// Question models a single multiple-choice question. CorrectAnswer and
// Explanation are withheld by the backend until review.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions under one quiz identity.
type Quiz struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Difficulty string     `json:"difficulty"`
	TimeLimit  int        `json:"timeLimit"` // minutes
	Questions  []Question `json:"questions"`
}

// QuizResponse is one per-question answer sent on submission. Answer is the
// empty string when the question was left unanswered.
type QuizResponse struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	HintUsed   bool   `json:"hintUsed"`
}

// QuizResult is the read-only outcome of a submission.
type QuizResult struct {
	QuizID         string    `json:"quizId"`
	SubmissionID   string    `json:"submissionId"`
	Subject        string    `json:"subject"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	HintsUsed      int       `json:"hintsUsed"`
	Tips           []string  `json:"tips"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// SubmissionAnswer is the graded record of one answered question.
type SubmissionAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
	HintUsed   bool   `json:"hintUsed"`
}

// Submission is the stored record of a completed attempt.
type Submission struct {
	ID          string             `json:"id"`
	QuizID      string             `json:"quizId"`
	Answers     []SubmissionAnswer `json:"answers"`
	TimeTaken   int                `json:"timeTaken"` // seconds
	SubmittedAt time.Time          `json:"submittedAt"`
}

// QuizReview pairs the revealed quiz definition with the submission record.
type QuizReview struct {
	Quiz       Quiz       `json:"quiz"`
	Submission Submission `json:"submission"`
}

// QuizHistoryFilter narrows quiz history queries.
type QuizHistoryFilter struct {
	Subject string `json:"subject,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}
