package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lucasv/prepdeck/internal/models"
)

// GenerateQuiz requests a fresh AI-generated quiz for the given config.
// Config validation happens in the quiz controller before this call.
func (c *Client) GenerateQuiz(ctx context.Context, cfg models.QuizConfig) (models.Quiz, error) {
	var quiz models.Quiz
	err := c.doJSON(ctx, "generate_quiz", http.MethodPost, "/api/quizzes/generate", cfg, &quiz)
	return quiz, err
}

// GetHint fetches the AI hint for one question of an active quiz.
func (c *Client) GetHint(ctx context.Context, quizID, questionID string) (string, error) {
	var out struct {
		Hint string `json:"hint"`
	}
	path := fmt.Sprintf("/api/quizzes/%s/hint", url.PathEscape(quizID))
	body := map[string]string{"questionId": questionID}
	if err := c.doJSON(ctx, "get_hint", http.MethodPost, path, body, &out); err != nil {
		return "", err
	}
	return out.Hint, nil
}

// SubmitQuiz sends the per-question responses and returns the graded result.
func (c *Client) SubmitQuiz(ctx context.Context, quizID string, responses []models.QuizResponse, timeTaken int) (models.QuizResult, error) {
	var result models.QuizResult
	path := fmt.Sprintf("/api/quizzes/%s/submit", url.PathEscape(quizID))
	body := map[string]any{
		"responses": responses,
		"timeTaken": timeTaken,
	}
	err := c.doJSON(ctx, "submit_quiz", http.MethodPost, path, body, &result)
	return result, err
}

// QuizHistory lists past quiz results for a user.
func (c *Client) QuizHistory(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error) {
	params := map[string]string{
		"userId":  userID,
		"subject": f.Subject,
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	var out struct {
		Results []models.QuizResult `json:"results"`
	}
	err := c.doJSON(ctx, "quiz_history", http.MethodGet, queryPath("/api/quizzes/history", params), nil, &out)
	return out.Results, err
}

// ReAttemptQuiz returns a fresh question set under the same quiz identity.
func (c *Client) ReAttemptQuiz(ctx context.Context, quizID string) (models.Quiz, error) {
	var quiz models.Quiz
	path := fmt.Sprintf("/api/quizzes/%s/reattempt", url.PathEscape(quizID))
	err := c.doJSON(ctx, "reattempt_quiz", http.MethodPost, path, nil, &quiz)
	return quiz, err
}

// QuizReview fetches the revealed quiz (correct answers and explanations)
// together with the original submission record.
func (c *Client) QuizReview(ctx context.Context, quizID, submissionID string) (models.QuizReview, error) {
	var review models.QuizReview
	path := fmt.Sprintf("/api/quizzes/%s/review", url.PathEscape(quizID))
	err := c.doJSON(ctx, "quiz_review", http.MethodGet, queryPath(path, map[string]string{"submissionId": submissionID}), nil, &review)
	return review, err
}
