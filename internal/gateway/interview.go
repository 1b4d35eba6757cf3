package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lucasv/prepdeck/internal/models"
)

// StartInterviewParams configures a new mock-interview session.
type StartInterviewParams struct {
	UserID  string               `json:"userId"`
	Type    models.InterviewType `json:"type"`
	Topic   string               `json:"topic"`
	Context string               `json:"context,omitempty"`
}

// StartInterviewResult is the backend's answer to a session start: the new
// session identity plus the AI's opening turn.
type StartInterviewResult struct {
	SessionID string `json:"sessionId"`
	AIMessage string `json:"aiMessage"`
}

// MessageResult is the AI reply to one user turn.
type MessageResult struct {
	AIMessage      string `json:"aiMessage"`
	QuestionCount  int    `json:"questionCount"`
	ShouldContinue bool   `json:"shouldContinue"`
}

// TranscriptionResult carries the transcribed user turn and the AI reply.
type TranscriptionResult struct {
	Transcription  string `json:"transcription"`
	AIMessage      string `json:"aiMessage"`
	QuestionCount  int    `json:"questionCount"`
	ShouldContinue bool   `json:"shouldContinue"`
}

// StartInterview creates a new session on the backend.
func (c *Client) StartInterview(ctx context.Context, params StartInterviewParams) (StartInterviewResult, error) {
	var out StartInterviewResult
	err := c.doJSON(ctx, "start_interview", http.MethodPost, "/api/interviews", params, &out)
	return out, err
}

// SendInterviewMessage sends one user turn and returns the AI reply.
func (c *Client) SendInterviewMessage(ctx context.Context, sessionID, text string) (MessageResult, error) {
	var out MessageResult
	path := fmt.Sprintf("/api/interviews/%s/messages", url.PathEscape(sessionID))
	err := c.doJSON(ctx, "send_message", http.MethodPost, path, map[string]string{"text": text}, &out)
	return out, err
}

// TranscribeAudio uploads a recorded audio payload and returns both the
// transcription and the AI reply in one round-trip.
func (c *Client) TranscribeAudio(ctx context.Context, sessionID string, audio []byte) (TranscriptionResult, error) {
	var out TranscriptionResult
	path := fmt.Sprintf("/api/interviews/%s/transcriptions", url.PathEscape(sessionID))
	err := c.doRaw(ctx, "transcribe_audio", http.MethodPost, path, "application/octet-stream", audio, &out)
	return out, err
}

// CompleteInterview ends the session and returns the performance report.
func (c *Client) CompleteInterview(ctx context.Context, sessionID, format string) (models.InterviewFeedback, error) {
	var fb models.InterviewFeedback
	path := fmt.Sprintf("/api/interviews/%s/complete", url.PathEscape(sessionID))
	err := c.doJSON(ctx, "complete_interview", http.MethodPost, path, map[string]string{"format": format}, &fb)
	return fb, err
}

// CancelInterview discards the session on the backend.
func (c *Client) CancelInterview(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/interviews/%s/cancel", url.PathEscape(sessionID))
	return c.doJSON(ctx, "cancel_interview", http.MethodPost, path, nil, nil)
}

// InterviewHistory lists past feedback reports for a user.
func (c *Client) InterviewHistory(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error) {
	params := map[string]string{
		"userId": userID,
		"type":   string(f.Type),
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	var out struct {
		Results []models.InterviewFeedback `json:"results"`
	}
	err := c.doJSON(ctx, "interview_history", http.MethodGet, queryPath("/api/interviews/history", params), nil, &out)
	return out.Results, err
}
