package interview

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
)

// HistoryRefresher schedules an interview-history refresh after completion.
type HistoryRefresher interface {
	EnqueueHistoryRefresh(userID string) error
}

// Snapshot is a consistent copy of the interview workflow state.
type Snapshot struct {
	Session      *models.InterviewSession  `json:"session,omitempty"`
	Feedback     *models.InterviewFeedback `json:"feedback,omitempty"`
	Recording    bool                      `json:"recording"`
	Transcribing bool                      `json:"transcribing"`
	LastError    string                    `json:"lastError,omitempty"`
}

// Controller drives the mock-interview state machine:
// NoSession -> (Start) -> Active -> (SendMessage|TranscribeAudio)* -> Active
// -> (Complete) -> Feedback; Active -> (Cancel) -> NoSession.
//
// User turns are appended optimistically before the backend confirms. If the
// call fails the turn stays and the error is surfaced; there is no rollback.
type Controller struct {
	gw      gateway.InterviewGateway
	history HistoryRefresher
	log     *logger.Logger
	now     func() time.Time
	newID   func() string

	mu           sync.Mutex
	userID       string
	sess         *models.InterviewSession
	feedback     *models.InterviewFeedback
	recording    bool
	transcribing bool
	lastError    string
}

// NewController creates an interview Controller. history may be nil when no
// background refresh is wanted.
func NewController(gw gateway.InterviewGateway, history HistoryRefresher) *Controller {
	return NewControllerWithClock(gw, history, time.Now)
}

// NewControllerWithClock allows deterministic timestamps in tests.
func NewControllerWithClock(gw gateway.InterviewGateway, history HistoryRefresher, now func() time.Time) *Controller {
	return &Controller{
		gw:      gw,
		history: history,
		log:     logger.Default().WithPrefix("interview"),
		now:     now,
		newID:   uuid.NewString,
	}
}

// Start validates the parameters locally, creates a session on the backend
// and seeds the conversation with the AI's opening turn. Any stale feedback
// from a previous interview is cleared.
func (c *Controller) Start(ctx context.Context, params gateway.StartInterviewParams) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("interview")

	params.Topic = strings.TrimSpace(params.Topic)
	if params.Topic == "" {
		return c.State(), errors.NewValidationError("topic", "cannot be empty")
	}
	if !params.Type.Valid() {
		return c.State(), errors.NewValidationError("type", "must be technical or non-technical")
	}

	res, err := c.gw.StartInterview(ctx, params)
	if err != nil {
		log.Error("failed to start interview: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	c.userID = params.UserID
	c.sess = &models.InterviewSession{
		ID:             res.SessionID,
		Type:           params.Type,
		Topic:          params.Topic,
		QuestionCount:  1,
		ShouldContinue: true,
		Status:         models.InterviewInitialized,
		StartedAt:      c.now(),
	}
	c.appendTurnLocked(models.SpeakerAI, res.AIMessage, false)
	c.feedback = nil
	c.recording = false
	c.lastError = ""
	c.mu.Unlock()

	log.Info("interview started: session_id=%s, type=%s, topic=%s", res.SessionID, params.Type, params.Topic)
	return c.State(), nil
}

// SendMessage appends the user turn immediately, then sends it to the
// backend. On success the AI reply is appended and the question count and
// continuation flag are updated. On failure the user turn is retained and
// the error recorded; callers may retry by sending again.
func (c *Controller) SendMessage(ctx context.Context, text string) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("interview")

	text = strings.TrimSpace(text)
	if text == "" {
		return c.State(), errors.NewValidationError("text", "cannot be empty")
	}

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("send message")
	}
	if c.recording {
		c.mu.Unlock()
		return c.State(), errors.NewValidationError("text", "cannot send while recording is active")
	}
	sessionID := c.sess.ID
	c.appendTurnLocked(models.SpeakerUser, text, false)
	c.sess.Status = models.InterviewInProgress
	c.mu.Unlock()

	res, err := c.gw.SendInterviewMessage(ctx, sessionID, text)
	if err != nil {
		log.Error("message delivery failed, user turn retained: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	if c.sess != nil && c.sess.ID == sessionID {
		c.appendTurnLocked(models.SpeakerAI, res.AIMessage, false)
		c.sess.QuestionCount = res.QuestionCount
		c.sess.ShouldContinue = res.ShouldContinue
		c.lastError = ""
	}
	c.mu.Unlock()
	return c.State(), nil
}

// TranscribeAudio uploads the recorded audio and, on success, appends the
// transcribed user turn (flagged audio-derived) and the AI reply in one
// update. On failure nothing is appended. Only one transcription may be in
// flight at a time.
func (c *Controller) TranscribeAudio(ctx context.Context, audio []byte) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("interview")

	if len(audio) == 0 {
		return c.State(), errors.NewValidationError("audio", "cannot be empty")
	}

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("transcribe audio")
	}
	if c.transcribing {
		c.mu.Unlock()
		return c.State(), errors.NewValidationError("audio", "a transcription is already in progress")
	}
	c.transcribing = true
	sessionID := c.sess.ID
	c.mu.Unlock()

	res, err := c.gw.TranscribeAudio(ctx, sessionID, audio)

	c.mu.Lock()
	c.transcribing = false
	if err != nil {
		c.lastError = err.Error()
		c.mu.Unlock()
		log.Error("transcription failed: %v", err)
		return c.State(), err
	}
	if c.sess != nil && c.sess.ID == sessionID {
		c.appendTurnLocked(models.SpeakerUser, res.Transcription, true)
		c.appendTurnLocked(models.SpeakerAI, res.AIMessage, false)
		c.sess.Status = models.InterviewInProgress
		c.sess.QuestionCount = res.QuestionCount
		c.sess.ShouldContinue = res.ShouldContinue
		c.lastError = ""
	}
	c.mu.Unlock()
	return c.State(), nil
}

// Complete ends the interview. On success the session is atomically replaced
// by the feedback report and a history refresh is scheduled.
func (c *Controller) Complete(ctx context.Context, format string) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("interview")

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("complete interview")
	}
	sessionID := c.sess.ID
	userID := c.userID
	c.mu.Unlock()

	fb, err := c.gw.CompleteInterview(ctx, sessionID, format)
	if err != nil {
		log.Error("failed to complete interview: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	c.feedback = &fb
	c.sess = nil
	c.recording = false
	c.lastError = ""
	c.mu.Unlock()

	if c.history != nil {
		if err := c.history.EnqueueHistoryRefresh(userID); err != nil {
			log.Warn("failed to enqueue history refresh: %v", err)
		}
	}

	log.Info("interview completed: session_id=%s, overall_score=%.1f", sessionID, fb.OverallScore)
	return c.State(), nil
}

// Cancel discards the active session. Feedback, if any, is not touched.
func (c *Controller) Cancel(ctx context.Context) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("interview")

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("cancel interview")
	}
	sessionID := c.sess.ID
	c.mu.Unlock()

	if err := c.gw.CancelInterview(ctx, sessionID); err != nil {
		log.Error("failed to cancel interview: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	c.sess = nil
	c.recording = false
	c.lastError = ""
	c.mu.Unlock()

	log.Info("interview cancelled: session_id=%s", sessionID)
	return c.State(), nil
}

// SetRecording toggles the exclusive recording mode. While recording, text
// submission is disabled; stopping recording is followed by TranscribeAudio.
func (c *Controller) SetRecording(active bool) Snapshot {
	c.mu.Lock()
	c.recording = active
	c.mu.Unlock()
	return c.State()
}

// ClearFeedback discards the feedback report. Independent of the session so
// a completed report stays viewable until the user starts a new interview.
func (c *Controller) ClearFeedback() {
	c.mu.Lock()
	c.feedback = nil
	c.mu.Unlock()
}

// ClearSession discards the session without a backend call. Feedback
// deliberately survives.
func (c *Controller) ClearSession() {
	c.mu.Lock()
	c.sess = nil
	c.recording = false
	c.lastError = ""
	c.mu.Unlock()
}

// appendTurnLocked appends a conversation turn with a strictly increasing
// timestamp. Caller holds c.mu and guarantees c.sess != nil.
func (c *Controller) appendTurnLocked(speaker models.Speaker, text string, fromAudio bool) {
	ts := c.now()
	if n := len(c.sess.Turns); n > 0 && !ts.After(c.sess.Turns[n-1].Timestamp) {
		ts = c.sess.Turns[n-1].Timestamp.Add(time.Millisecond)
	}
	c.sess.Turns = append(c.sess.Turns, models.ConversationTurn{
		ID:        c.newID(),
		Speaker:   speaker,
		Text:      text,
		Timestamp: ts,
		FromAudio: fromAudio,
	})
}

func (c *Controller) setError(err error) {
	c.mu.Lock()
	c.lastError = err.Error()
	c.mu.Unlock()
}

// State returns a consistent snapshot of the workflow state.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Recording:    c.recording,
		Transcribing: c.transcribing,
		LastError:    c.lastError,
	}
	if c.sess != nil {
		sess := *c.sess
		sess.Turns = append([]models.ConversationTurn(nil), c.sess.Turns...)
		snap.Session = &sess
	}
	if c.feedback != nil {
		fb := *c.feedback
		snap.Feedback = &fb
	}
	return snap
}
