package quiz

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
)

// Phase is the quiz workflow presentation state. Exactly one of the active
// session, result and review is populated at a time.
type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseActive Phase = "active"
	PhaseResult Phase = "result"
	PhaseReview Phase = "review"
)

// session is the mutable state of one quiz attempt.
type session struct {
	quiz      models.Quiz
	answers   map[string]string
	hints     map[string]string
	remaining int // seconds
	autoFired bool
	epoch     uint64
	startedAt time.Time
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	Phase     Phase                    `json:"phase"`
	Epoch     uint64                   `json:"epoch"`
	Quiz      *models.Quiz             `json:"quiz,omitempty"`
	Answers   map[string]string        `json:"answers,omitempty"`
	Hints     map[string]string        `json:"hints,omitempty"`
	Remaining int                      `json:"remaining"`
	Result    *models.QuizResult       `json:"result,omitempty"`
	Review    *models.QuizReview       `json:"review,omitempty"`
	LastError string                   `json:"lastError,omitempty"`
}

// HistoryRefresher schedules a quiz-history refresh after a submission.
type HistoryRefresher interface {
	EnqueueHistoryRefresh(userID string) error
}

// Controller drives the quiz workflow state machine:
// Idle -> (Generate|ReAttempt) -> Active -> (Submit) -> Result -> (Review) ->
// Review -> (ReAttempt) -> Active; Active -> (Cancel) -> Idle.
type Controller struct {
	gw      gateway.QuizGateway
	history HistoryRefresher
	log     *logger.Logger
	now     func() time.Time
	timer   *Countdown

	mu        sync.Mutex
	userID    string
	sess      *session
	result    *models.QuizResult
	review    *models.QuizReview
	lastError string
	epochSeq  uint64
}

// NewController creates a quiz Controller ticking at the given interval.
// history may be nil when no background refresh is wanted.
func NewController(gw gateway.QuizGateway, history HistoryRefresher, tickInterval time.Duration) *Controller {
	return NewControllerWithClock(gw, history, tickInterval, time.Now)
}

// NewControllerWithClock allows deterministic timestamps in tests.
func NewControllerWithClock(gw gateway.QuizGateway, history HistoryRefresher, tickInterval time.Duration, now func() time.Time) *Controller {
	return &Controller{
		gw:      gw,
		history: history,
		log:     logger.Default().WithPrefix("quiz"),
		now:     now,
		timer:   NewCountdown(tickInterval),
	}
}

func validateConfig(cfg models.QuizConfig) error {
	if strings.TrimSpace(cfg.Subject) == "" {
		return errors.NewValidationError("subject", "cannot be empty")
	}
	if cfg.NumberOfQuestions < models.MinQuestionCount || cfg.NumberOfQuestions > models.MaxQuestionCount {
		return errors.NewValidationError("numberOfQuestions", "must be between 5 and 20")
	}
	if cfg.TimeLimit < models.MinTimeLimit || cfg.TimeLimit > models.MaxTimeLimit {
		return errors.NewValidationError("timeLimit", "must be between 5 and 60 minutes")
	}
	return nil
}

// Generate validates the config locally, then requests a fresh quiz and
// enters the active phase. On a validation error no network call is made; on
// a backend error the current phase is left unchanged.
func (c *Controller) Generate(ctx context.Context, cfg models.QuizConfig) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	if err := validateConfig(cfg); err != nil {
		log.Warn("rejected quiz config: %v", err)
		return c.State(), err
	}

	quiz, err := c.gw.GenerateQuiz(ctx, cfg)
	if err != nil {
		log.Error("quiz generation failed: %v", err)
		c.setError(err)
		return c.State(), err
	}

	timeLimit := quiz.TimeLimit
	if timeLimit == 0 {
		timeLimit = cfg.TimeLimit
		quiz.TimeLimit = timeLimit
	}

	c.mu.Lock()
	c.userID = cfg.UserID
	c.installSessionLocked(quiz, timeLimit)
	c.mu.Unlock()

	log.Info("quiz session started: quiz_id=%s, questions=%d, time_limit=%dm", quiz.ID, len(quiz.Questions), timeLimit)
	return c.State(), nil
}

// installSessionLocked replaces all presentation state with a fresh active
// session. Caller holds c.mu.
func (c *Controller) installSessionLocked(quiz models.Quiz, timeLimit int) {
	c.epochSeq++
	c.sess = &session{
		quiz:      quiz,
		answers:   make(map[string]string),
		hints:     make(map[string]string),
		remaining: timeLimit * 60,
		epoch:     c.epochSeq,
		startedAt: c.now(),
	}
	c.result = nil
	c.review = nil
	c.lastError = ""
}

// SelectAnswer records the chosen option for a question, overwriting any
// prior answer. Pure local mutation, no network call.
func (c *Controller) SelectAnswer(questionID, option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return errors.NewNoActiveSessionError("select answer")
	}
	c.sess.answers[questionID] = option
	return nil
}

// RequestHint fetches the AI hint for a question. Idempotent per question: a
// hint already present is returned without another backend call.
func (c *Controller) RequestHint(ctx context.Context, questionID string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return "", errors.NewNoActiveSessionError("request hint")
	}
	if hint, ok := c.sess.hints[questionID]; ok {
		c.mu.Unlock()
		log.Debug("hint already fetched for question %s", questionID)
		return hint, nil
	}
	quizID := c.sess.quiz.ID
	epoch := c.sess.epoch
	c.mu.Unlock()

	hint, err := c.gw.GetHint(ctx, quizID, questionID)
	if err != nil {
		log.Error("hint request failed: %v", err)
		c.setError(err)
		return "", err
	}

	c.mu.Lock()
	if c.sess != nil && c.sess.epoch == epoch {
		c.sess.hints[questionID] = hint
	}
	c.mu.Unlock()
	return hint, nil
}

// Tick decrements remaining time by one second, floored at zero, and fires
// the automatic submission exactly once when remaining transitions from >0
// to 0. Extra ticks delivered after zero are no-ops.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return
	}
	if c.sess.remaining > 0 {
		c.sess.remaining--
	}
	fire := c.sess.remaining == 0 && !c.sess.autoFired
	var timeTaken int
	if fire {
		// Guard against re-entrant timer callbacks double-submitting.
		c.sess.autoFired = true
		timeTaken = c.sess.quiz.TimeLimit * 60
	}
	c.mu.Unlock()

	if fire {
		logger.FromContext(ctx).WithPrefix("quiz").Info("time expired, auto-submitting")
		if _, err := c.Submit(ctx, timeTaken); err != nil {
			logger.FromContext(ctx).WithPrefix("quiz").Error("auto-submit failed: %v", err)
		}
	}
}

// Submit builds one response per question (empty answer when unanswered),
// sends them to the backend, and on success replaces the active session with
// the result and schedules a history refresh. On failure the session stays
// active so the user can retry.
func (c *Controller) Submit(ctx context.Context, timeTaken int) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("submit")
	}
	quizID := c.sess.quiz.ID
	epoch := c.sess.epoch
	userID := c.userID
	responses := make([]models.QuizResponse, 0, len(c.sess.quiz.Questions))
	for _, q := range c.sess.quiz.Questions {
		_, hintUsed := c.sess.hints[q.ID]
		responses = append(responses, models.QuizResponse{
			QuestionID: q.ID,
			Answer:     c.sess.answers[q.ID],
			HintUsed:   hintUsed,
		})
	}
	c.mu.Unlock()

	result, err := c.gw.SubmitQuiz(ctx, quizID, responses, timeTaken)
	if err != nil {
		log.Error("quiz submission failed: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	// A newer session may have been installed while the call was in flight;
	// a stale submission must not clobber it.
	if c.sess != nil && c.sess.epoch == epoch {
		c.result = &result
		c.sess = nil
		c.review = nil
		c.lastError = ""
	}
	c.mu.Unlock()

	if c.history != nil && userID != "" {
		if err := c.history.EnqueueHistoryRefresh(userID); err != nil {
			log.Warn("failed to enqueue history refresh: %v", err)
		}
	}

	log.Info("quiz submitted: quiz_id=%s, score=%d/%d", quizID, result.Score, result.TotalQuestions)
	return c.State(), nil
}

// Cancel discards the active session without any network call. Confirmation
// is the caller's concern.
func (c *Controller) Cancel() Snapshot {
	c.mu.Lock()
	c.sess = nil
	c.lastError = ""
	c.mu.Unlock()
	c.log.Info("quiz session cancelled")
	return c.State()
}

// Review fetches the revealed quiz and the submission record, replacing the
// result with the review view.
func (c *Controller) Review(ctx context.Context) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	c.mu.Lock()
	if c.result == nil {
		c.mu.Unlock()
		return c.State(), errors.NewNoActiveSessionError("review")
	}
	quizID := c.result.QuizID
	submissionID := c.result.SubmissionID
	c.mu.Unlock()

	review, err := c.gw.QuizReview(ctx, quizID, submissionID)
	if err != nil {
		log.Error("review fetch failed: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	c.review = &review
	c.result = nil
	c.lastError = ""
	c.mu.Unlock()
	return c.State(), nil
}

// ReAttempt requests a fresh question set under the same quiz identity and
// atomically installs it as the new active session. The installed session
// carries a new epoch so a stale ClearIfCurrent cannot wipe it.
func (c *Controller) ReAttempt(ctx context.Context, quizID string) (Snapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	if quizID == "" {
		return c.State(), errors.NewValidationError("quizId", "cannot be empty")
	}

	quiz, err := c.gw.ReAttemptQuiz(ctx, quizID)
	if err != nil {
		log.Error("re-attempt failed: %v", err)
		c.setError(err)
		return c.State(), err
	}

	c.mu.Lock()
	c.installSessionLocked(quiz, quiz.TimeLimit)
	c.mu.Unlock()

	log.Info("re-attempt started: quiz_id=%s, questions=%d", quiz.ID, len(quiz.Questions))
	return c.State(), nil
}

// ClearIfCurrent clears the active session only when epoch still identifies
// it. A clear issued against a previous session is a no-op, so it cannot
// undo a re-attempt that installed a newer session in the meantime.
func (c *Controller) ClearIfCurrent(epoch uint64) bool {
	c.mu.Lock()
	if c.sess == nil || c.sess.epoch != epoch {
		c.mu.Unlock()
		return false
	}
	c.sess = nil
	c.lastError = ""
	c.mu.Unlock()
	return true
}

// Reset unconditionally returns the controller to the idle phase.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.sess = nil
	c.result = nil
	c.review = nil
	c.lastError = ""
	c.mu.Unlock()
}

// StartTimer begins delivering ticks to the controller until StopTimer is
// called or ctx is cancelled. The countdown outlives individual sessions:
// Tick is a no-op while no session is active, so a session installed after
// an earlier one ended keeps counting down.
func (c *Controller) StartTimer(ctx context.Context) {
	c.timer.Start(ctx, c.Tick)
}

// StopTimer halts the countdown on shutdown. Safe to call at any time.
func (c *Controller) StopTimer() {
	c.timer.Stop()
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

	snap := Snapshot{Phase: PhaseIdle, LastError: c.lastError}
	switch {
	case c.sess != nil:
		snap.Phase = PhaseActive
		snap.Epoch = c.sess.epoch
		quiz := c.sess.quiz
		snap.Quiz = &quiz
		snap.Remaining = c.sess.remaining
		snap.Answers = copyMap(c.sess.answers)
		snap.Hints = copyMap(c.sess.hints)
	case c.result != nil:
		snap.Phase = PhaseResult
		result := *c.result
		snap.Result = &result
	case c.review != nil:
		snap.Phase = PhaseReview
		review := *c.review
		snap.Review = &review
	}
	return snap
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
