package interview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/interview"
	"github.com/lucasv/prepdeck/internal/models"
	"github.com/lucasv/prepdeck/internal/testutil/mocks"
)

func startedController(t *testing.T, gw *mocks.MockInterviewGateway, history interview.HistoryRefresher) *interview.Controller {
	t.Helper()
	gw.On("StartInterview", mock.Anything, mock.Anything).Return(gateway.StartInterviewResult{
		SessionID: "sess-1",
		AIMessage: "Tell me about yourself.",
	}, nil).Once()

	c := interview.NewController(gw, history)
	_, err := c.Start(context.Background(), gateway.StartInterviewParams{
		UserID: "u1",
		Type:   models.InterviewTechnical,
		Topic:  "Go concurrency",
	})
	require.NoError(t, err)
	return c
}

func TestStart_ValidationSkipsNetwork(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := interview.NewController(gw, nil)

	_, err := c.Start(context.Background(), gateway.StartInterviewParams{Type: models.InterviewTechnical, Topic: "   "})
	assert.True(t, apperrors.IsValidation(err))

	_, err = c.Start(context.Background(), gateway.StartInterviewParams{Type: "casual", Topic: "Go"})
	assert.True(t, apperrors.IsValidation(err))

	gw.AssertNotCalled(t, "StartInterview", mock.Anything, mock.Anything)
}

func TestStart_SeedsAIOpeningTurn(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	snap := c.State()
	require.NotNil(t, snap.Session)
	assert.Equal(t, "sess-1", snap.Session.ID)
	assert.Equal(t, models.InterviewInitialized, snap.Session.Status)
	assert.Equal(t, 1, snap.Session.QuestionCount)
	assert.True(t, snap.Session.ShouldContinue)
	require.Len(t, snap.Session.Turns, 1)
	assert.Equal(t, models.SpeakerAI, snap.Session.Turns[0].Speaker)
	assert.Equal(t, "Tell me about yourself.", snap.Session.Turns[0].Text)
}

func TestStart_ClearsPreviousFeedback(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("CompleteInterview", mock.Anything, "sess-1", "detailed").
		Return(models.InterviewFeedback{SessionID: "sess-1", OverallScore: 8.5}, nil)
	_, err := c.Complete(context.Background(), "detailed")
	require.NoError(t, err)
	require.NotNil(t, c.State().Feedback)

	gw.On("StartInterview", mock.Anything, mock.Anything).Return(gateway.StartInterviewResult{
		SessionID: "sess-2",
		AIMessage: "Ready for round two?",
	}, nil)
	_, err = c.Start(context.Background(), gateway.StartInterviewParams{
		Type:  models.InterviewTechnical,
		Topic: "Go",
	})
	require.NoError(t, err)

	snap := c.State()
	assert.Nil(t, snap.Feedback, "starting a new interview must clear old feedback")
	assert.Equal(t, "sess-2", snap.Session.ID)
}

func TestSendMessage_AppendsBothTurnsOnSuccess(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("SendInterviewMessage", mock.Anything, "sess-1", "I use goroutines daily.").
		Return(gateway.MessageResult{AIMessage: "Great, tell me about channels.", QuestionCount: 2, ShouldContinue: true}, nil)

	snap, err := c.SendMessage(context.Background(), "  I use goroutines daily.  ")
	require.NoError(t, err)
	require.Len(t, snap.Session.Turns, 3)
	assert.Equal(t, models.SpeakerUser, snap.Session.Turns[1].Speaker)
	assert.Equal(t, models.SpeakerAI, snap.Session.Turns[2].Speaker)
	assert.Equal(t, 2, snap.Session.QuestionCount)
}

func TestStatus_InProgressAfterFirstCandidateTurn(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)
	assert.Equal(t, models.InterviewInitialized, c.State().Session.Status)

	gw.On("SendInterviewMessage", mock.Anything, "sess-1", "hi").
		Return(gateway.MessageResult{AIMessage: "ok", QuestionCount: 2, ShouldContinue: true}, nil)

	snap, err := c.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, models.InterviewInProgress, snap.Session.Status)
}

func TestSendMessage_FailureRetainsUserTurn(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("SendInterviewMessage", mock.Anything, "sess-1", "hello").
		Return(gateway.MessageResult{}, errors.New("backend down"))

	snap, err := c.SendMessage(context.Background(), "hello")
	assert.Error(t, err)
	// Optimistic append: the user turn stays even though delivery failed.
	require.Len(t, snap.Session.Turns, 2)
	assert.Equal(t, models.SpeakerUser, snap.Session.Turns[1].Speaker)
	assert.Equal(t, "hello", snap.Session.Turns[1].Text)
	assert.NotEmpty(t, snap.LastError)
}

func TestSendMessage_BlockedWhileRecording(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	c.SetRecording(true)
	_, err := c.SendMessage(context.Background(), "hello")
	assert.True(t, apperrors.IsValidation(err))
	gw.AssertNotCalled(t, "SendInterviewMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscribeAudio_AllOrNothing(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("TranscribeAudio", mock.Anything, "sess-1", mock.Anything).
		Return(gateway.TranscriptionResult{}, errors.New("transcription failed")).Once()

	snap, err := c.TranscribeAudio(context.Background(), []byte("audio-bytes"))
	assert.Error(t, err)
	require.Len(t, snap.Session.Turns, 1, "failed transcription must append nothing")
	assert.False(t, snap.Transcribing)

	gw.On("TranscribeAudio", mock.Anything, "sess-1", mock.Anything).
		Return(gateway.TranscriptionResult{
			Transcription:  "I said something",
			AIMessage:      "Interesting, go on.",
			QuestionCount:  2,
			ShouldContinue: true,
		}, nil)

	snap, err = c.TranscribeAudio(context.Background(), []byte("audio-bytes"))
	require.NoError(t, err)
	require.Len(t, snap.Session.Turns, 3, "successful transcription appends user and AI turns together")
	assert.True(t, snap.Session.Turns[1].FromAudio)
	assert.Equal(t, models.SpeakerAI, snap.Session.Turns[2].Speaker)
}

func TestTranscribeAudio_EmptyAudio(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	_, err := c.TranscribeAudio(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))
	gw.AssertNotCalled(t, "TranscribeAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_NoSession(t *testing.T) {
	c := interview.NewController(new(mocks.MockInterviewGateway), nil)
	_, err := c.Complete(context.Background(), "detailed")
	assert.True(t, apperrors.IsNoActiveSession(err))
}

func TestComplete_SwapsSessionForFeedbackAndQueuesRefresh(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueHistoryRefresh", "u1").Return(nil)

	c := startedController(t, gw, queue)

	gw.On("CompleteInterview", mock.Anything, "sess-1", "detailed").
		Return(models.InterviewFeedback{SessionID: "sess-1", OverallScore: 7.2}, nil)

	snap, err := c.Complete(context.Background(), "detailed")
	require.NoError(t, err)
	assert.Nil(t, snap.Session)
	require.NotNil(t, snap.Feedback)
	assert.InDelta(t, 7.2, snap.Feedback.OverallScore, 0.001)
	queue.AssertExpectations(t)
}

func TestComplete_FailureKeepsSession(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("CompleteInterview", mock.Anything, "sess-1", "detailed").
		Return(models.InterviewFeedback{}, errors.New("backend down"))

	snap, err := c.Complete(context.Background(), "detailed")
	assert.Error(t, err)
	require.NotNil(t, snap.Session, "failed completion must keep the session")
	assert.Nil(t, snap.Feedback)
}

func TestCancel_DropsSessionKeepsFeedbackUntouched(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("CancelInterview", mock.Anything, "sess-1").Return(nil)

	snap, err := c.Cancel(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.Session)
}

func TestClearSession_FeedbackSurvives(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	gw.On("CompleteInterview", mock.Anything, "sess-1", "").
		Return(models.InterviewFeedback{SessionID: "sess-1"}, nil)
	_, err := c.Complete(context.Background(), "")
	require.NoError(t, err)

	c.ClearSession()
	snap := c.State()
	assert.Nil(t, snap.Session)
	assert.NotNil(t, snap.Feedback, "feedback outlives the session until explicitly cleared")

	c.ClearFeedback()
	assert.Nil(t, c.State().Feedback)
}

func TestTurnTimestamps_StrictlyIncreasing(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	gw.On("StartInterview", mock.Anything, mock.Anything).Return(gateway.StartInterviewResult{
		SessionID: "sess-1",
		AIMessage: "Hi",
	}, nil)
	gw.On("SendInterviewMessage", mock.Anything, "sess-1", mock.Anything).
		Return(gateway.MessageResult{AIMessage: "ok", QuestionCount: 2, ShouldContinue: true}, nil)

	// Frozen clock forces the tie-break path for every appended turn.
	frozen := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	c := interview.NewControllerWithClock(gw, nil, func() time.Time { return frozen })

	_, err := c.Start(context.Background(), gateway.StartInterviewParams{
		Type:  models.InterviewTechnical,
		Topic: "Go",
	})
	require.NoError(t, err)
	_, err = c.SendMessage(context.Background(), "first")
	require.NoError(t, err)
	snap, err := c.SendMessage(context.Background(), "second")
	require.NoError(t, err)

	turns := snap.Session.Turns
	require.Len(t, turns, 5)
	for i := 1; i < len(turns); i++ {
		assert.True(t, turns[i].Timestamp.After(turns[i-1].Timestamp),
			"turn %d timestamp must be strictly after turn %d", i, i-1)
	}
}

func TestState_DeepCopiesTurns(t *testing.T) {
	gw := new(mocks.MockInterviewGateway)
	c := startedController(t, gw, nil)

	snap := c.State()
	snap.Session.Turns[0].Text = "tampered"

	assert.Equal(t, "Tell me about yourself.", c.State().Session.Turns[0].Text)
}
