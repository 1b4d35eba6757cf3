package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := gateway.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestGenerateQuiz_SendsConfigAndDecodesQuiz(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/quizzes/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var cfg models.QuizConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cfg))
		assert.Equal(t, "Go", cfg.Subject)
		assert.Equal(t, 10, cfg.NumberOfQuestions)

		json.NewEncoder(w).Encode(models.Quiz{
			ID:        "q1",
			Subject:   "Go",
			TimeLimit: 10,
			Questions: []models.Question{{ID: "a", Text: "What is a goroutine?"}},
		})
	})

	quiz, err := client.GenerateQuiz(context.Background(), models.QuizConfig{
		Subject:           "Go",
		NumberOfQuestions: 10,
		TimeLimit:         10,
	})

	require.NoError(t, err)
	assert.Equal(t, "q1", quiz.ID)
	require.Len(t, quiz.Questions, 1)
}

func TestGetHint_PathEscapesQuizID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes/q%201/hint", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(map[string]string{"hint": "think harder"})
	})

	hint, err := client.GetHint(context.Background(), "q 1", "a")
	require.NoError(t, err)
	assert.Equal(t, "think harder", hint)
}

func TestSend_NonSuccessStatusIsRemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quiz not found", http.StatusNotFound)
	})

	_, err := client.GenerateQuiz(context.Background(), models.QuizConfig{Subject: "Go"})
	require.Error(t, err)
	assert.True(t, errors.IsRemote(err))
	assert.Contains(t, err.Error(), "404")
}

func TestSend_NetworkFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := gateway.New(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.GenerateQuiz(context.Background(), models.QuizConfig{Subject: "Go"})
	assert.True(t, errors.IsRemote(err))
}

func TestQuizHistory_BuildsQueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes/history", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "u1", q.Get("userId"))
		assert.Equal(t, "Go", q.Get("subject"))
		assert.Equal(t, "5", q.Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []models.QuizResult{{SubmissionID: "s1", Score: 8}},
		})
	})

	results, err := client.QuizHistory(context.Background(), "u1", models.QuizHistoryFilter{Subject: "Go", Limit: 5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Score)
}

func TestTranscribeAudio_UploadsRawBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interviews/sess-1/transcriptions", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		json.NewEncoder(w).Encode(gateway.TranscriptionResult{
			Transcription: "hello world",
			AIMessage:     "good answer",
		})
	})

	res, err := client.TranscribeAudio(context.Background(), "sess-1", []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Transcription)
}

func TestCancelInterview_NoResponseBodyExpected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CancelInterview(context.Background(), "sess-1")
	assert.NoError(t, err)
}
