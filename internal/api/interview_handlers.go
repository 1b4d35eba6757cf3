package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/models"
)

// Transcription uploads are capped to keep a runaway recording from
// exhausting memory.
const maxAudioBytes = 25 << 20

func (s *Server) handleInterviewState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Interview.State())
}

func (s *Server) handleInterviewStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type    models.InterviewType `json:"type"`
		Topic   string               `json:"topic"`
		Context string               `json:"context"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	snap, err := s.Interview.Start(r.Context(), gateway.StartInterviewParams{
		UserID:  userID(r),
		Type:    req.Type,
		Topic:   req.Topic,
		Context: req.Context,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleInterviewMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	snap, err := s.Interview.SendMessage(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleInterviewAudio(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioBytes+1))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("failed to read audio body"))
		return
	}
	if len(audio) > maxAudioBytes {
		handleError(w, r, errors.NewValidationError("audio", "recording exceeds 25MB"))
		return
	}

	snap, err := s.Interview.TranscribeAudio(r.Context(), audio)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleInterviewComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Format string `json:"format"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	snap, err := s.Interview.Complete(r.Context(), req.Format)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleInterviewCancel(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Interview.Cancel(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleInterviewRecording(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, s.Interview.SetRecording(req.Active))
}

func (s *Server) handleInterviewClearFeedback(w http.ResponseWriter, r *http.Request) {
	s.Interview.ClearFeedback()
	respondJSON(w, r, http.StatusOK, s.Interview.State())
}

func (s *Server) handleInterviewHistory(w http.ResponseWriter, r *http.Request) {
	filter := models.InterviewHistoryFilter{
		Type: models.InterviewType(r.URL.Query().Get("type")),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	reports, err := s.History.InterviewHistory(r.Context(), userID(r), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"reports": reports})
}
