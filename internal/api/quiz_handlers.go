package api

import (
	"net/http"
	"strconv"

	"github.com/lucasv/prepdeck/internal/models"
)

func (s *Server) handleQuizState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Quiz.State())
}

func (s *Server) handleQuizGenerate(w http.ResponseWriter, r *http.Request) {
	var cfg models.QuizConfig
	if err := decodeJSON(r, &cfg); err != nil {
		handleError(w, r, err)
		return
	}
	cfg.UserID = userID(r)

	snap, err := s.Quiz.Generate(r.Context(), cfg)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID string `json:"questionId"`
		Answer     string `json:"answer"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Quiz.SelectAnswer(req.QuestionID, req.Answer); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, s.Quiz.State())
}

func (s *Server) handleQuizHint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID string `json:"questionId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	hint, err := s.Quiz.RequestHint(r.Context(), req.QuestionID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"hint": hint})
}

func (s *Server) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	// Time taken is derived from the countdown, not reported by the client.
	var timeTaken int
	if snap := s.Quiz.State(); snap.Quiz != nil {
		timeTaken = snap.Quiz.TimeLimit*60 - snap.Remaining
	}

	snap, err := s.Quiz.Submit(r.Context(), timeTaken)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleQuizCancel(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Quiz.Cancel())
}

func (s *Server) handleQuizReview(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Quiz.Review(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleQuizReAttempt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizID string `json:"quizId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	snap, err := s.Quiz.ReAttempt(r.Context(), req.QuizID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	s.Quiz.Reset()
	respondJSON(w, r, http.StatusOK, s.Quiz.State())
}

func (s *Server) handleQuizHistory(w http.ResponseWriter, r *http.Request) {
	filter := models.QuizHistoryFilter{
		Subject: r.URL.Query().Get("subject"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	results, err := s.History.QuizHistory(r.Context(), userID(r), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"results": results})
}
