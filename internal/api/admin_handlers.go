package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
)

func parseResourceFilters(r *http.Request) models.ResourceFilters {
	q := r.URL.Query()
	return models.ResourceFilters{
		Search:   q.Get("search"),
		Status:   models.ModerationStatus(q.Get("status")),
		AIStatus: models.AIStatusFilter(q.Get("aiStatus")),
		Type:     q.Get("type"),
	}
}

func (s *Server) handleAdminResources(w http.ResponseWriter, r *http.Request) {
	view, err := s.Moderation.FetchView(r.Context(), parseResourceFilters(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAdminBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.IDs) == 0 {
		handleError(w, r, errors.NewValidationError("ids", "cannot be empty"))
		return
	}

	if err := s.Jobs.EnqueueBatchAnalyze(req.IDs); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("queued batch analysis of %d resources", len(req.IDs))
	respondJSON(w, r, http.StatusAccepted, map[string]any{"queued": len(req.IDs)})
}

func (s *Server) handleAdminBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Moderation.BulkDelete(r.Context(), req.IDs); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"deleted": len(req.IDs)})
}

func (s *Server) handleAdminApprove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Moderation.Approve(r.Context(), chi.URLParam(r, "id"), req.Feedback); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "approved"})
}

func (s *Server) handleAdminReject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Moderation.Reject(r.Context(), chi.URLParam(r, "id"), req.Feedback); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "rejected"})
}

func (s *Server) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Moderation.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "week"
	}

	analytics, err := s.Moderation.Analytics(r.Context(), timeframe)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, analytics)
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Moderation.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Moderation.Users(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) handleAdminActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.Moderation.Activities(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"activities": activities})
}
