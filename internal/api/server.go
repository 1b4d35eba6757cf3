package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasv/prepdeck/internal/interview"
	"github.com/lucasv/prepdeck/internal/jobs"
	"github.com/lucasv/prepdeck/internal/moderation"
	"github.com/lucasv/prepdeck/internal/quiz"
	"github.com/lucasv/prepdeck/internal/services"
)

type Server struct {
	Quiz       *quiz.Controller
	Interview  *interview.Controller
	Moderation *moderation.Service
	History    services.HistoryService
	Jobs       jobs.JobQueue
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/quiz", func(r chi.Router) {
			r.Get("/state", s.handleQuizState)
			r.Post("/generate", s.handleQuizGenerate)
			r.Post("/answer", s.handleQuizAnswer)
			r.Post("/hint", s.handleQuizHint)
			r.Post("/submit", s.handleQuizSubmit)
			r.Post("/cancel", s.handleQuizCancel)
			r.Post("/review", s.handleQuizReview)
			r.Post("/reattempt", s.handleQuizReAttempt)
			r.Post("/reset", s.handleQuizReset)
			r.Get("/history", s.handleQuizHistory)
		})

		r.Route("/interview", func(r chi.Router) {
			r.Get("/state", s.handleInterviewState)
			r.Post("/start", s.handleInterviewStart)
			r.Post("/message", s.handleInterviewMessage)
			r.Post("/audio", s.handleInterviewAudio)
			r.Post("/complete", s.handleInterviewComplete)
			r.Post("/cancel", s.handleInterviewCancel)
			r.Post("/recording", s.handleInterviewRecording)
			r.Post("/feedback/clear", s.handleInterviewClearFeedback)
			r.Get("/history", s.handleInterviewHistory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/resources", s.handleAdminResources)
			r.Post("/resources/batch-analyze", s.handleAdminBatchAnalyze)
			r.Post("/resources/bulk-delete", s.handleAdminBulkDelete)
			r.Post("/resources/{id}/approve", s.handleAdminApprove)
			r.Post("/resources/{id}/reject", s.handleAdminReject)
			r.Delete("/resources/{id}", s.handleAdminDelete)
			r.Get("/analytics", s.handleAdminAnalytics)
			r.Get("/dashboard", s.handleAdminDashboard)
			r.Get("/users", s.handleAdminUsers)
			r.Get("/activities", s.handleAdminActivities)
		})
	})

	return r
}
