package moderation

import (
	"context"
	"time"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
)

// BatchResult is the per-resource outcome of a batch analysis run.
type BatchResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Err     error  `json:"-"`
}

// Service fetches moderation data from the backend and runs batch analysis.
type Service struct {
	gw    gateway.AdminGateway
	delay time.Duration
	log   *logger.Logger
}

// NewService creates a moderation Service. delay is the fixed pause between
// batch analysis requests, to avoid overwhelming the backend.
func NewService(gw gateway.AdminGateway, delay time.Duration) *Service {
	return &Service{
		gw:    gw,
		delay: delay,
		log:   logger.Default().WithPrefix("moderation"),
	}
}

// FetchView loads both resource lists and builds the derived view-model.
func (s *Service) FetchView(ctx context.Context, f models.ResourceFilters) (View, error) {
	log := logger.FromContext(ctx).WithPrefix("moderation")

	adminList, err := s.gw.ListResources(ctx)
	if err != nil {
		log.Error("failed to list resources: %v", err)
		return View{}, err
	}
	pendingList, err := s.gw.PendingAnalysis(ctx)
	if err != nil {
		log.Error("failed to fetch pending-analysis list: %v", err)
		return View{}, err
	}

	view := BuildView(adminList, pendingList, f)
	log.Debug("built moderation view: %d of %d resources after filters", len(view.Resources), view.Stats.Total)
	return view, nil
}

// BatchAnalyze runs single-resource analysis for each id sequentially with a
// fixed inter-request delay. A failure on one id does not abort the rest;
// only context cancellation stops the run early.
func (s *Service) BatchAnalyze(ctx context.Context, ids []string) []BatchResult {
	log := logger.FromContext(ctx).WithPrefix("moderation")
	log.Info("starting batch analysis of %d resources", len(ids))

	results := make([]BatchResult, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			if err := sleepContext(ctx, s.delay); err != nil {
				log.Warn("batch analysis cancelled after %d of %d: %v", i, len(ids), err)
				return results
			}
		}
		if ctx.Err() != nil {
			log.Warn("batch analysis cancelled after %d of %d: %v", i, len(ids), ctx.Err())
			return results
		}

		_, err := s.gw.AnalyzeResource(ctx, id)
		if err != nil {
			log.Warn("analysis failed for resource %s: %v", id, err)
		} else {
			log.Debug("analysis succeeded for resource %s", id)
		}
		results = append(results, BatchResult{ID: id, Success: err == nil, Err: err})
	}

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		}
	}
	log.Info("batch analysis finished: %d succeeded, %d failed", ok, len(results)-ok)
	return results
}

// Approve marks a resource approved via the backend.
func (s *Service) Approve(ctx context.Context, id, feedback string) error {
	if id == "" {
		return errors.NewValidationError("id", "cannot be empty")
	}
	return s.gw.ApproveResource(ctx, id, feedback)
}

// Reject marks a resource rejected via the backend.
func (s *Service) Reject(ctx context.Context, id, feedback string) error {
	if id == "" {
		return errors.NewValidationError("id", "cannot be empty")
	}
	return s.gw.RejectResource(ctx, id, feedback)
}

// Delete removes a resource via the backend.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("id", "cannot be empty")
	}
	return s.gw.DeleteResource(ctx, id)
}

// BulkDelete removes several resources via the backend.
func (s *Service) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return errors.NewValidationError("ids", "cannot be empty")
	}
	return s.gw.BulkDeleteResources(ctx, ids)
}

// Analytics returns moderation trend data for the given timeframe.
func (s *Service) Analytics(ctx context.Context, timeframe string) (models.ModerationAnalytics, error) {
	return s.gw.ModerationAnalytics(ctx, timeframe)
}

// Dashboard returns the admin dashboard summary.
func (s *Service) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	return s.gw.Dashboard(ctx)
}

// Users lists platform users for the admin panel.
func (s *Service) Users(ctx context.Context) ([]models.AdminUser, error) {
	return s.gw.ListUsers(ctx)
}

// Activities lists recent platform activity.
func (s *Service) Activities(ctx context.Context) ([]models.ActivityEntry, error) {
	return s.gw.Activities(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
