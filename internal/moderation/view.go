package moderation

import (
	"strings"

	"github.com/samber/lo"

	"github.com/lucasv/prepdeck/internal/models"
)

// View is the derived moderation view-model: the filtered resource list plus
// stats over the deduplicated, unfiltered set. Recomputed on every relevant
// input change; never persisted.
type View struct {
	Resources []models.ResourceRecord `json:"resources"`
	Stats     models.ModerationStats  `json:"stats"`
}

// BuildView merges the two independently fetched resource lists,
// deduplicates by identity (first occurrence wins), applies filters in
// order (status, AI status, type, search) and computes aggregate stats.
// Pure function: callable from tests without any transport or rendering.
func BuildView(adminList, pendingList []models.ResourceRecord, f models.ResourceFilters) View {
	merged := make([]models.ResourceRecord, 0, len(adminList)+len(pendingList))
	merged = append(merged, adminList...)
	merged = append(merged, pendingList...)
	deduped := lo.UniqBy(merged, func(r models.ResourceRecord) string { return r.ID })

	// Stats reflect totals independent of the active filter.
	stats := computeStats(deduped)

	filtered := deduped
	if f.Status != "" {
		filtered = lo.Filter(filtered, func(r models.ResourceRecord, _ int) bool {
			return r.Status == f.Status
		})
	}
	if f.AIStatus != models.AIStatusAny {
		filtered = lo.Filter(filtered, func(r models.ResourceRecord, _ int) bool {
			return matchesAIStatus(r, f.AIStatus)
		})
	}
	if f.Type != "" {
		filtered = lo.Filter(filtered, func(r models.ResourceRecord, _ int) bool {
			return r.Type == f.Type
		})
	}
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		filtered = lo.Filter(filtered, func(r models.ResourceRecord, _ int) bool {
			return strings.Contains(strings.ToLower(r.Name), search) ||
				strings.Contains(strings.ToLower(r.Subject), search) ||
				strings.Contains(strings.ToLower(r.UploaderName), search)
		})
	}

	return View{Resources: filtered, Stats: stats}
}

func matchesAIStatus(r models.ResourceRecord, status models.AIStatusFilter) bool {
	switch status {
	case models.AIStatusNeedsAnalysis:
		return r.NeedsAnalysis()
	case models.AIStatusAnalyzed:
		return !r.NeedsAnalysis()
	case models.AIStatusReadyForDecision:
		return r.ReadyForDecision()
	default:
		return true
	}
}

func computeStats(resources []models.ResourceRecord) models.ModerationStats {
	stats := models.ModerationStats{Total: len(resources)}
	for _, r := range resources {
		switch r.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusApproved:
			stats.Approved++
		case models.StatusRejected:
			stats.Rejected++
		}
		if r.NeedsAnalysis() {
			stats.NeedingAnalysis++
		}
		if r.ReadyForDecision() {
			stats.ReadyForDecision++
		}
		if r.CanAutoApprove() {
			stats.AIApproved++
		}
		if r.AIRecommendsReject() {
			stats.AIRejected++
		}
	}
	return stats
}
