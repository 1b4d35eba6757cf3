package models

import "time"

// ModerationStatus is the human moderation state of a resource.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// Verdict is the AI's categorical moderation recommendation.
type Verdict string

const (
	VerdictApprove Verdict = "approve"
	VerdictReject  Verdict = "reject"
	VerdictNeutral Verdict = "neutral"
	VerdictUnknown Verdict = "unknown"
)

// AutoDecisionConfidence is the minimum AI confidence at which a verdict is
// strong enough to recommend an automatic decision.
const AutoDecisionConfidence = 0.7

// ResourceRecord is a backend-owned resource under moderation, read-only here.
type ResourceRecord struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Subject           string           `json:"subject"`
	Type              string           `json:"type"`
	UploaderName      string           `json:"uploaderName"`
	Status            ModerationStatus `json:"status"`
	AIVerdict         Verdict          `json:"aiVerdict"`
	AIConfidence      float64          `json:"aiConfidence"`
	AnalyzedAt        *time.Time       `json:"analyzedAt,omitempty"`
	AIIssues          []string         `json:"aiIssues,omitempty"`
	AIRecommendations []string         `json:"aiRecommendations,omitempty"`
	AIFeedback        string           `json:"aiFeedback,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// NeedsAnalysis reports whether the resource still lacks a usable AI verdict.
func (r ResourceRecord) NeedsAnalysis() bool {
	return r.AnalyzedAt == nil || r.AIVerdict == VerdictUnknown || r.AIVerdict == "" || r.AIConfidence == 0
}

// ReadyForDecision reports whether a pending resource has been analyzed and
// awaits a human approve/reject. Defined as the complement of NeedsAnalysis
// so the two are mutually exclusive for pending resources.
func (r ResourceRecord) ReadyForDecision() bool {
	return r.Status == StatusPending && !r.NeedsAnalysis()
}

// CanAutoApprove reports a high-confidence approve verdict.
func (r ResourceRecord) CanAutoApprove() bool {
	return r.AIVerdict == VerdictApprove && r.AIConfidence >= AutoDecisionConfidence
}

// AIRecommendsReject reports a high-confidence reject verdict.
func (r ResourceRecord) AIRecommendsReject() bool {
	return r.AIVerdict == VerdictReject && r.AIConfidence >= AutoDecisionConfidence
}

// ModerationStats are aggregate counts over the deduplicated, unfiltered
// resource set, so header counts are independent of the active filter.
type ModerationStats struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
	NeedingAnalysis  int `json:"needingAnalysis"`
	ReadyForDecision int `json:"readyForDecision"`
	AIApproved       int `json:"aiApproved"`
	AIRejected       int `json:"aiRejected"`
}

// AIStatusFilter selects resources by derived AI-analysis state.
type AIStatusFilter string

const (
	AIStatusAny              AIStatusFilter = ""
	AIStatusNeedsAnalysis    AIStatusFilter = "needs_analysis"
	AIStatusAnalyzed         AIStatusFilter = "analyzed"
	AIStatusReadyForDecision AIStatusFilter = "ready_for_decision"
)

// ResourceFilters selects a subset of the moderation view.
type ResourceFilters struct {
	Search   string           `json:"search,omitempty"`
	Status   ModerationStatus `json:"status,omitempty"`
	AIStatus AIStatusFilter   `json:"aiStatus,omitempty"`
	Type     string           `json:"type,omitempty"`
}
