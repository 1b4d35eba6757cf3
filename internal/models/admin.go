package models

import "time"

// AdminUser is a platform user as seen by the admin dashboard.
type AdminUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardSummary is the admin landing-page aggregate.
type DashboardSummary struct {
	TotalUsers      int `json:"totalUsers"`
	TotalResources  int `json:"totalResources"`
	TotalQuizzes    int `json:"totalQuizzes"`
	TotalInterviews int `json:"totalInterviews"`
	PendingReviews  int `json:"pendingReviews"`
}

// ModerationAnalytics summarizes AI moderation outcomes for a timeframe.
type ModerationAnalytics struct {
	Timeframe     string  `json:"timeframe"`
	Analyzed      int     `json:"analyzed"`
	AIApproved    int     `json:"aiApproved"`
	AIRejected    int     `json:"aiRejected"`
	HumanOverride int     `json:"humanOverride"`
	AvgConfidence float64 `json:"avgConfidence"`
}
