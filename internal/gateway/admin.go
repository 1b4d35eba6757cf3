package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lucasv/prepdeck/internal/models"
)

// ListResources fetches the general admin resource list.
func (c *Client) ListResources(ctx context.Context) ([]models.ResourceRecord, error) {
	var out struct {
		Resources []models.ResourceRecord `json:"resources"`
	}
	err := c.doJSON(ctx, "list_resources", http.MethodGet, "/api/admin/resources", nil, &out)
	return out.Resources, err
}

// PendingAnalysis fetches the resources still awaiting AI analysis. This list
// overlaps with ListResources; the view-model builder deduplicates.
func (c *Client) PendingAnalysis(ctx context.Context) ([]models.ResourceRecord, error) {
	var out struct {
		Resources []models.ResourceRecord `json:"resources"`
	}
	err := c.doJSON(ctx, "pending_analysis", http.MethodGet, "/api/admin/resources/pending-analysis", nil, &out)
	return out.Resources, err
}

// AnalyzeResource runs (or re-runs) AI analysis on a single resource.
func (c *Client) AnalyzeResource(ctx context.Context, id string) (models.ResourceRecord, error) {
	var res models.ResourceRecord
	path := fmt.Sprintf("/api/admin/resources/%s/analyze", url.PathEscape(id))
	err := c.doJSON(ctx, "analyze_resource", http.MethodPost, path, nil, &res)
	return res, err
}

// ApproveResource marks a resource approved, with optional moderator feedback.
func (c *Client) ApproveResource(ctx context.Context, id, feedback string) error {
	path := fmt.Sprintf("/api/admin/resources/%s/approve", url.PathEscape(id))
	return c.doJSON(ctx, "approve_resource", http.MethodPost, path, map[string]string{"feedback": feedback}, nil)
}

// RejectResource marks a resource rejected, with optional moderator feedback.
func (c *Client) RejectResource(ctx context.Context, id, feedback string) error {
	path := fmt.Sprintf("/api/admin/resources/%s/reject", url.PathEscape(id))
	return c.doJSON(ctx, "reject_resource", http.MethodPost, path, map[string]string{"feedback": feedback}, nil)
}

// DeleteResource removes a resource.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/admin/resources/%s", url.PathEscape(id))
	return c.doJSON(ctx, "delete_resource", http.MethodDelete, path, nil, nil)
}

// BulkDeleteResources removes several resources in one call.
func (c *Client) BulkDeleteResources(ctx context.Context, ids []string) error {
	return c.doJSON(ctx, "bulk_delete_resources", http.MethodPost, "/api/admin/resources/bulk-delete", map[string]any{"ids": ids}, nil)
}

// ModerationAnalytics fetches AI-moderation outcome stats for a timeframe.
func (c *Client) ModerationAnalytics(ctx context.Context, timeframe string) (models.ModerationAnalytics, error) {
	var out models.ModerationAnalytics
	err := c.doJSON(ctx, "moderation_analytics", http.MethodGet, queryPath("/api/admin/analytics/moderation", map[string]string{"timeframe": timeframe}), nil, &out)
	return out, err
}

// Dashboard fetches the admin landing-page summary.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	err := c.doJSON(ctx, "dashboard", http.MethodGet, "/api/admin/dashboard", nil, &out)
	return out, err
}

// ListUsers fetches the platform user list.
func (c *Client) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out struct {
		Users []models.AdminUser `json:"users"`
	}
	err := c.doJSON(ctx, "list_users", http.MethodGet, "/api/admin/users", nil, &out)
	return out.Users, err
}

// Activities fetches the recent-activity feed.
func (c *Client) Activities(ctx context.Context) ([]models.ActivityEntry, error) {
	var out struct {
		Activities []models.ActivityEntry `json:"activities"`
	}
	err := c.doJSON(ctx, "activities", http.MethodGet, "/api/admin/activities", nil, &out)
	return out.Activities, err
}
