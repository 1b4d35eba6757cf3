package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lucasv/prepdeck/internal/models"
)

// MockAdminGateway is a mock implementation of gateway.AdminGateway
type MockAdminGateway struct {
	mock.Mock
}

func (m *MockAdminGateway) ListResources(ctx context.Context) ([]models.ResourceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResourceRecord), args.Error(1)
}

func (m *MockAdminGateway) PendingAnalysis(ctx context.Context) ([]models.ResourceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResourceRecord), args.Error(1)
}

func (m *MockAdminGateway) AnalyzeResource(ctx context.Context, id string) (models.ResourceRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ResourceRecord), args.Error(1)
}

func (m *MockAdminGateway) ApproveResource(ctx context.Context, id, feedback string) error {
	args := m.Called(ctx, id, feedback)
	return args.Error(0)
}

func (m *MockAdminGateway) RejectResource(ctx context.Context, id, feedback string) error {
	args := m.Called(ctx, id, feedback)
	return args.Error(0)
}

func (m *MockAdminGateway) DeleteResource(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminGateway) BulkDeleteResources(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockAdminGateway) ModerationAnalytics(ctx context.Context, timeframe string) (models.ModerationAnalytics, error) {
	args := m.Called(ctx, timeframe)
	return args.Get(0).(models.ModerationAnalytics), args.Error(1)
}

func (m *MockAdminGateway) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DashboardSummary), args.Error(1)
}

func (m *MockAdminGateway) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminUser), args.Error(1)
}

func (m *MockAdminGateway) Activities(ctx context.Context) ([]models.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEntry), args.Error(1)
}
