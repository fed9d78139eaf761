package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	NotifyFunc      func(ctx context.Context, user *domain.User, title, message string) error
	ListFunc        func(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error)
	MarkSeenFunc    func(ctx context.Context, ids []uint, userID uint) error
	UnreadCountFunc func(ctx context.Context, userID uint) (int64, error)
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) Notify(ctx context.Context, user *domain.User, title, message string) error {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, user, title, message)
	}
	return nil
}

func (m *MockNotificationService) List(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkSeen(ctx context.Context, ids []uint, userID uint) error {
	if m.MarkSeenFunc != nil {
		return m.MarkSeenFunc(ctx, ids, userID)
	}
	return nil
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx, userID)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
