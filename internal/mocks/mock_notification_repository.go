package mocks

import (
	"context"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// MockNotificationRepository implements domain.NotificationRepository for testing
type MockNotificationRepository struct {
	CreateFunc       func(ctx context.Context, n *domain.Notification) error
	ListByUserIDFunc func(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error)
	MarkSeenFunc     func(ctx context.Context, ids []uint, userID uint) error
	CountUnseenFunc  func(ctx context.Context, userID uint) (int64, error)
}

// NewMockNotificationRepository creates a new MockNotificationRepository with default behaviors
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	n.ID = 1
	return nil
}

func (m *MockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *MockNotificationRepository) MarkSeen(ctx context.Context, ids []uint, userID uint) error {
	if m.MarkSeenFunc != nil {
		return m.MarkSeenFunc(ctx, ids, userID)
	}
	return nil
}

func (m *MockNotificationRepository) CountUnseen(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnseenFunc != nil {
		return m.CountUnseenFunc(ctx, userID)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.NotificationRepository = (*MockNotificationRepository)(nil)
