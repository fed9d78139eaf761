package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// Pusher is the realtime side of notification delivery, satisfied by the
// websocket hub.
type Pusher interface {
	Publish(ctx context.Context, userID uint, payload interface{}) error
}

// NotificationServiceImpl implements domain.NotificationService: the stored
// row is the source of truth, the websocket push on top is best-effort.
type NotificationServiceImpl struct {
	repo   domain.NotificationRepository
	pusher Pusher
	logger *zap.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo domain.NotificationRepository, pusher Pusher, logger *zap.Logger) domain.NotificationService {
	return &NotificationServiceImpl{repo: repo, pusher: pusher, logger: logger}
}

// Notify implements domain.NotificationService.
func (s *NotificationServiceImpl) Notify(ctx context.Context, user *domain.User, title, message string) error {
	n := &domain.Notification{
		UserID:  user.ID,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.pusher.Publish(ctx, user.ID, n); err != nil {
		s.logger.Warn("realtime notification push failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return nil
}

// List implements domain.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUserID(ctx, userID, limit, offset)
}

// MarkSeen implements domain.NotificationService.
func (s *NotificationServiceImpl) MarkSeen(ctx context.Context, ids []uint, userID uint) error {
	return s.repo.MarkSeen(ctx, ids, userID)
}

// UnreadCount implements domain.NotificationService.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnseen(ctx, userID)
}
