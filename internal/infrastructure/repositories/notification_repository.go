package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// NotificationRepositoryImpl implements domain.NotificationRepository using GORM.
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// DBNotification is the database model for Notification.
type DBNotification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Title     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text;not null"`
	Seen      bool      `gorm:"index;not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (DBNotification) TableName() string {
	return "notifications"
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Create implements domain.NotificationRepository.
func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *domain.Notification) error {
	dbNotification := notificationToDB(n)
	if err := r.db.WithContext(ctx).Create(dbNotification).Error; err != nil {
		return err
	}
	n.ID = dbNotification.ID
	n.CreatedAt = dbNotification.CreatedAt
	return nil
}

// ListByUserID implements domain.NotificationRepository, newest first.
func (r *NotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	var dbNotifications []DBNotification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&dbNotifications).Error
	if err != nil {
		return nil, err
	}
	notifications := make([]*domain.Notification, 0, len(dbNotifications))
	for i := range dbNotifications {
		notifications = append(notifications, notificationToDomain(&dbNotifications[i]))
	}
	return notifications, nil
}

// MarkSeen implements domain.NotificationRepository. The user filter stops
// one user from marking another user's notifications seen.
func (r *NotificationRepositoryImpl) MarkSeen(ctx context.Context, ids []uint, userID uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("seen", true).Error
}

// CountUnseen implements domain.NotificationRepository.
func (r *NotificationRepositoryImpl) CountUnseen(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Count(&count).Error
	return count, err
}

func notificationToDB(n *domain.Notification) *DBNotification {
	return &DBNotification{
		ID:      n.ID,
		UserID:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Seen:    n.Seen,
	}
}

func notificationToDomain(dbNotification *DBNotification) *domain.Notification {
	return &domain.Notification{
		ID:        dbNotification.ID,
		UserID:    dbNotification.UserID,
		Title:     dbNotification.Title,
		Message:   dbNotification.Message,
		Seen:      dbNotification.Seen,
		CreatedAt: dbNotification.CreatedAt,
	}
}
