package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mydo/internal/model"
)

// NotificationRepository handles CRUD for in-app notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification row. When a row with the same
// (task, user, type, title) already exists, the returned error matches
// gorm.ErrDuplicatedKey; callers treat that as "already notified".
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListUnreadByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) ListByTask(ctx context.Context, taskID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND id = ?", userID, notificationID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, notificationID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, notificationID).
		Delete(&model.Notification{}).Error; err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
