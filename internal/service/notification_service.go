package service

import (
	"context"

	"mydo/internal/model"
	"mydo/internal/repository"
)

// NotificationService provides the user-facing notification operations.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListUnread(ctx context.Context, user *model.User) ([]model.Notification, error) {
	return s.repo.ListUnreadByUser(ctx, user.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, user *model.User, notificationID string) error {
	return s.repo.MarkRead(ctx, user.ID, notificationID)
}

func (s *NotificationService) Delete(ctx context.Context, user *model.User, notificationID string) error {
	return s.repo.Delete(ctx, user.ID, notificationID)
}
