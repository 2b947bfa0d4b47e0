package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mydo/internal/model"
)

// PushSubscriptionRepository manages browser push endpoints.
type PushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// Upsert stores a subscription keyed by its endpoint, refreshing the key
// material and owner if the endpoint is already registered.
func (r *PushSubscriptionRepository) Upsert(ctx context.Context, sub *model.PushSubscription) error {
	db := r.db.WithContext(ctx)
	var existing model.PushSubscription
	err := db.Where("endpoint = ?", sub.Endpoint).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"user_id": sub.UserID,
			"keys":    sub.Keys,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update subscription: %w", err)
		}
		sub.ID = existing.ID
		return nil
	case err == gorm.ErrRecordNotFound:
		if sub.ID == "" {
			sub.ID = uuid.NewString()
		}
		if err := db.Create(sub).Error; err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find subscription: %w", err)
	}
}

func (r *PushSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if err := r.db.WithContext(ctx).Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscription{}).Error; err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
