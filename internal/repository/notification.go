package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
}

type notification struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notification{db: db}
}

func (r *notification) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}
