package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/repository"
)

// NotificationService is the worker-side counterpart of the sink: it takes
// messages off the queue and persists them for the user's inbox.
type NotificationService interface {
	Deliver(ctx context.Context, msg NotificationMessage) error
}

type notification struct {
	repo   repository.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notification{repo: repo, logger: logger}
}

func (s *notification) Deliver(ctx context.Context, msg NotificationMessage) error {
	n := model.Notification{
		UserID:    msg.UserID,
		Title:     msg.Title,
		Message:   msg.Message,
		Kind:      msg.Kind,
		CreatedAt: msg.CreatedAt,
	}

	if err := s.repo.Create(ctx, &n); err != nil {
		s.logger.Error("failed to store notification",
			zap.Int64("user_id", msg.UserID),
			zap.String("kind", msg.Kind),
			zap.Error(err))
		return err
	}

	s.logger.Info("notification delivered",
		zap.Int64("user_id", msg.UserID),
		zap.String("kind", msg.Kind))

	return nil
}
