package consumers

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/publishers"
	"github.com/shopexperts/rewards/internal/service"
	"github.com/shopexperts/rewards/pkg/mq"
)

type NotificationConsumer interface {
	Consume(ctx context.Context) error
}

type notificationConsumer struct {
	service  service.NotificationService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewNotificationConsumer(service service.NotificationService, consumer mq.Consumer, logger *zap.Logger) NotificationConsumer {
	return &notificationConsumer{
		service:  service,
		consumer: consumer,
		logger:   logger,
	}
}

func (n *notificationConsumer) Consume(ctx context.Context) error {
	return n.consumer.Consume(ctx, 1, publishers.NotifyQueue, n.handleMessage)
}

func (n *notificationConsumer) handleMessage(ctx context.Context, body []byte) error {
	var msg service.NotificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		n.logger.Warn("invalid notification payload", zap.Error(err))
		return err
	}

	if err := n.service.Deliver(ctx, msg); err != nil {
		return mq.Temporary(err)
	}

	return nil
}
