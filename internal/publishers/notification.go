package publishers

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/service"
	"github.com/shopexperts/rewards/pkg/mq"
)

const NotifyQueue = "rewards.notify"

// notificationPublisher implements service.NotificationSink on top of the
// message queue. Publish errors are logged and dropped: delivery is
// best-effort and must never surface into the ledger path.
type notificationPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewNotificationPublisher(publisher mq.Publisher, logger *zap.Logger) service.NotificationSink {
	return &notificationPublisher{publisher: publisher, logger: logger}
}

func (p *notificationPublisher) Notify(ctx context.Context, userID int64, title, message, kind string) {
	msg := service.NotificationMessage{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	body, _ := json.Marshal(msg)
	if err := p.publisher.Publish(ctx, "", NotifyQueue, body); err != nil {
		p.logger.Warn("failed to publish notification",
			zap.Int64("user_id", userID),
			zap.String("kind", kind),
			zap.Error(err))
	}
}
