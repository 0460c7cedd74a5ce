package main

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/config"
	"github.com/shopexperts/rewards/internal/consumers"
	"github.com/shopexperts/rewards/internal/publishers"
	"github.com/shopexperts/rewards/internal/repository"
	"github.com/shopexperts/rewards/internal/service"
	"github.com/shopexperts/rewards/pkg/mq"
	"github.com/shopexperts/rewards/pkg/mysql"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQConsumer,

			repository.NewNotificationRepository,
			service.NewNotificationService,

			consumers.NewNotificationConsumer,
		),
		fx.Invoke(runNotificationConsumer),
	).Run()
}

func runNotificationConsumer(cfg *config.Config, consumer consumers.NotificationConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.NotifyQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := consumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("notification consumer started", zap.String("queue", publishers.NotifyQueue))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping notification consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
