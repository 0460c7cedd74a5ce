package main

import (
	"context"
	"math/rand"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/api"
	"github.com/shopexperts/rewards/internal/api/v1"
	"github.com/shopexperts/rewards/internal/api/v1/middleware"
	"github.com/shopexperts/rewards/internal/api/validator"
	"github.com/shopexperts/rewards/internal/cache"
	"github.com/shopexperts/rewards/internal/config"
	apierrors "github.com/shopexperts/rewards/internal/errors"
	"github.com/shopexperts/rewards/internal/metrics"
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
			metrics.NewMetrics,

			NewFiber,
			NewValidator,
			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,
			NewRedisClient,
			NewReferralCodeCache,
			NewRand,

			repository.NewTransactionManager,
			repository.NewRewardAccountRepository,
			repository.NewRewardTransactionRepository,
			repository.NewUserRepository,

			publishers.NewNotificationPublisher,
			service.NewAccountLedger,
			service.NewReferralCodec,
			service.NewRewardService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	db *gorm.DB, rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(middleware.TrackIDMiddleware())
	app.Use(middleware.HealthCheckMiddleware("rewards"))
	app.Use(middleware.HTTPMetricsMiddleware(m, logger))

	api.SetupRoutes(app, handler)

	systemCollector := metrics.NewSystemCollector(m, logger)
	dbCollector := metrics.NewDatabaseCollector(m, logger, db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.NotifyQueue}); err != nil {
				return err
			}

			systemCollector.Start(15 * time.Second)
			dbCollector.Start(15 * time.Second)

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			systemCollector.Stop()
			dbCollector.Stop()

			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func NewValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(playground.New(), m)
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return cache.NewClient(cfg.Redis)
}

func NewReferralCodeCache(client *redis.Client, cfg *config.Config) service.ReferralCodeCache {
	return cache.NewReferralCodeCache(client, cfg.Redis)
}

func NewRand() service.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
