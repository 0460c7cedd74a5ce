package metrics

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatabaseCollector exports connection pool stats from the gorm connection.
type DatabaseCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	sqlDB   *sql.DB
	ticker  *time.Ticker
	stopCh  chan struct{}
}

func NewDatabaseCollector(metrics *Metrics, logger *zap.Logger, db *gorm.DB) *DatabaseCollector {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql.DB from gorm.DB", zap.Error(err))
		metrics.RecordDBConnectionError()
	}

	return &DatabaseCollector{
		metrics: metrics,
		logger:  logger,
		sqlDB:   sqlDB,
		stopCh:  make(chan struct{}),
	}
}

func (dc *DatabaseCollector) Start(interval time.Duration) {
	if dc.sqlDB == nil {
		dc.logger.Warn("Cannot start database metrics collector: sqlDB is nil")
		return
	}

	dc.ticker = time.NewTicker(interval)
	go dc.collectLoop()
	dc.logger.Info("Database metrics collector started", zap.Duration("interval", interval))
}

func (dc *DatabaseCollector) Stop() {
	if dc.ticker != nil {
		dc.ticker.Stop()
	}
	close(dc.stopCh)
	dc.logger.Info("Database metrics collector stopped")
}

func (dc *DatabaseCollector) collectLoop() {
	dc.collect()

	for {
		select {
		case <-dc.ticker.C:
			dc.collect()
		case <-dc.stopCh:
			return
		}
	}
}

func (dc *DatabaseCollector) collect() {
	if dc.sqlDB == nil {
		return
	}

	stats := dc.sqlDB.Stats()
	dc.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
	dc.metrics.DBConnectionsIdle.Set(float64(stats.Idle))

	dc.logger.Debug("Database connection stats",
		zap.Int("open_connections", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int64("wait_count", stats.WaitCount),
		zap.Duration("wait_duration", stats.WaitDuration),
	)
}

func (dc *DatabaseCollector) HealthCheck() error {
	if dc.sqlDB == nil {
		dc.metrics.RecordDBConnectionError()
		return sql.ErrConnDone
	}

	start := time.Now()
	err := dc.sqlDB.Ping()

	status := "success"
	if err != nil {
		status = "error"
		dc.metrics.RecordDBConnectionError()
	}
	dc.metrics.RecordDBQuery("ping", "health_check", status, time.Since(start))

	return err
}
