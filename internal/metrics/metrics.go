package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	AccountsCreated         prometheus.Counter
	PointsAwardedTotal      *prometheus.CounterVec
	PointsRedeemedTotal     prometheus.Counter
	TransactionsCreated     *prometheus.CounterVec
	InsufficientPointsTotal prometheus.Counter
	ReferralCodesGenerated  prometheus.Counter
	ReferralRedemptions     *prometheus.CounterVec

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionErrors prometheus.Counter

	// System Metrics
	ServiceUptime    prometheus.Gauge
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		AccountsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_accounts_created_total",
				Help: "Total number of reward accounts created",
			},
		),
		PointsAwardedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_points_awarded_total",
				Help: "Total points awarded, by bonus reason",
			},
			[]string{"reason"},
		),
		PointsRedeemedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_points_redeemed_total",
				Help: "Total points redeemed",
			},
		),
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_transactions_created_total",
				Help: "Total number of reward transactions created",
			},
			[]string{"tx_type"},
		),
		InsufficientPointsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_insufficient_points_total",
				Help: "Total number of redemptions rejected for insufficient points",
			},
		),
		ReferralCodesGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_referral_codes_generated_total",
				Help: "Total number of referral codes generated",
			},
		),
		ReferralRedemptions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_referral_redemptions_total",
				Help: "Total number of referral code redemption attempts",
			},
			[]string{"status"},
		),

		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rewards_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),

		ServiceUptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		Goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rewards_goroutines",
				Help: "Number of goroutines currently running",
			},
		),
		MemoryUsageBytes: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rewards_memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
			[]string{"type"},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_validation_duration_seconds",
				Help:    "Duration of validation operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordAccountCreated() {
	m.AccountsCreated.Inc()
}

func (m *Metrics) RecordPointsAwarded(reason string, points int64) {
	m.PointsAwardedTotal.WithLabelValues(reason).Add(float64(points))
	m.TransactionsCreated.WithLabelValues("earned").Inc()
}

func (m *Metrics) RecordPointsRedeemed(points int64) {
	m.PointsRedeemedTotal.Add(float64(points))
	m.TransactionsCreated.WithLabelValues("redeemed").Inc()
}

func (m *Metrics) RecordInsufficientPoints() {
	m.InsufficientPointsTotal.Inc()
}

func (m *Metrics) RecordReferralCodeGenerated() {
	m.ReferralCodesGenerated.Inc()
}

func (m *Metrics) RecordReferralRedemption(status string) {
	m.ReferralRedemptions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))
	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))
	m.MemoryUsageBytes.WithLabelValues("stack_inuse").Set(float64(memStats.StackInuse))
}
