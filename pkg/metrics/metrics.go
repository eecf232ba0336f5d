// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики БД
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     *prometheus.GaugeVec
	DBConnsInUse    *prometheus.GaugeVec
	DBConnsIdle     *prometheus.GaugeVec

	// Бизнес-метрики
	SyncRunsTotal      *prometheus.CounterVec
	QuotesExpiredTotal prometheus.Counter
}

// New создает и регистрирует коллекторы
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		DBConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),

		SyncRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_sync_runs_total",
			Help:        "Total number of event/quote status synchronization runs",
			ConstLabels: constLabels,
		}, []string{"direction", "result"}),

		QuotesExpiredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_expired_total",
			Help:        "Total number of quotes force-expired by the background job",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBStats обновляет gauges connection pool
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.DBConnsOpen.WithLabelValues().Set(float64(stats.OpenConnections))
	m.DBConnsInUse.WithLabelValues().Set(float64(stats.InUse))
	m.DBConnsIdle.WithLabelValues().Set(float64(stats.Idle))
}

// ObserveSyncRun фиксирует запуск движка синхронизации статусов
func (m *Metrics) ObserveSyncRun(direction, result string) {
	m.SyncRunsTotal.WithLabelValues(direction, result).Inc()
}

// AddQuotesExpired фиксирует количество предложений, просроченных фоновой задачей
func (m *Metrics) AddQuotesExpired(count int) {
	m.QuotesExpiredTotal.Add(float64(count))
}
