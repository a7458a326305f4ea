package prometheus

import (
	"net/http"
	"time"

	"github.com/displaytree/paybeanlink/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Sync operation metrics
	SyncOperationsCounter prometheus.CounterVec
	SyncFailuresCounter   prometheus.CounterVec
	BatchSizeHistogram    prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Registered merchants gauge
	RegisteredMerchantsGauge prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Sync operation metrics
	SyncOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sync_operations_total",
			Help: "Total number of sync upsert operations",
		},
		[]string{"collection", "operation"},
	)

	SyncFailuresCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sync_failures_total",
			Help: "Total number of failed sync operations",
		},
		[]string{"collection", "code"},
	)

	BatchSizeHistogram = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_sync_batch_size",
			Help:    "Number of records per sync batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"collection"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Registered merchants gauge
	RegisteredMerchantsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_registered_merchants",
			Help: "Number of merchants registered with the sync backend",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSyncOperation increments the counter for sync upserts
func RecordSyncOperation(collection, operation string) {
	SyncOperationsCounter.WithLabelValues(collection, operation).Inc()
}

// RecordSyncFailure increments the counter for failed sync upserts
func RecordSyncFailure(collection, code string) {
	SyncFailuresCounter.WithLabelValues(collection, code).Inc()
}

// RecordBatchSize records the number of records in a sync batch
func RecordBatchSize(collection string, size int) {
	BatchSizeHistogram.WithLabelValues(collection).Observe(float64(size))
}

// UpdateRegisteredMerchants updates the registered merchants gauge
func UpdateRegisteredMerchants(count int) {
	RegisteredMerchantsGauge.Set(float64(count))
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
