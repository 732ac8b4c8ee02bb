// Package metrics provides Prometheus collectors for the joint design service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// JointEvaluationsTotal counts evaluations by joint type and outcome.
	// status is "success" or the error kind.
	JointEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joint_evaluations_total",
			Help: "Total number of bolted joint evaluations",
		},
		[]string{"joint_type", "status"},
	)

	// JointEvaluationDuration tracks evaluation latency by joint type.
	JointEvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "joint_evaluation_duration_seconds",
			Help:    "Bolted joint evaluation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"joint_type"},
	)

	// BoltsRequired observes the bolt count of successful designs.
	BoltsRequired = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "joint_bolts_required",
			Help:    "Number of bolts required per successful design",
			Buckets: []float64{2, 4, 6, 8, 10, 12, 16, 20, 30, 50},
		},
		[]string{"joint_type", "governing_mode"},
	)

	// BatchSize observes the number of designs per batch request.
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "joint_batch_size",
			Help:    "Number of designs submitted per batch",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEvaluation records the outcome of one joint evaluation.
func RecordEvaluation(jointType string, duration time.Duration, status string) {
	JointEvaluationDuration.WithLabelValues(jointType).Observe(duration.Seconds())
	JointEvaluationsTotal.WithLabelValues(jointType, status).Inc()
}

// RecordBolts records the bolt count and governing mode of a successful design.
func RecordBolts(jointType, governingMode string, bolts int) {
	BoltsRequired.WithLabelValues(jointType, governingMode).Observe(float64(bolts))
}

// RecordBatch records the size of a batch request.
func RecordBatch(size int) {
	BatchSize.Observe(float64(size))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
