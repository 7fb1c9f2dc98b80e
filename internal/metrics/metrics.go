// Package metrics provides Prometheus metrics collection for the box packing service.
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

	// PackingsTotal tracks packing runs by outcome.
	PackingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packings_total",
			Help: "Total number of packing runs",
		},
		[]string{"status"},
	)

	// PackingDuration tracks the wall time of a packing run.
	PackingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_duration_seconds",
			Help:    "Packing run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// ItemsPacked counts items successfully placed into boxes.
	ItemsPacked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "items_packed_total",
			Help: "Total number of items placed into boxes",
		},
	)

	// ItemsUnpacked counts items no candidate box could take.
	ItemsUnpacked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "items_unpacked_total",
			Help: "Total number of items returned unpacked",
		},
	)

	// BoxesUsed counts boxes committed by packing runs.
	BoxesUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxes_used_total",
			Help: "Total number of boxes used by packing runs",
		},
	)

	// CacheOperationsTotal tracks result cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current result cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks result cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// RateLimiterVisitors tracks how many clients the rate limiter is
	// currently following.
	RateLimiterVisitors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_visitors",
			Help: "Current number of tracked rate limiter visitors",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPacking records metrics for one packing run.
func RecordPacking(duration time.Duration, status string, packed, unpacked, boxes int) {
	PackingDuration.Observe(duration.Seconds())
	PackingsTotal.WithLabelValues(status).Inc()
	ItemsPacked.Add(float64(packed))
	ItemsUnpacked.Add(float64(unpacked))
	BoxesUsed.Add(float64(boxes))
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

// UpdateRateLimiterMetrics updates the tracked-visitor gauge.
func UpdateRateLimiterMetrics(visitors int) {
	RateLimiterVisitors.Set(float64(visitors))
}
