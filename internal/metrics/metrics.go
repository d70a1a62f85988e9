// Package metrics exposes Prometheus collectors for the HTTP layer, the word
// list and the persistent store.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	wordOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word_operations_total",
			Help: "Word list operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	wordListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "word_list_size",
			Help: "Number of entries in the word list",
		},
	)

	storageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_failures_total",
			Help: "Swallowed persistent store failures",
		},
		[]string{"operation", "key"},
	)
)

// Middleware collects request metrics for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RecordWordOperation counts one word list operation. err == nil is a success.
func RecordWordOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	wordOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetWordListSize publishes the current list length.
func SetWordListSize(n int) {
	wordListSize.Set(float64(n))
}

// RecordStorageFailure counts a failure swallowed by the persistent store.
func RecordStorageFailure(operation, key string) {
	storageFailuresTotal.WithLabelValues(operation, key).Inc()
}
