package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	sqlQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sql_query_duration_seconds",
			Help:    "Duration of SQL operations",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op"},
	)

	blobOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blob_operations_total",
			Help: "Total blob storage operations",
		},
		[]string{"operation", "container", "status"},
	)

	bookingViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_violations_total",
			Help: "Total booking validation violations by reason",
		},
		[]string{"reason"},
	)
)

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveQuery records one database operation.
func ObserveQuery(op string, elapsed time.Duration) {
	sqlQueryDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordBlobOperation counts a blob upload or delete outcome.
// status is "ok" or "error".
func RecordBlobOperation(operation, container, status string) {
	blobOperations.WithLabelValues(operation, container, status).Inc()
}

// RecordBookingViolation counts a rejected booking by violation reason.
func RecordBookingViolation(reason string) {
	bookingViolations.WithLabelValues(reason).Inc()
}
