package prometheus

import (
	"backoffice-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Upstream API call metrics
	UpstreamRequestsTotal   prometheus.CounterVec
	UpstreamRequestDuration prometheus.HistogramVec
	UpstreamStaleDropsTotal prometheus.Counter

	// Session metrics
	LoginAttemptsCounter  prometheus.Counter
	LoginSuccessCounter   prometheus.Counter
	SessionTeardownsTotal prometheus.Counter

	// Screen metrics
	ScreenRefreshCounter prometheus.CounterVec
	DashboardLoadsTotal  prometheus.CounterVec

	// Export metrics
	ExportsTotal prometheus.CounterVec
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

	// Upstream API call metrics
	UpstreamRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_upstream_requests_total",
			Help: "Total number of calls issued to the rental-management API",
		},
		[]string{"method", "path", "status"},
	)

	UpstreamRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_upstream_request_duration_seconds",
			Help:    "Duration of rental-management API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UpstreamStaleDropsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_upstream_stale_drops_total",
			Help: "Total number of superseded list responses discarded",
		},
	)

	// Session metrics
	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_success_total",
			Help: "Total number of successful logins",
		},
	)

	SessionTeardownsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_session_teardowns_total",
			Help: "Total number of sessions cleared after logout or 401",
		},
	)

	// Screen metrics
	ScreenRefreshCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_screen_refresh_total",
			Help: "Total number of list screen refreshes",
		},
		[]string{"screen", "outcome"},
	)

	DashboardLoadsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_dashboard_loads_total",
			Help: "Total number of dashboard aggregation runs",
		},
		[]string{"outcome"},
	)

	// Export metrics
	ExportsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_exports_total",
			Help: "Total number of CSV exports",
		},
		[]string{"screen"},
	)
}

// TrackUpstreamCall returns a function that records the duration of an
// upstream API call
func TrackUpstreamCall(method, path string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		UpstreamRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

// RecordScreenRefresh increments the counter for a list screen refresh
func RecordScreenRefresh(screen, outcome string) {
	ScreenRefreshCounter.WithLabelValues(screen, outcome).Inc()
}

// RecordDashboardLoad increments the counter for a dashboard aggregation run
func RecordDashboardLoad(outcome string) {
	DashboardLoadsTotal.WithLabelValues(outcome).Inc()
}

// RecordExport increments the counter for a CSV export
func RecordExport(screen string) {
	ExportsTotal.WithLabelValues(screen).Inc()
}
