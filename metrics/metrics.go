package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acelerador_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acelerador_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acelerador_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acelerador_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acelerador_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// TransitionsDenied counts workflow transitions refused by the gate
	TransitionsDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acelerador_workflow_transitions_denied_total",
			Help: "Workflow transitions refused by precondition checks",
		},
		[]string{"code"},
	)

	// PhaseChanges counts administrator-initiated phase transitions
	PhaseChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acelerador_phase_changes_total",
			Help: "Total number of system phase changes",
		},
		[]string{"from", "to"},
	)

	// RankingBroadcasts counts websocket ranking pushes
	RankingBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acelerador_ranking_broadcasts_total",
			Help: "Total number of ranking updates broadcast over websocket",
		},
	)

	// SessionCacheHits counts session lookups served by a store tier
	SessionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acelerador_session_cache_hits_total",
			Help: "Total number of session cache hits",
		},
	)

	// SessionCacheMisses counts session lookups that fell through to the database
	SessionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acelerador_session_cache_misses_total",
			Help: "Total number of session cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acelerador_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "acelerador_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acelerador_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acelerador_system_load_average",
			Help: "System load average",
		},
		[]string{"period"},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
