// Package observability provides metrics and tracing.
package observability

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// EnrichmentDegradations counts feed enrichment steps that fell back to
	// placeholder or zero values because a lookup fetch failed.
	EnrichmentDegradations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_enrichment_degradations_total",
		Help: "Total number of degraded enrichment steps by lookup name",
	}, []string{"enrichment"})

	// NotificationsEmitted counts notifications created by type.
	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_notifications_emitted_total",
		Help: "Total number of notifications emitted by type",
	}, []string{"type"})

	// NotificationFailures counts best-effort notification writes that failed.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_notification_failures_total",
		Help: "Total number of failed notification writes by type",
	}, []string{"type"})

	// WebSocketConnectionsTotal is the gauge of active notification stream connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inkwell_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped because a client's
	// send buffer was full or closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"reason"})

	// CacheHits counts cache-aside hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_hits_total",
		Help: "Total number of cache hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache-aside misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_misses_total",
		Help: "Total number of cache misses by key prefix",
	}, []string{"prefix"})
)

// ObserveQuery records one query's latency, deriving the operation and table
// labels from the SQL text. Called from the GORM logger's Trace hook.
func ObserveQuery(sql string, elapsed time.Duration) {
	op, table := sqlLabels(sql)
	DatabaseQueryLatency.WithLabelValues(op, table).Observe(elapsed.Seconds())
}

// sqlLabels extracts coarse operation and table labels from a SQL statement.
// Unrecognized statements land in "other"/"unknown" so the label set stays
// bounded.
func sqlLabels(sql string) (string, string) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other", "unknown"
	}

	op := strings.ToLower(fields[0])
	table := "unknown"
	switch op {
	case "select", "delete":
		for i, f := range fields {
			if strings.EqualFold(f, "from") && i+1 < len(fields) {
				table = tableName(fields[i+1])
				break
			}
		}
	case "insert":
		for i, f := range fields {
			if strings.EqualFold(f, "into") && i+1 < len(fields) {
				table = tableName(fields[i+1])
				break
			}
		}
	case "update":
		if len(fields) > 1 {
			table = tableName(fields[1])
		}
	default:
		op = "other"
	}
	return op, table
}

func tableName(token string) string {
	token = strings.Trim(token, `"`)
	if i := strings.IndexByte(token, '('); i >= 0 {
		token = token[:i]
	}
	if token == "" {
		return "unknown"
	}
	return token
}
