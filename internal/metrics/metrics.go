// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Feed requests by how they were served",
		},
		[]string{"result"}, // result: "cache_hit", "computed", "error"
	)

	FeedComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_compute_duration_seconds",
			Help:    "Time spent recalling and ranking a feed on a cache miss",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecallResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recall_results_total",
			Help: "Recall requests by the source that produced the candidates",
		},
		[]string{"source"}, // source: "cache", "vector", "cold_start"
	)

	EngagementOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_operations_total",
			Help: "Buffered engagement operations by kind and outcome",
		},
		[]string{"kind", "action"},
	)

	FlushedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_flushed_operations_total",
			Help: "Engagement operations written to the durable store",
		},
		[]string{"subject_type"},
	)

	FlushFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_flush_failures_total",
			Help: "Subjects whose flush failed and were left pending",
		},
		[]string{"subject_type"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_rate_limited_total",
			Help: "Engagement writes rejected by the per-user rate limit",
		},
	)
)
