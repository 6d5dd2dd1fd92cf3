package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// decisionsTotal counts routing decisions by outcome.
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_decisions_total",
			Help: "Total number of routing decisions, labeled by domain, stakes and selected model",
		},
		[]string{"domain", "stakes", "model"},
	)

	// fallbacksTotal counts requests that resolved to the constant fallback decision.
	fallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "router_fallback_decisions_total",
			Help: "Total number of requests answered with the fixed fallback decision",
		},
	)

	// toolDetectionsTotal counts auxiliary tool triggers.
	toolDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_tool_detections_total",
			Help: "Total number of auxiliary tool triggers, labeled by tool",
		},
		[]string{"tool"},
	)

	// complexityScore observes the computed complexity score distribution.
	complexityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "router_complexity_score",
			Help:    "Distribution of computed complexity scores",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	// routeLatency observes end-to-end classification latency in seconds.
	routeLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "router_route_duration_seconds",
			Help:    "Time taken to classify one request and assemble the decision",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)
)

// RecordDecision records a successful routing decision.
func RecordDecision(domain, stakes, model string) {
	decisionsTotal.WithLabelValues(domain, stakes, model).Inc()
}

// RecordFallback records a request that fell back to the constant decision.
func RecordFallback() {
	fallbacksTotal.Inc()
}

// RecordToolDetection records one auxiliary tool trigger.
func RecordToolDetection(tool string) {
	toolDetectionsTotal.WithLabelValues(tool).Inc()
}

// RecordComplexityScore records the computed complexity score of a request.
func RecordComplexityScore(score int) {
	complexityScore.Observe(float64(score))
}

// RecordRouteLatency records the wall time of one classification.
func RecordRouteLatency(seconds float64) {
	routeLatency.Observe(seconds)
}
