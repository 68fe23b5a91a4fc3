// Package metrics provides Prometheus metrics for news-pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SourceRunsTotal counts per-source ingestion outcomes.
	SourceRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_pipeline",
			Name:      "source_runs_total",
			Help:      "Total number of per-source ingestion runs by status",
		},
		[]string{"source", "status"},
	)

	// FetchDuration measures upstream fetch duration including retries.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "news_pipeline",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of upstream fetches in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	// ArticlesTotal counts candidates by pipeline outcome.
	ArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_pipeline",
			Name:      "articles_total",
			Help:      "Articles by ingestion outcome",
		},
		[]string{"source", "outcome"},
	)

	// CacheDecisionsTotal counts cache gate decisions.
	CacheDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_pipeline",
			Name:      "cache_decisions_total",
			Help:      "Cache gate decisions per source",
		},
		[]string{"source", "decision"},
	)

	// BreakerOpen reports 1 while a source's circuit breaker is open.
	BreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "news_pipeline",
			Name:      "breaker_open",
			Help:      "Circuit breaker state per source (1 = open, 0 = closed)",
		},
		[]string{"source"},
	)

	// ErrorsTotal counts errors by type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_pipeline",
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)

	// ReadRequestsTotal counts read API calls.
	ReadRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_pipeline",
			Name:      "read_requests_total",
			Help:      "Read API requests by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)
)

// RecordSourceRun records a finished per-source run.
func RecordSourceRun(source, status string, fetchSeconds float64) {
	SourceRunsTotal.WithLabelValues(source, status).Inc()
	if fetchSeconds > 0 {
		FetchDuration.WithLabelValues(source).Observe(fetchSeconds)
	}
}

// RecordArticles adds n articles with the given outcome.
func RecordArticles(source, outcome string, n int) {
	if n <= 0 {
		return
	}
	ArticlesTotal.WithLabelValues(source, outcome).Add(float64(n))
}

// RecordCacheDecision records a cache gate decision by its reason.
func RecordCacheDecision(source, decision string) {
	CacheDecisionsTotal.WithLabelValues(source, decision).Inc()
}

// SetBreakerOpen updates the breaker gauge.
func SetBreakerOpen(source string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	BreakerOpen.WithLabelValues(source).Set(v)
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

// RecordReadRequest records a read API call.
func RecordReadRequest(endpoint, result string) {
	ReadRequestsTotal.WithLabelValues(endpoint, result).Inc()
}
