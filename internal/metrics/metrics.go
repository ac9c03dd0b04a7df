// Package metrics provides Prometheus metrics collection for the sourcing-lens service.
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

	// RankingsTotal counts engine rankings by priority and outcome.
	RankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landed_cost_rankings_total",
			Help: "Total number of landed-cost rankings",
		},
		[]string{"priority", "status"},
	)

	// RankingDuration tracks the time spent ranking lanes.
	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "landed_cost_ranking_duration_seconds",
			Help:    "Landed-cost ranking duration in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// AnalysesTotal counts analyses by kind (sku, portfolio, compare) and outcome.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sourcing_analyses_total",
			Help: "Total number of sourcing analyses",
		},
		[]string{"kind", "status"},
	)

	// PortfolioSavings observes the estimated annual savings of each portfolio analysis.
	PortfolioSavings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_estimated_savings",
			Help:    "Estimated annual savings per portfolio analysis",
			Buckets: []float64{0, 100, 1000, 10000, 50000, 100000, 500000, 1000000},
		},
	)

	// HSLookupsTotal counts HS-code lookups by result.
	HSLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hs_code_lookups_total",
			Help: "Total number of HS-code lookups",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
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

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRanking records metrics for one engine ranking.
func RecordRanking(duration time.Duration, priority, status string) {
	RankingDuration.Observe(duration.Seconds())
	RankingsTotal.WithLabelValues(priority, status).Inc()
}

// RecordAnalysis records the outcome of an analysis flow.
func RecordAnalysis(kind, status string) {
	AnalysesTotal.WithLabelValues(kind, status).Inc()
}

// RecordPortfolioSavings observes the total savings of a portfolio analysis.
func RecordPortfolioSavings(total float64) {
	PortfolioSavings.Observe(total)
}

// RecordHSLookup records the result of an HS-code lookup.
func RecordHSLookup(result string) {
	HSLookupsTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState publishes a breaker state as a gauge value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
