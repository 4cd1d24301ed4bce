// Package metrics provides Prometheus metrics collection for the pantry service.
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

	// RecipeCompletionsTotal tracks recipe completion attempts by outcome.
	RecipeCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_completions_total",
			Help: "Total number of recipe completion attempts",
		},
		[]string{"status"},
	)

	// AllocationDuration tracks how long computing a consumption plan takes.
	AllocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "allocation_duration_seconds",
			Help:    "Batch allocation (consumption plan) duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// InsufficientIngredientsTotal counts ingredients that could not be
	// fully covered by inventory.
	InsufficientIngredientsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insufficient_ingredients_total",
			Help: "Total number of ingredients with an unfulfilled shortfall",
		},
	)

	// BatchesDepletedTotal counts batches emptied by consumption.
	BatchesDepletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "batches_depleted_total",
			Help: "Total number of batches fully consumed",
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

// RecordCompletion records metrics for one recipe completion attempt.
func RecordCompletion(duration time.Duration, status string) {
	AllocationDuration.Observe(duration.Seconds())
	RecipeCompletionsTotal.WithLabelValues(status).Inc()
}

// RecordShortfalls counts ingredients left with a shortfall.
func RecordShortfalls(count int) {
	if count > 0 {
		InsufficientIngredientsTotal.Add(float64(count))
	}
}

// RecordDepletions counts batches emptied by an applied plan.
func RecordDepletions(count int) {
	if count > 0 {
		BatchesDepletedTotal.Add(float64(count))
	}
}
