package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weaviate_client_request_duration_seconds",
			Help:    "Duration of requests by transport and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"transport", "method"},
	)

	RequestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weaviate_client_request_errors_total",
			Help: "Total number of failed requests by transport and kind",
		},
		[]string{"transport", "kind"},
	)

	// Batch metrics
	BatchObjectsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weaviate_client_batch_objects_sent_total",
			Help: "Total number of objects acknowledged by the server",
		},
	)

	BatchObjectsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weaviate_client_batch_objects_failed_total",
			Help: "Total number of objects that exhausted retries",
		},
	)

	BatchReferencesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weaviate_client_batch_references_sent_total",
			Help: "Total number of references acknowledged by the server",
		},
	)

	BatchRecommendedSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "weaviate_client_batch_recommended_size",
			Help: "Current recommended batch size from the dynamic controller",
		},
	)

	BatchRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weaviate_client_batch_retries_total",
			Help: "Total number of items re-enqueued after a retriable error",
		},
	)

	// Auth metrics
	TokenRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weaviate_client_token_refreshes_total",
			Help: "Total number of OIDC token refreshes by outcome",
		},
		[]string{"outcome"},
	)
)

// Register registers all client metrics with the given registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestDuration,
		RequestErrors,
		BatchObjectsSent,
		BatchObjectsFailed,
		BatchReferencesSent,
		BatchRecommendedSize,
		BatchRetries,
		TokenRefreshes,
	)
}

// Handler returns an HTTP handler exposing the default registry, for
// applications that want to scrape client metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
