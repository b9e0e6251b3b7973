// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adbrief_requests_total",
		Help: "Analysis requests by endpoint and outcome.",
	}, []string{"endpoint", "status"})

	RowsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adbrief_rows_processed_total",
		Help: "Raw records run through the analysis pipeline.",
	})

	ABTestsRun = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adbrief_ab_tests_total",
		Help: "Two-proportion tests performed.",
	})

	SignificantResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adbrief_ab_tests_significant_total",
		Help: "A/B tests significant at the fixed 0.05 threshold.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adbrief_request_duration_seconds",
		Help:    "End-to-end handler latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	GeneratorDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "adbrief_generator_duration_seconds",
		Help:    "Latency of the text-generation call.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
	})
)

func Handler() http.Handler { return promhttp.Handler() }
