package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics. Incremented by the telemetry service; exported
// only when RegisterSearchMetrics has been called (the server does, the
// embedded library does not have to).
var (
	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sift",
			Name:      "searches_total",
			Help:      "Total number of search queries",
		},
	)

	SearchesNoResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sift",
			Name:      "searches_no_results_total",
			Help:      "Total number of search queries that matched nothing",
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sift",
			Name:      "search_duration_seconds",
			Help:      "In-process search duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	IndexItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sift",
			Name:      "index_items",
			Help:      "Number of items currently in the search index",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchesNoResultsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(IndexItems)
	searchMetricsRegistered = true
}
