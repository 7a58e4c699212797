package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_queries_total",
			Help: "Total number of queries executed",
		},
		[]string{"query_type", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightgraph_query_duration_seconds",
			Help:    "Query execution duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"query_type"},
	)

	r.QueryPathHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flightgraph_query_path_hops",
			Help:    "Number of hops in returned paths",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12},
		},
	)

	r.SlowQueries = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_slow_queries_total",
			Help: "Total number of slow queries (>1s)",
		},
		[]string{"query_type"},
	)
}
