package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestRowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_ingest_rows_total",
			Help: "Total number of data rows processed during ingestion",
		},
		[]string{"dataset", "status"},
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightgraph_ingest_duration_seconds",
			Help:    "Time spent ingesting one data source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"dataset"},
	)

	r.IngestSourceFailures = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightgraph_ingest_source_failures_total",
			Help: "Total number of data sources that could not be opened",
		},
		[]string{"dataset"},
	)
}
