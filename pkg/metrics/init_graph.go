package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphAirportsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flightgraph_graph_airports_total",
			Help: "Total number of airports in the graph",
		},
	)

	r.GraphRoutesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flightgraph_graph_routes_total",
			Help: "Total number of routes in the graph",
		},
	)

	r.TrafficComputeRuns = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flightgraph_traffic_compute_total",
			Help: "Total number of traffic snapshot recomputations",
		},
	)
}
