package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ingestion row outcomes
const (
	RowLoaded  = "loaded"
	RowSkipped = "skipped"
)

// RecordIngest records the outcome of one ingestion run for a dataset
// ("airports" or "routes").
func (r *Registry) RecordIngest(dataset string, loaded, skipped int, duration time.Duration) {
	r.IngestRowsTotal.WithLabelValues(dataset, RowLoaded).Add(float64(loaded))
	r.IngestRowsTotal.WithLabelValues(dataset, RowSkipped).Add(float64(skipped))
	r.IngestDuration.WithLabelValues(dataset).Observe(duration.Seconds())
}

// RecordSourceFailure counts a data source that could not be opened.
func (r *Registry) RecordSourceFailure(dataset string) {
	r.IngestSourceFailures.WithLabelValues(dataset).Inc()
}

// RecordQuery records a query execution
func (r *Registry) RecordQuery(queryType, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(queryType, status).Inc()
	r.QueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())

	if duration > SlowQueryThreshold {
		r.SlowQueries.WithLabelValues(queryType).Inc()
	}
}

// RecordPathHops records the hop count of a found path.
func (r *Registry) RecordPathHops(hops int) {
	r.QueryPathHops.Observe(float64(hops))
}

// UpdateSystemMetrics refreshes uptime, goroutine and memory gauges.
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(r.startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}

// Handler returns an HTTP handler exposing this registry in the Prometheus
// text format. System gauges are refreshed on every scrape.
func (r *Registry) Handler() http.Handler {
	inner := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.UpdateSystemMetrics()
		inner.ServeHTTP(w, req)
	})
}
