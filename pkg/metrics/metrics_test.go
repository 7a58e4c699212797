package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.IngestRowsTotal == nil {
		t.Error("IngestRowsTotal not initialized")
	}
	if r.GraphAirportsTotal == nil {
		t.Error("GraphAirportsTotal not initialized")
	}
	if r.QueriesTotal == nil {
		t.Error("QueriesTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest("airports", 10, 2, 50*time.Millisecond)
	r.RecordIngest("airports", 5, 1, 20*time.Millisecond)

	loaded, err := r.IngestRowsTotal.GetMetricWithLabelValues("airports", RowLoaded)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, loaded); got != 15 {
		t.Errorf("loaded rows = %v, want 15", got)
	}

	skipped, err := r.IngestRowsTotal.GetMetricWithLabelValues("airports", RowSkipped)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, skipped); got != 3 {
		t.Errorf("skipped rows = %v, want 3", got)
	}

	hist, err := r.IngestDuration.GetMetricWithLabelValues("airports")
	if err != nil {
		t.Fatalf("Failed to get histogram: %v", err)
	}
	var metric dto.Metric
	if err := hist.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("ingest duration samples = %v, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestRecordSourceFailure(t *testing.T) {
	r := NewRegistry()
	r.RecordSourceFailure("routes")

	c, err := r.IngestSourceFailures.GetMetricWithLabelValues("routes")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("source failures = %v, want 1", got)
	}
}

func TestRecordQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordQuery("path", "found", 10*time.Millisecond)
	r.RecordQuery("path", "found", 2*time.Second)
	r.RecordQuery("path", "not_found", time.Millisecond)

	found, err := r.QueriesTotal.GetMetricWithLabelValues("path", "found")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, found); got != 2 {
		t.Errorf("found queries = %v, want 2", got)
	}

	slow, err := r.SlowQueries.GetMetricWithLabelValues("path")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, slow); got != 1 {
		t.Errorf("slow queries = %v, want 1", got)
	}
}

func TestRecordPathHops(t *testing.T) {
	r := NewRegistry()
	r.RecordPathHops(2)
	r.RecordPathHops(0)

	var metric dto.Metric
	if err := r.QueryPathHops.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("hop samples = %v, want 2", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 2 {
		t.Errorf("hop sum = %v, want 2", metric.Histogram.GetSampleSum())
	}
}

func TestGaugeMetrics(t *testing.T) {
	r := NewRegistry()

	r.GraphAirportsTotal.Set(7698)
	r.GraphRoutesTotal.Set(67663)

	tests := []struct {
		name     string
		gauge    prometheus.Gauge
		expected float64
	}{
		{"GraphAirportsTotal", r.GraphAirportsTotal, 7698},
		{"GraphRoutesTotal", r.GraphRoutesTotal, 67663},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var metric dto.Metric
			if err := tt.gauge.Write(&metric); err != nil {
				t.Fatalf("Failed to write metric: %v", err)
			}

			if metric.Gauge.GetValue() != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, metric.Gauge.GetValue(), tt.expected)
			}
		})
	}
}

func TestUpdateSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	var metric dto.Metric
	if err := r.GoRoutines.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() < 1 {
		t.Errorf("GoRoutines = %v, want >= 1", metric.Gauge.GetValue())
	}

	if err := r.MemorySysBytes.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() <= 0 {
		t.Errorf("MemorySysBytes = %v, want > 0", metric.Gauge.GetValue())
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	r.RecordQuery("path", "found", time.Millisecond)
	r.RecordIngest("routes", 1, 0, time.Millisecond)

	promRegistry := r.GetPrometheusRegistry()
	if promRegistry == nil {
		t.Fatal("GetPrometheusRegistry() returned nil")
	}

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	expectedMetrics := []string{
		"flightgraph_graph_airports_total",
		"flightgraph_queries_total",
		"flightgraph_ingest_rows_total",
		"flightgraph_uptime_seconds",
	}

	metricNames := make(map[string]bool)
	for _, m := range metrics {
		metricNames[m.GetName()] = true
	}

	for _, expected := range expectedMetrics {
		if !metricNames[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.GraphRoutesTotal.Set(3)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	if !strings.Contains(string(body), "flightgraph_graph_routes_total 3") {
		t.Errorf("metrics output missing route gauge:\n%s", body)
	}
	if !strings.Contains(string(body), "flightgraph_goroutines") {
		t.Error("metrics output missing goroutine gauge")
	}
}
