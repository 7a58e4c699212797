package health

import (
	"os"
	"runtime"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// Alive always reports healthy.
func Alive() CheckFunc {
	return func() Check {
		return Check{Name: "process", Status: StatusHealthy}
	}
}

// GraphLoaded inspects the store statistics. A graph without airports is
// unhealthy; one without routes or without a traffic snapshot is degraded.
func GraphLoaded(stats func() storage.Statistics) CheckFunc {
	return func() Check {
		s := stats()
		check := Check{
			Name: "graph",
			Details: map[string]any{
				"airports":         s.AirportCount,
				"routes":           s.RouteCount,
				"indexed_codes":    s.IndexedCodes,
				"traffic_computed": s.TrafficComputed,
			},
		}

		switch {
		case s.AirportCount == 0:
			check.Status = StatusUnhealthy
			check.Message = "No airports loaded"
		case s.RouteCount == 0:
			check.Status = StatusDegraded
			check.Message = "No routes loaded"
		case !s.TrafficComputed:
			check.Status = StatusDegraded
			check.Message = "Traffic not computed"
		default:
			check.Status = StatusHealthy
			check.Message = "Graph loaded"
		}
		return check
	}
}

// DataFile reports whether a source file is still present. A vanished file
// only degrades health because the graph is already in memory.
func DataFile(dataset, path string) CheckFunc {
	return func() Check {
		check := Check{
			Name:    dataset,
			Details: map[string]any{"path": path},
		}

		info, err := os.Stat(path)
		if err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
			return check
		}
		check.Details["size_bytes"] = info.Size()
		check.Status = StatusHealthy
		return check
	}
}

// Memory degrades when heap allocation exceeds maxHeapBytes. Zero disables
// the threshold.
func Memory(maxHeapBytes uint64) CheckFunc {
	return func() Check {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		check := Check{
			Name: "memory",
			Details: map[string]any{
				"heap_alloc_bytes": m.HeapAlloc,
				"sys_bytes":        m.Sys,
				"goroutines":       runtime.NumGoroutine(),
			},
			Status:  StatusHealthy,
			Message: "Memory usage normal",
		}
		if maxHeapBytes > 0 && m.HeapAlloc > maxHeapBytes {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		}
		return check
	}
}
