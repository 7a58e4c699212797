package health

import (
	"encoding/json"
	"net/http"
)

// Handler serves the report of scope as JSON. The general scope answers 200
// while degraded; readiness and liveness answer 200 only when healthy.
func (c *Checker) Handler(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(scope)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode(scope, report.Status))
		json.NewEncoder(w).Encode(report)
	}
}

// Mount registers /health, /health/ready and /health/live on mux.
func (c *Checker) Mount(mux *http.ServeMux) {
	mux.Handle("/health", c.Handler(ScopeHealth))
	mux.Handle("/health/ready", c.Handler(ScopeReadiness))
	mux.Handle("/health/live", c.Handler(ScopeLiveness))
}

func statusCode(scope Scope, status Status) int {
	switch {
	case status == StatusHealthy:
		return http.StatusOK
	case status == StatusDegraded && scope == ScopeHealth:
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}
