package health

import (
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Scope selects which set of checks a request runs.
type Scope string

const (
	ScopeHealth    Scope = "health"
	ScopeReadiness Scope = "readiness"
	ScopeLiveness  Scope = "liveness"
)

// Check is the outcome of one named check.
type Check struct {
	Name        string         `json:"name"`
	Status      Status         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	LastChecked time.Time      `json:"last_checked"`
	Duration    time.Duration  `json:"duration_ns"`
}

// CheckFunc performs a single check.
type CheckFunc func() Check

// Checker holds the registered checks of each scope.
type Checker struct {
	mu      sync.RWMutex
	started time.Time
	scopes  map[Scope]map[string]CheckFunc
}

// Report is the aggregated result of a scope. The worst check status wins.
type Report struct {
	Scope     Scope            `json:"scope"`
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    float64          `json:"uptime_seconds"`
	Checks    map[string]Check `json:"checks"`
}
