package health

import (
	"time"
)

// NewChecker creates a checker with no registered checks.
func NewChecker() *Checker {
	return &Checker{
		started: time.Now(),
		scopes: map[Scope]map[string]CheckFunc{
			ScopeHealth:    {},
			ScopeReadiness: {},
			ScopeLiveness:  {},
		},
	}
}

// Register adds a check under name to scope, replacing any check of the same
// name.
func (c *Checker) Register(scope Scope, name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	checks, ok := c.scopes[scope]
	if !ok {
		checks = make(map[string]CheckFunc)
		c.scopes[scope] = checks
	}
	checks[name] = check
}

// Run executes every check registered for scope. A scope with no checks
// reports healthy.
func (c *Checker) Run(scope Scope) Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	report := Report{
		Scope:     scope,
		Status:    StatusHealthy,
		Timestamp: now,
		Uptime:    now.Sub(c.started).Seconds(),
		Checks:    make(map[string]Check),
	}

	for name, fn := range c.scopes[scope] {
		start := time.Now()
		check := fn()
		check.Duration = time.Since(start)
		check.LastChecked = start
		if check.Name == "" {
			check.Name = name
		}
		report.Checks[name] = check
		report.Status = worst(report.Status, check.Status)
	}

	return report
}

func worst(a, b Status) Status {
	switch {
	case a == StatusUnhealthy || b == StatusUnhealthy:
		return StatusUnhealthy
	case a == StatusDegraded || b == StatusDegraded:
		return StatusDegraded
	default:
		return StatusHealthy
	}
}
