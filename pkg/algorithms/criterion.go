package algorithms

import (
	"strings"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// Criterion selects which route field is used as the edge weight.
type Criterion int

const (
	// ByHops weighs every edge as 1. Any unrecognised criterion name maps here.
	ByHops Criterion = iota
	ByDistance
	ByTime
	ByCost
	ByStops
)

var criterionNames = map[Criterion]string{
	ByHops:     "hops",
	ByDistance: "distance",
	ByTime:     "time",
	ByCost:     "cost",
	ByStops:    "stops",
}

// ParseCriterion maps a criterion name to a Criterion. Matching is exact, so
// "Distance" or "" fall back to ByHops.
func ParseCriterion(name string) Criterion {
	switch name {
	case "distance":
		return ByDistance
	case "time":
		return ByTime
	case "cost":
		return ByCost
	case "stops":
		return ByStops
	default:
		return ByHops
	}
}

// String returns the criterion name.
func (c Criterion) String() string {
	if name, ok := criterionNames[c]; ok {
		return name
	}
	return "hops"
}

// Unit returns the display unit of weights under this criterion.
func (c Criterion) Unit() string {
	switch c {
	case ByDistance:
		return "km"
	case ByStops:
		return "stops"
	case ByHops:
		return "hops"
	default:
		return ""
	}
}

// Weight reads the edge weight of r under this criterion.
func (c Criterion) Weight(r storage.Route) float64 {
	switch c {
	case ByDistance:
		return r.Distance
	case ByTime:
		return r.Time
	case ByCost:
		return r.Cost
	case ByStops:
		return float64(r.Stops)
	default:
		return 1
	}
}

// ValidCriteria lists the named weighting criteria.
func ValidCriteria() []string {
	return []string{"distance", "time", "cost", "stops"}
}

// NormalizeCriterion lower-cases and trims user input before ParseCriterion.
// The engine itself is case-sensitive; shells call this first.
func NormalizeCriterion(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
