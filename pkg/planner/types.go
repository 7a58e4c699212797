package planner

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// PathRequest asks for the cheapest itinerary between two IATA codes.
// Codes are matched case-insensitively; an empty Criterion uses the
// planner's default.
type PathRequest struct {
	Source      string
	Destination string
	Criterion   string
}

// Itinerary is the answer to a PathRequest. Found is false when no route
// connects the airports; that is not an error.
type Itinerary struct {
	QueryID     string
	Source      storage.Airport
	Destination storage.Airport
	Criterion   string
	Unit        string
	Found       bool
	Airports    []storage.Airport
	TotalWeight float64
	Hops        int
}

// Describe renders the stops as "Name (IATA) -> Name (IATA)".
func (it Itinerary) Describe() string {
	parts := make([]string, len(it.Airports))
	for i, a := range it.Airports {
		parts[i] = Label(a)
	}
	return strings.Join(parts, " -> ")
}

// Total renders the total weight with two decimals and the criterion unit.
func (it Itinerary) Total() string {
	if it.Unit == "" {
		return fmt.Sprintf("%.2f", it.TotalWeight)
	}
	return fmt.Sprintf("%.2f %s", it.TotalWeight, it.Unit)
}

// Label renders an airport as "Name (IATA)". Identities with no airport
// record render as "#id".
func Label(a storage.Airport) string {
	if a.Name == "" && a.IATA == "" {
		return fmt.Sprintf("#%d", a.ID)
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.IATA)
}

// AirportDetails is an airport with its connectivity.
type AirportDetails struct {
	storage.Airport
	OutgoingRoutes int
	Traffic        int
}

// RankedAirport is one entry of the busiest-airport ranking.
type RankedAirport struct {
	Rank        int
	Airport     storage.Airport
	Connections int
}

// ReachLevel lists the airports first reached after Hops flights.
type ReachLevel struct {
	Hops     int
	Airports []storage.Airport
}

// Reachability lists the airports reachable from Source within MaxHops.
type Reachability struct {
	Source  storage.Airport
	MaxHops int
	Levels  []ReachLevel
	Total   int
}
