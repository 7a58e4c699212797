package storage

import (
	"sync"

	"github.com/dd0wney/cluso-flightgraph/pkg/metrics"
)

// GraphStorage is the in-memory airport/route graph.
//
// The store is append-only. Traffic statistics are a snapshot that must be
// recomputed explicitly with ComputeTraffic after routes are loaded.
type GraphStorage struct {
	// Core data structures
	airports map[int]Airport
	routes   []Route

	// Indexes for fast lookups
	adjacency map[int][]Edge // source airport ID -> outgoing edges in insertion order
	codes     *CodeIndex     // IATA code -> airport ID

	// Traffic snapshot
	traffic         map[int]int
	topBusiest      []TrafficEntry
	trafficComputed bool

	duplicates int

	mu sync.RWMutex

	metricsRegistry *metrics.Registry
}

// StorageConfig holds configuration for GraphStorage
type StorageConfig struct {
	// MetricsRegistry receives graph size gauges. Nil disables metrics.
	MetricsRegistry *metrics.Registry
}

// NewGraphStorage creates an empty graph store without metrics.
func NewGraphStorage() *GraphStorage {
	return NewGraphStorageWithConfig(StorageConfig{})
}

// NewGraphStorageWithConfig creates an empty graph store with custom config.
func NewGraphStorageWithConfig(config StorageConfig) *GraphStorage {
	return &GraphStorage{
		airports:        make(map[int]Airport),
		adjacency:       make(map[int][]Edge),
		codes:           NewCodeIndex(),
		traffic:         make(map[int]int),
		metricsRegistry: config.MetricsRegistry,
	}
}

// AddAirport inserts the airport if its identity is unseen and registers its
// IATA code. The first insertion of an identity wins; later ones are ignored.
func (gs *GraphStorage) AddAirport(airport Airport) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if _, exists := gs.airports[airport.ID]; exists {
		gs.duplicates++
		return false
	}

	gs.airports[airport.ID] = airport
	gs.codes.Insert(airport.IATA, airport.ID)

	if gs.metricsRegistry != nil {
		gs.metricsRegistry.GraphAirportsTotal.Set(float64(len(gs.airports)))
	}
	return true
}

// AddRoute appends the route and records it in the source's adjacency bucket.
// Endpoints are not validated.
func (gs *GraphStorage) AddRoute(route Route) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.routes = append(gs.routes, route)
	gs.adjacency[route.SourceID] = append(gs.adjacency[route.SourceID], Edge{
		To:    route.DestinationID,
		Route: route,
	})

	if gs.metricsRegistry != nil {
		gs.metricsRegistry.GraphRoutesTotal.Set(float64(len(gs.routes)))
	}
}

// GetAirport returns the airport with the given identity.
func (gs *GraphStorage) GetAirport(id int) (Airport, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	a, ok := gs.airports[id]
	return a, ok
}

// HasAirport reports whether id is a known airport identity.
func (gs *GraphStorage) HasAirport(id int) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	_, ok := gs.airports[id]
	return ok
}

// GetAirportByIATA looks up an airport by code, case-insensitively and with
// enclosing quotes ignored. Unknown codes return an error matching
// ErrAirportNotFound.
func (gs *GraphStorage) GetAirportByIATA(code string) (Airport, error) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	id, ok := gs.codes.Lookup(code)
	if !ok {
		return Airport{}, CodeNotFoundError(code)
	}
	a, ok := gs.airports[id]
	if !ok {
		return Airport{}, CodeNotFoundError(code)
	}
	return a, nil
}

// DistanceBetween returns the haversine distance between two airports, or 0
// when either identity is not (yet) known.
func (gs *GraphStorage) DistanceBetween(sourceID, destinationID int) float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	src, ok := gs.airports[sourceID]
	if !ok {
		return 0
	}
	dst, ok := gs.airports[destinationID]
	if !ok {
		return 0
	}
	return HaversineKm(src.Latitude, src.Longitude, dst.Latitude, dst.Longitude)
}

// OutgoingEdges returns the adjacency bucket of airportID in insertion order.
// The returned slice is shared with the store and must not be modified.
func (gs *GraphStorage) OutgoingEdges(airportID int) []Edge {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return gs.adjacency[airportID]
}

// GetAirports returns a copy of all airports keyed by identity.
func (gs *GraphStorage) GetAirports() map[int]Airport {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	out := make(map[int]Airport, len(gs.airports))
	for id, a := range gs.airports {
		out[id] = a
	}
	return out
}

// GetRoutes returns a copy of all routes in insertion order.
func (gs *GraphStorage) GetRoutes() []Route {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	out := make([]Route, len(gs.routes))
	copy(out, gs.routes)
	return out
}

// AirportCount returns the number of airports.
func (gs *GraphStorage) AirportCount() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.airports)
}

// RouteCount returns the number of routes.
func (gs *GraphStorage) RouteCount() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.routes)
}
