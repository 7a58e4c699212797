package storage

// Placeholder edge weights. The reference data carries no real-world time or
// fare, so every route starts from these unless overridden.
const (
	DefaultRouteTime = 1.0
	DefaultRouteCost = 100.0
)

// NullMarker is the token the source data uses for an unknown value.
const NullMarker = `\N`

// Airport is a vertex of the flight graph. Its ID comes from the source data.
type Airport struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      string  `json:"iata"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasIATA reports whether the airport carries a usable IATA code.
func (a Airport) HasIATA() bool {
	return NormalizeIATA(a.IATA) != ""
}

// Route is a directed edge between two airport IDs. Endpoints are not required
// to resolve to known airports.
type Route struct {
	Airline         string  `json:"airline"`
	AirlineID       int     `json:"airline_id"`
	SourceCode      string  `json:"source_code"`
	SourceID        int     `json:"source_id"`
	DestinationCode string  `json:"destination_code"`
	DestinationID   int     `json:"destination_id"`
	Stops           int     `json:"stops"`
	Time            float64 `json:"time"`
	Cost            float64 `json:"cost"`
	Distance        float64 `json:"distance_km"`
}

// RouteOption overrides a weight on a route under construction.
type RouteOption func(*Route)

// WithTime sets the time weight.
func WithTime(t float64) RouteOption {
	return func(r *Route) { r.Time = t }
}

// WithCost sets the monetary weight.
func WithCost(c float64) RouteOption {
	return func(r *Route) { r.Cost = c }
}

// WithDistance sets the distance weight in kilometers.
func WithDistance(km float64) RouteOption {
	return func(r *Route) { r.Distance = km }
}

// WithStops sets the stop count.
func WithStops(n int) RouteOption {
	return func(r *Route) { r.Stops = n }
}

// WithAirline sets the operating airline label and id.
func WithAirline(label string, id int) RouteOption {
	return func(r *Route) {
		r.Airline = label
		r.AirlineID = id
	}
}

// WithCodes sets the endpoint codes as they appeared in the source row.
func WithCodes(source, destination string) RouteOption {
	return func(r *Route) {
		r.SourceCode = source
		r.DestinationCode = destination
	}
}

// NewRoute builds a route from sourceID to destinationID with the placeholder
// time and cost weights and zero distance, then applies opts.
func NewRoute(sourceID, destinationID int, opts ...RouteOption) Route {
	r := Route{
		SourceID:      sourceID,
		DestinationID: destinationID,
		Time:          DefaultRouteTime,
		Cost:          DefaultRouteCost,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Edge is one entry of an adjacency bucket.
type Edge struct {
	To    int
	Route Route
}

// TrafficEntry is an airport's connection count in a traffic snapshot.
type TrafficEntry struct {
	AirportID int `json:"airport_id"`
	Count     int `json:"count"`
}

// Statistics summarises the graph contents.
type Statistics struct {
	AirportCount      int  `json:"airports"`
	RouteCount        int  `json:"routes"`
	IndexedCodes      int  `json:"indexed_codes"`
	SourceAirports    int  `json:"source_airports"`
	DuplicatesIgnored int  `json:"duplicates_ignored"`
	TrafficComputed   bool `json:"traffic_computed"`
}
