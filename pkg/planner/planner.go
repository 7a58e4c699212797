// Package planner answers itinerary, lookup and ranking queries by IATA code
// on top of a loaded flight graph.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-flightgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/metrics"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
	"github.com/dd0wney/cluso-flightgraph/pkg/validation"
)

// Query types reported in metrics.
const (
	QueryPath    = "path"
	QueryLookup  = "lookup"
	QueryBusiest = "busiest"
	QueryReach   = "reach"
)

// Query outcomes reported in metrics.
const (
	StatusOK       = "ok"
	StatusNoPath   = "no_path"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
)

// Store is the read side of the graph the planner needs.
type Store interface {
	algorithms.Graph
	GetAirport(id int) (storage.Airport, bool)
	GetAirportByIATA(code string) (storage.Airport, error)
	GetTopBusiestAirports() []storage.TrafficEntry
	TrafficFor(airportID int) int
	GetStatistics() storage.Statistics
}

// Planner runs queries one at a time against a Store.
type Planner struct {
	store            Store
	logger           logging.Logger
	metrics          *metrics.Registry
	defaultCriterion string
	newID            func() string
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for per-query logs.
func WithLogger(logger logging.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// WithMetrics records query counts and latencies in registry.
func WithMetrics(registry *metrics.Registry) Option {
	return func(p *Planner) { p.metrics = registry }
}

// WithDefaultCriterion sets the criterion used when a request names none.
func WithDefaultCriterion(criterion string) Option {
	return func(p *Planner) { p.defaultCriterion = algorithms.NormalizeCriterion(criterion) }
}

// New creates a planner over store. The default criterion is distance.
func New(store Store, opts ...Option) *Planner {
	p := &Planner{
		store:            store,
		logger:           logging.NewNopLogger(),
		defaultCriterion: algorithms.ByDistance.String(),
		newID:            uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logging.Component("planner"))
	return p
}

// DefaultCriterion returns the criterion applied to requests without one.
func (p *Planner) DefaultCriterion() string {
	return p.defaultCriterion
}

// FindPath resolves both codes and runs the shortest-path search.
func (p *Planner) FindPath(req PathRequest) (Itinerary, error) {
	start := time.Now()
	queryID := p.newID()
	log := p.logger.With(logging.QueryID(queryID))

	vreq := validation.PathRequest{
		Source:      storage.NormalizeIATA(req.Source),
		Destination: storage.NormalizeIATA(req.Destination),
		Criterion:   validation.DefaultOr(algorithms.NormalizeCriterion(req.Criterion), p.defaultCriterion),
	}
	if err := validation.ValidatePathRequest(&vreq); err != nil {
		p.record(QueryPath, StatusInvalid, start)
		log.Warn("path request rejected", logging.Error(err))
		return Itinerary{QueryID: queryID}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	src, err := p.resolve(vreq.Source)
	if err != nil {
		p.record(QueryPath, StatusNotFound, start)
		log.Info("path source not found", logging.IATA(vreq.Source))
		return Itinerary{QueryID: queryID}, err
	}
	dst, err := p.resolve(vreq.Destination)
	if err != nil {
		p.record(QueryPath, StatusNotFound, start)
		log.Info("path destination not found", logging.IATA(vreq.Destination))
		return Itinerary{QueryID: queryID}, err
	}

	criterion := algorithms.ParseCriterion(vreq.Criterion)
	result := algorithms.ShortestPath(p.store, src.ID, dst.ID, criterion)

	it := Itinerary{
		QueryID:     queryID,
		Source:      src,
		Destination: dst,
		Criterion:   criterion.String(),
		Unit:        criterion.Unit(),
		Found:       result.Found(),
		TotalWeight: result.TotalWeight,
		Hops:        result.Hops,
	}
	for _, id := range result.Path {
		it.Airports = append(it.Airports, p.airportOrStub(id))
	}

	status := StatusOK
	if !it.Found {
		status = StatusNoPath
	} else if p.metrics != nil {
		p.metrics.RecordPathHops(it.Hops)
	}
	elapsed := p.record(QueryPath, status, start)

	log.Info("path query",
		logging.String("from", src.IATA),
		logging.String("to", dst.IATA),
		logging.Criterion(it.Criterion),
		logging.Bool("found", it.Found),
		logging.Hops(it.Hops),
		logging.Weight(it.TotalWeight),
		logging.Latency(elapsed))

	return it, nil
}

// Airport looks up an airport by code along with its connectivity.
func (p *Planner) Airport(code string) (AirportDetails, error) {
	start := time.Now()

	req := validation.LookupRequest{Code: storage.NormalizeIATA(code)}
	if err := validation.ValidateLookupRequest(&req); err != nil {
		p.record(QueryLookup, StatusInvalid, start)
		return AirportDetails{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	a, err := p.resolve(req.Code)
	if err != nil {
		p.record(QueryLookup, StatusNotFound, start)
		return AirportDetails{}, err
	}

	p.record(QueryLookup, StatusOK, start)
	return AirportDetails{
		Airport:        a,
		OutgoingRoutes: len(p.store.OutgoingEdges(a.ID)),
		Traffic:        p.store.TrafficFor(a.ID),
	}, nil
}

// Busiest joins the traffic snapshot with airport records. Entries whose
// identity has no airport record are left out, so fewer than
// storage.TopBusiestLimit entries may be returned.
func (p *Planner) Busiest() []RankedAirport {
	start := time.Now()

	var ranked []RankedAirport
	for _, entry := range p.store.GetTopBusiestAirports() {
		a, ok := p.store.GetAirport(entry.AirportID)
		if !ok {
			p.logger.Debug("busiest entry without airport record", logging.AirportID(entry.AirportID))
			continue
		}
		ranked = append(ranked, RankedAirport{
			Rank:        len(ranked) + 1,
			Airport:     a,
			Connections: entry.Count,
		})
	}

	p.record(QueryBusiest, StatusOK, start)
	return ranked
}

// Reachable lists airports reachable from code within maxHops flights.
func (p *Planner) Reachable(code string, maxHops int) (Reachability, error) {
	start := time.Now()

	req := validation.ReachRequest{Source: storage.NormalizeIATA(code), MaxHops: maxHops}
	if err := validation.ValidateReachRequest(&req); err != nil {
		p.record(QueryReach, StatusInvalid, start)
		return Reachability{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	src, err := p.resolve(req.Source)
	if err != nil {
		p.record(QueryReach, StatusNotFound, start)
		return Reachability{}, err
	}

	opts := algorithms.DefaultReachOptions()
	opts.MaxHops = req.MaxHops
	result, err := algorithms.Reachable(p.store, src.ID, opts)
	if err != nil {
		p.record(QueryReach, StatusInvalid, start)
		return Reachability{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	out := Reachability{Source: src, MaxHops: req.MaxHops, Total: result.TotalReachable}
	for hop := 1; hop <= req.MaxHops; hop++ {
		ids := result.ByHop[hop]
		if len(ids) == 0 {
			continue
		}
		level := ReachLevel{Hops: hop, Airports: make([]storage.Airport, 0, len(ids))}
		for _, id := range ids {
			level.Airports = append(level.Airports, p.airportOrStub(id))
		}
		out.Levels = append(out.Levels, level)
	}

	p.record(QueryReach, StatusOK, start)
	return out, nil
}

// Stats returns the store statistics.
func (p *Planner) Stats() storage.Statistics {
	return p.store.GetStatistics()
}

func (p *Planner) resolve(code string) (storage.Airport, error) {
	a, err := p.store.GetAirportByIATA(code)
	if err != nil {
		return storage.Airport{}, fmt.Errorf("%w %q: %w", ErrUnknownAirport, code, err)
	}
	return a, nil
}

func (p *Planner) airportOrStub(id int) storage.Airport {
	if a, ok := p.store.GetAirport(id); ok {
		return a
	}
	return storage.Airport{ID: id}
}

func (p *Planner) record(queryType, status string, start time.Time) time.Duration {
	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordQuery(queryType, status, elapsed)
	}
	return elapsed
}
