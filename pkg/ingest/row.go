package ingest

import "github.com/dd0wney/cluso-flightgraph/pkg/storage"

// MinFields is the number of comma-separated fields a row needs to be
// considered at all.
const MinFields = 8

// SkipReason says why a row produced no record.
type SkipReason int

const (
	// NotSkipped marks a row that produced a record.
	NotSkipped SkipReason = iota
	SkipEmptyLine
	SkipTooFewFields
	SkipBadNumber
	SkipLineTooLong
)

func (r SkipReason) String() string {
	switch r {
	case NotSkipped:
		return "ok"
	case SkipEmptyLine:
		return "empty_line"
	case SkipTooFewFields:
		return "too_few_fields"
	case SkipBadNumber:
		return "bad_number"
	case SkipLineTooLong:
		return "line_too_long"
	default:
		return "unknown"
	}
}

// RowResult is the outcome of parsing one row: either a record or the reason
// the row was skipped. Field names the offending column for SkipBadNumber.
type RowResult[T any] struct {
	Record T
	Reason SkipReason
	Field  string
}

// OK reports whether the row produced a record.
func (r RowResult[T]) OK() bool {
	return r.Reason == NotSkipped
}

func accept[T any](record T) RowResult[T] {
	return RowResult[T]{Record: record}
}

func skip[T any](reason SkipReason, field string) RowResult[T] {
	return RowResult[T]{Reason: reason, Field: field}
}

// RouteRow is a parsed route row before weights are attached.
type RouteRow struct {
	Airline         string
	AirlineID       int
	SourceCode      string
	SourceID        int
	DestinationCode string
	DestinationID   int
	Stops           int
}

// RouteDefaults are the placeholder weights given to every ingested route.
type RouteDefaults struct {
	Time float64
	Cost float64
}

// DefaultRouteDefaults returns the store's placeholder weights.
func DefaultRouteDefaults() RouteDefaults {
	return RouteDefaults{Time: storage.DefaultRouteTime, Cost: storage.DefaultRouteCost}
}

// ToRoute builds the stored route with the given weights.
func (r RouteRow) ToRoute(defaults RouteDefaults, distance float64) storage.Route {
	return storage.NewRoute(r.SourceID, r.DestinationID,
		storage.WithAirline(r.Airline, r.AirlineID),
		storage.WithCodes(r.SourceCode, r.DestinationCode),
		storage.WithStops(r.Stops),
		storage.WithTime(defaults.Time),
		storage.WithCost(defaults.Cost),
		storage.WithDistance(distance),
	)
}

// LoadReport summarises one ingestion run. Rows = Loaded + Skipped +
// Duplicates.
type LoadReport struct {
	Dataset         string
	Source          string
	Rows            int
	Loaded          int
	Skipped         int
	Duplicates      int
	SkippedByReason map[SkipReason]int
}

func newLoadReport(dataset, source string) LoadReport {
	return LoadReport{
		Dataset:         dataset,
		Source:          source,
		SkippedByReason: make(map[SkipReason]int),
	}
}

func (r *LoadReport) skipped(reason SkipReason) {
	r.Skipped++
	r.SkippedByReason[reason]++
}
