package ingest

import (
	"errors"
	"io"

	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/metrics"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// Dataset names used in reports, logs and metrics.
const (
	DatasetAirports = "airports"
	DatasetRoutes   = "routes"
)

// Loader reads airport and route rows into a GraphStorage. Loading is best
// effort: malformed rows are counted and skipped, never fatal.
type Loader struct {
	store    *storage.GraphStorage
	logger   logging.Logger
	metrics  *metrics.Registry
	defaults RouteDefaults
	maxLine  int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger. Without it the loader is silent.
func WithLogger(logger logging.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithMetrics records row outcomes and durations in registry.
func WithMetrics(registry *metrics.Registry) LoaderOption {
	return func(l *Loader) { l.metrics = registry }
}

// WithRouteDefaults overrides the placeholder time and cost weights.
func WithRouteDefaults(defaults RouteDefaults) LoaderOption {
	return func(l *Loader) { l.defaults = defaults }
}

// WithMaxLineBytes overrides MaxLineBytes. Non-positive values are ignored.
func WithMaxLineBytes(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxLine = n
		}
	}
}

// NewLoader creates a loader writing into store.
func NewLoader(store *storage.GraphStorage, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:    store,
		logger:   logging.NewNopLogger(),
		defaults: DefaultRouteDefaults(),
		maxLine:  MaxLineBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(logging.Component("ingest"))
	return l
}

// LoadAirports loads airports from path. Rows repeating a known identity are
// counted in LoadReport.Duplicates, not Loaded.
func (l *Loader) LoadAirports(path string) (LoadReport, error) {
	return l.loadFile(DatasetAirports, path, l.ReadAirports)
}

// LoadRoutes loads routes from path. Distances are computed against the
// airports already in the store, so airports must be loaded first.
func (l *Loader) LoadRoutes(path string) (LoadReport, error) {
	return l.loadFile(DatasetRoutes, path, l.ReadRoutes)
}

// ReadAirports ingests airport rows from r. source is only used for
// reporting.
func (l *Loader) ReadAirports(r io.Reader, source string) (LoadReport, error) {
	return l.scan(DatasetAirports, source, r, func(fields []string) rowOutcome {
		res := ParseAirportRow(fields)
		if !res.OK() {
			return rowOutcome{reason: res.Reason, field: res.Field}
		}
		if !l.store.AddAirport(res.Record) {
			l.logger.Debug("duplicate airport ignored", logging.AirportID(res.Record.ID))
			return rowOutcome{duplicate: true}
		}
		return rowOutcome{}
	})
}

// ReadRoutes ingests route rows from r.
func (l *Loader) ReadRoutes(r io.Reader, source string) (LoadReport, error) {
	return l.scan(DatasetRoutes, source, r, func(fields []string) rowOutcome {
		res := ParseRouteRow(fields)
		if !res.OK() {
			return rowOutcome{reason: res.Reason, field: res.Field}
		}
		row := res.Record
		distance := l.store.DistanceBetween(row.SourceID, row.DestinationID)
		l.store.AddRoute(row.ToRoute(l.defaults, distance))
		return rowOutcome{}
	})
}

func (l *Loader) loadFile(dataset, path string, read func(io.Reader, string) (LoadReport, error)) (LoadReport, error) {
	src, err := openSource(path)
	if err != nil {
		l.logger.Warn("cannot open data source",
			logging.Dataset(dataset), logging.Source(path), logging.Error(err))
		if l.metrics != nil {
			l.metrics.RecordSourceFailure(dataset)
		}
		return newLoadReport(dataset, path), sourceError(dataset, path, err)
	}
	defer src.Close()

	return read(src, path)
}

type rowOutcome struct {
	reason    SkipReason
	field     string
	duplicate bool
}

func (l *Loader) scan(dataset, source string, r io.Reader, handle func([]string) rowOutcome) (LoadReport, error) {
	report := newLoadReport(dataset, source)
	timer := logging.StartTimer(l.logger, "ingest finished", logging.Dataset(dataset), logging.Source(source))

	lines := newLineReader(r, l.maxLine)
	var readErr error
	for {
		line, tooLong, err := lines.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			break
		}

		report.Rows++
		outcome := rowOutcome{reason: SkipLineTooLong}
		if !tooLong {
			outcome = handle(SplitLine(line))
		}
		switch {
		case outcome.reason != NotSkipped:
			report.skipped(outcome.reason)
			l.logger.Debug("row skipped",
				logging.Dataset(dataset),
				logging.Rows(report.Rows),
				logging.String("reason", outcome.reason.String()),
				logging.String("field", outcome.field))
		case outcome.duplicate:
			report.Duplicates++
		default:
			report.Loaded++
		}
	}

	var err error
	if readErr != nil {
		// Rows read before the failure stay in the store.
		err = sourceError(dataset, source, readErr)
		timer.EndError(err, logging.Rows(report.Rows))
	} else {
		timer.End(logging.Rows(report.Rows),
			logging.Int("loaded", report.Loaded),
			logging.Int("skipped", report.Skipped),
			logging.Int("duplicates", report.Duplicates))
	}

	if l.metrics != nil {
		l.metrics.RecordIngest(dataset, report.Loaded, report.Skipped, timer.Elapsed())
	}
	return report, err
}
