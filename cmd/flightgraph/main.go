package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	gql "github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-flightgraph/pkg/config"
	"github.com/dd0wney/cluso-flightgraph/pkg/graphql"
	"github.com/dd0wney/cluso-flightgraph/pkg/health"
	"github.com/dd0wney/cluso-flightgraph/pkg/ingest"
	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/metrics"
	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
	"github.com/dd0wney/cluso-flightgraph/pkg/validation"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "compress" {
		os.Exit(runCompress(os.Args[2:]))
	}

	configPath := flag.String("config", "", "YAML config file (default flightgraph.yaml if present)")
	airports := flag.String("airports", "", "Airports data file (overrides config)")
	routes := flag.String("routes", "", "Routes data file (overrides config)")
	criterion := flag.String("criterion", "", "Default path criterion: distance, time, cost, stops, hops")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9102")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	gqlQuery := flag.String("gql", "", "Run one GraphQL query, print the JSON result and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *airports, *routes, *criterion, *metricsAddr, *logLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	logger := logging.NewStderrLogger(cfg.Level())
	logging.SetDefaultLogger(logger)
	registry := metrics.NewRegistry()

	gs := storage.NewGraphStorageWithConfig(storage.StorageConfig{MetricsRegistry: registry})

	if cfg.Metrics.ListenAddr != "" {
		serveOps(cfg, gs, registry, logger)
	}

	interactive := *gqlQuery == ""
	buildGraph(gs, cfg, registry, logger, interactive)

	p := planner.New(gs,
		planner.WithLogger(logger),
		planner.WithMetrics(registry),
		planner.WithDefaultCriterion(cfg.Query.DefaultCriterion))

	schema, err := graphql.GenerateSchema(p)
	if err != nil {
		logger.Error("schema generation failed", logging.Error(err))
		os.Exit(1)
	}

	if !interactive {
		result := graphql.ExecuteQuery(*gqlQuery, schema)
		if err := writeResult(os.Stdout, result); err != nil {
			logger.Error("writing query result failed", logging.Error(err))
			os.Exit(1)
		}
		if result.HasErrors() {
			os.Exit(1)
		}
		return
	}

	shell := &Shell{
		planner:   p,
		schema:    schema,
		reachHops: cfg.Query.ReachHops,
		scanner:   bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
	}
	shell.Run()
}

// writeResult prints result as indented JSON.
func writeResult(w io.Writer, result *gql.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode query result: %w", err)
	}
	return nil
}

func applyFlags(cfg *config.Config, airports, routes, criterion, metricsAddr, logLevel string) {
	cfg.Data.Airports = validation.DefaultOr(airports, cfg.Data.Airports)
	cfg.Data.Routes = validation.DefaultOr(routes, cfg.Data.Routes)
	cfg.Query.DefaultCriterion = validation.DefaultOr(criterion, cfg.Query.DefaultCriterion)
	cfg.Metrics.ListenAddr = validation.DefaultOr(metricsAddr, cfg.Metrics.ListenAddr)
	cfg.LogLevel = validation.DefaultOr(logLevel, cfg.LogLevel)
}

// buildGraph loads airports then routes into gs and computes the traffic
// snapshot. Source failures are reported, never fatal: a missing data file
// leaves that part of the graph empty, and a read error keeps the rows loaded
// before it.
func buildGraph(gs *storage.GraphStorage, cfg *config.Config, registry *metrics.Registry, logger logging.Logger, verbose bool) {
	loader := ingest.NewLoader(gs,
		ingest.WithLogger(logger),
		ingest.WithMetrics(registry),
		ingest.WithRouteDefaults(ingest.RouteDefaults{
			Time: cfg.RouteDefaults.Time,
			Cost: cfg.RouteDefaults.Cost,
		}))

	say := func(format string, args ...any) {
		if verbose {
			fmt.Printf(format, args...)
		}
	}

	for _, step := range []struct {
		path string
		load func(string) (ingest.LoadReport, error)
	}{
		{cfg.Data.Airports, loader.LoadAirports},
		{cfg.Data.Routes, loader.LoadRoutes},
	} {
		say("📂 Trying to load %s\n", step.path)
		report, err := step.load(step.path)
		switch {
		case err != nil && report.Rows == 0:
			say("⚠️  Could not open %s\n", step.path)
		case err != nil:
			say("⚠️  Reading %s stopped after %d rows: %v\n", step.path, report.Rows, err)
		case report.Skipped > 0:
			say("   %d rows skipped\n", report.Skipped)
		}
	}

	gs.ComputeTraffic()

	stats := gs.GetStatistics()
	say("✅ Loaded %d airports.\n", stats.AirportCount)
	say("✅ Loaded %d routes.\n", stats.RouteCount)
}

// serveOps exposes /metrics and the health endpoints. Readiness fails until the
// graph is loaded and its traffic snapshot computed.
func serveOps(cfg *config.Config, gs *storage.GraphStorage, registry *metrics.Registry, logger logging.Logger) {
	checker := health.NewChecker()
	checker.Register(health.ScopeLiveness, "process", health.Alive())
	checker.Register(health.ScopeReadiness, "graph", health.GraphLoaded(gs.GetStatistics))
	checker.Register(health.ScopeHealth, "graph", health.GraphLoaded(gs.GetStatistics))
	checker.Register(health.ScopeHealth, "memory", health.Memory(0))
	checker.Register(health.ScopeHealth, ingest.DatasetAirports, health.DataFile(ingest.DatasetAirports, cfg.Data.Airports))
	checker.Register(health.ScopeHealth, ingest.DatasetRoutes, health.DataFile(ingest.DatasetRoutes, cfg.Data.Routes))

	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())
	checker.Mount(mux)

	addr := cfg.Metrics.ListenAddr
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("ops endpoint listening", logging.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops endpoint stopped", logging.Error(err))
		}
	}()
}

func runCompress(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: flightgraph compress <input.dat> <output.dat.sz>")
		return 2
	}
	if err := ingest.CompressFile(args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}
	fmt.Printf("✅ Wrote %s\n", args[1])
	return 0
}
