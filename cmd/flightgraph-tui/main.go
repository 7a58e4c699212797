package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/cluso-flightgraph/pkg/config"
	"github.com/dd0wney/cluso-flightgraph/pkg/ingest"
	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default flightgraph.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The alternate screen owns stdout, so logs go nowhere unless asked for.
	var logger logging.Logger = logging.NewNopLogger()
	if os.Getenv(config.EnvLogLevel) != "" {
		logger = logging.NewStderrLogger(cfg.Level())
	}

	gs, err := loadGraph(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	p := planner.New(gs,
		planner.WithLogger(logger),
		planner.WithDefaultCriterion(cfg.Query.DefaultCriterion))

	prog := tea.NewProgram(initialModel(p, cfg.Query.ReachHops), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

func loadGraph(cfg *config.Config, logger logging.Logger) (*storage.GraphStorage, error) {
	gs := storage.NewGraphStorage()
	loader := ingest.NewLoader(gs,
		ingest.WithLogger(logger),
		ingest.WithRouteDefaults(ingest.RouteDefaults{
			Time: cfg.RouteDefaults.Time,
			Cost: cfg.RouteDefaults.Cost,
		}))

	if _, err := loader.LoadAirports(cfg.Data.Airports); err != nil && !errors.Is(err, ingest.ErrSourceUnavailable) {
		return nil, fmt.Errorf("airports: %w", err)
	}
	if _, err := loader.LoadRoutes(cfg.Data.Routes); err != nil && !errors.Is(err, ingest.ErrSourceUnavailable) {
		return nil, fmt.Errorf("routes: %w", err)
	}
	gs.ComputeTraffic()
	return gs, nil
}
