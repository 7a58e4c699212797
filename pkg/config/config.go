// Package config loads flightgraph settings from a YAML file with
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-flightgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
	"github.com/dd0wney/cluso-flightgraph/pkg/validation"
)

// DefaultPath is read when no configuration file is named explicitly.
const DefaultPath = "flightgraph.yaml"

// Environment overrides
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvAirports = "FLIGHTGRAPH_AIRPORTS"
	EnvRoutes   = "FLIGHTGRAPH_ROUTES"
)

// Config holds everything the shells need to build and query the graph.
type Config struct {
	Data          DataConfig          `yaml:"data"`
	LogLevel      string              `yaml:"log_level"`
	RouteDefaults RouteDefaultsConfig `yaml:"route_defaults"`
	Query         QueryConfig         `yaml:"query"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// DataConfig names the input files. Paths ending in .sz are snappy streams.
type DataConfig struct {
	Airports string `yaml:"airports"`
	Routes   string `yaml:"routes"`
}

// RouteDefaultsConfig holds the placeholder weights for ingested routes.
type RouteDefaultsConfig struct {
	Time float64 `yaml:"time"`
	Cost float64 `yaml:"cost"`
}

// QueryConfig tunes interactive queries.
type QueryConfig struct {
	DefaultCriterion string `yaml:"default_criterion"`
	ReachHops        int    `yaml:"reach_hops"`
}

// MetricsConfig controls the Prometheus endpoint. An empty ListenAddr
// disables it.
type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Airports: "../data/airports.dat",
			Routes:   "../data/routes.dat",
		},
		LogLevel: "info",
		RouteDefaults: RouteDefaultsConfig{
			Time: storage.DefaultRouteTime,
			Cost: storage.DefaultRouteCost,
		},
		Query: QueryConfig{
			DefaultCriterion: "distance",
			ReachHops:        2,
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path means DefaultPath, which may be absent; a named file that does
// not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides file values with non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvAirports); v != "" {
		c.Data.Airports = v
	}
	if v := getenv(EnvRoutes); v != "" {
		c.Data.Routes = v
	}
}

// Criteria accepted as a default criterion.
func Criteria() []string {
	return append(algorithms.ValidCriteria(), algorithms.ByHops.String())
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config")

	cv.Required("Data.Airports", c.Data.Airports).
		Required("Data.Routes", c.Data.Routes).
		Custom("LogLevel", func() error {
			if _, ok := logging.LookupLevel(c.LogLevel); !ok {
				return fmt.Errorf("unknown level %q", c.LogLevel)
			}
			return nil
		}).
		NonNegativeFloat("RouteDefaults.Time", c.RouteDefaults.Time).
		NonNegativeFloat("RouteDefaults.Cost", c.RouteDefaults.Cost).
		OneOf("Query.DefaultCriterion", c.Query.DefaultCriterion, Criteria()).
		RangeInt("Query.ReachHops", c.Query.ReachHops, 1, validation.MaxReachHops).
		When(c.Metrics.ListenAddr != "", func(cv *validation.ConfigValidator) {
			cv.Custom("Metrics.ListenAddr", func() error {
				_, _, err := net.SplitHostPort(c.Metrics.ListenAddr)
				return err
			})
		})

	return cv.Validate()
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
