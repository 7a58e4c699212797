package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-flightgraph/pkg/config"
	"github.com/dd0wney/cluso-flightgraph/pkg/ingest"
	"github.com/dd0wney/cluso-flightgraph/pkg/logging"
	"github.com/dd0wney/cluso-flightgraph/pkg/metrics"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

const testAirports = `1,"Alpha","A","X","AAA","AAAA",0,0
2,"Bravo","B","X","BBB","BBBB",0,1
`

func TestBuildGraph_SourceFailuresAreNotFatal(t *testing.T) {
	dir := t.TempDir()
	airports := filepath.Join(dir, "airports.dat")
	require.NoError(t, os.WriteFile(airports, []byte(testAirports), 0o644))

	// Plain text behind the snappy extension fails while reading.
	routes := filepath.Join(dir, "routes.dat"+ingest.SnappyExt)
	require.NoError(t, os.WriteFile(routes, []byte("BA,1,AAA,1,BBB,2,,0\n"), 0o644))

	cfg := config.Default()
	cfg.Data.Airports = airports
	cfg.Data.Routes = routes

	gs := storage.NewGraphStorage()
	buildGraph(gs, cfg, metrics.NewRegistry(), logging.NewNopLogger(), false)

	stats := gs.GetStatistics()
	assert.Equal(t, 2, stats.AirportCount)
	assert.Zero(t, stats.RouteCount)
	assert.True(t, stats.TrafficComputed)
}

func TestBuildGraph_MissingFiles(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Airports = filepath.Join(t.TempDir(), "none.dat")
	cfg.Data.Routes = filepath.Join(t.TempDir(), "none.dat")

	gs := storage.NewGraphStorage()
	buildGraph(gs, cfg, metrics.NewRegistry(), logging.NewNopLogger(), false)

	assert.Zero(t, gs.AirportCount())
	assert.True(t, gs.GetStatistics().TrafficComputed)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestWriteResult(t *testing.T) {
	result := &gql.Result{Data: map[string]any{"health": "ok"}}

	var out bytes.Buffer
	require.NoError(t, writeResult(&out, result))
	assert.Contains(t, out.String(), `"health": "ok"`)

	err := writeResult(failingWriter{}, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
}
