package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-flightgraph/pkg/graphql"
	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

func runShell(t *testing.T, input string) string {
	t.Helper()

	gs := storage.NewGraphStorage()
	gs.AddAirport(storage.Airport{ID: 1, Name: "Alpha", City: "Avalon", Country: "Aland", IATA: "AAA", Latitude: 1.5, Longitude: 2})
	gs.AddAirport(storage.Airport{ID: 2, Name: "Bravo", IATA: "BBB"})
	gs.AddAirport(storage.Airport{ID: 3, Name: "Charlie", IATA: "CCC"})
	gs.AddRoute(storage.NewRoute(1, 2, storage.WithDistance(500)))
	gs.AddRoute(storage.NewRoute(2, 3, storage.WithDistance(300)))
	gs.AddRoute(storage.NewRoute(1, 3, storage.WithDistance(1000)))
	gs.ComputeTraffic()

	p := planner.New(gs)
	schema, err := graphql.GenerateSchema(p)
	require.NoError(t, err)

	var out bytes.Buffer
	shell := &Shell{
		planner:   p,
		schema:    schema,
		reachHops: 2,
		scanner:   bufio.NewScanner(strings.NewReader(input)),
		out:       &out,
	}
	shell.Run()
	return out.String()
}

func TestShell_MenuPath(t *testing.T) {
	out := runShell(t, "1\naaa\nCCC\n\n4\n")

	assert.Contains(t, out, "Sample IATA Codes: ATL(Atlanta)")
	assert.Contains(t, out, "Alpha (AAA) -> Bravo (BBB) -> Charlie (CCC)")
	assert.Contains(t, out, "Total distance: 800.00 km")
	assert.Contains(t, out, "No. of hops: 2")
	assert.Contains(t, out, "Exiting program. Goodbye!")
}

func TestShell_PathCommandWithCriterion(t *testing.T) {
	out := runShell(t, "path AAA CCC hops\nexit\n")

	assert.Contains(t, out, "Alpha (AAA) -> Charlie (CCC)")
	assert.Contains(t, out, "Total hops: 1.00 hops")
}

func TestShell_PathErrors(t *testing.T) {
	out := runShell(t, "path AAA ZZZ\npath CCC AAA\npath AAA CCC comfort\n4\n")

	assert.Contains(t, out, "Error: Invalid source or destination code!")
	assert.Contains(t, out, "No path found between CCC and AAA.")
	assert.Contains(t, out, "invalid request")
}

func TestShell_AirportDetails(t *testing.T) {
	out := runShell(t, "2\nAAA\nairport zzz\n4\n")

	assert.Contains(t, out, "Airport Details:")
	assert.Contains(t, out, "Name: Alpha")
	assert.Contains(t, out, "Latitude: 1.5")
	assert.Contains(t, out, "Outgoing routes: 2")
	assert.Contains(t, out, "Error: Airport with IATA code zzz not found!")
}

func TestShell_Busiest(t *testing.T) {
	out := runShell(t, "3\n4\n")

	assert.Contains(t, out, "Top 5 Busiest Airports:")
	assert.Contains(t, out, "Alpha (AAA) - Connections: 2")
	assert.Less(t, strings.Index(out, "Alpha (AAA) - "), strings.Index(out, "Charlie (CCC) - "))
}

func TestShell_ReachStatsAndGraphQL(t *testing.T) {
	out := runShell(t, "reach AAA 1\nstats\ngql { health }\nbogus\n")

	assert.Contains(t, out, "2 airports reachable from Alpha (AAA) within 1 flights")
	assert.Contains(t, out, "1 hop(s): BBB CCC")
	assert.Contains(t, out, "Routes:              3")
	assert.Contains(t, out, `"health": "ok"`)
	assert.Contains(t, out, "Invalid choice, try again.")
}

func TestShell_EndOfInput(t *testing.T) {
	out := runShell(t, "")
	assert.Contains(t, out, "Enter your choice: ")
	assert.NotContains(t, out, "Goodbye")
}
