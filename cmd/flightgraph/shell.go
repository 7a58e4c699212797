package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gql "github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-flightgraph/pkg/graphql"
	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
)

const sampleCodes = "ATL(Atlanta), DXB(Dubai), LHR(London), CDG(Paris), DEL(Delhi), " +
	"LAX(Los Angeles), BOM(Mumbai), ORD(Chicago), BLR(Bengaluru), HND(Tokyo)"

// Shell is the interactive menu. Menu numbers and command words are both
// accepted.
type Shell struct {
	planner   *planner.Planner
	schema    gql.Schema
	reachHops int
	scanner   *bufio.Scanner
	out       io.Writer
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Run reads commands until exit or end of input.
func (s *Shell) Run() {
	for {
		s.showMenu()
		s.printf("Enter your choice: ")

		input, ok := s.readLine()
		if !ok {
			s.printf("\n")
			return
		}
		if input == "" {
			continue
		}
		if !s.execute(input) {
			return
		}
	}
}

func (s *Shell) showMenu() {
	s.printf("\n===== Flight Route Optimization Menu =====\n\n")
	s.printf("Sample IATA Codes: %s\n\n", sampleCodes)
	s.printf("1. Find shortest path between two airports\n")
	s.printf("2. Show details of an airport (by IATA code)\n")
	s.printf("3. Show top 5 busiest airports\n")
	s.printf("4. Exit\n")
	s.printf("   (or: path <from> <to> [criterion], airport <code>, busiest,\n")
	s.printf("        reach <code> [hops], stats, gql <query>, help)\n\n")
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	return s.readLine()
}

// execute runs one command and reports whether the shell should continue.
func (s *Shell) execute(input string) bool {
	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "1", "path":
		s.pathCommand(args)
	case "2", "airport":
		s.airportCommand(args)
	case "3", "busiest":
		s.showBusiest()
	case "4", "exit", "quit":
		s.printf("Exiting program. Goodbye!\n")
		return false
	case "reach":
		s.reachCommand(args)
	case "stats":
		s.showStats()
	case "gql":
		s.runGraphQL(strings.TrimSpace(strings.TrimPrefix(input, parts[0])))
	case "help":
		s.showHelp()
	default:
		s.printf("Invalid choice, try again.\n")
	}
	return true
}

func (s *Shell) pathCommand(args []string) {
	req := planner.PathRequest{}
	switch {
	case len(args) >= 2:
		req.Source, req.Destination = args[0], args[1]
		if len(args) > 2 {
			req.Criterion = args[2]
		}
	default:
		var ok bool
		if req.Source, ok = s.prompt("Enter source airport IATA code: "); !ok {
			return
		}
		if req.Destination, ok = s.prompt("Enter destination airport IATA code: "); !ok {
			return
		}
		if req.Criterion, ok = s.prompt(fmt.Sprintf("Criterion [%s]: ", s.planner.DefaultCriterion())); !ok {
			return
		}
	}

	it, err := s.planner.FindPath(req)
	switch {
	case errors.Is(err, planner.ErrUnknownAirport):
		s.printf("Error: Invalid source or destination code!\n")
		return
	case err != nil:
		s.printf("Error: %v\n", err)
		return
	}

	if !it.Found {
		s.printf("No path found between %s and %s.\n", it.Source.IATA, it.Destination.IATA)
		return
	}

	s.printf("\nShortest path from %s to %s (by %s):\n\n", it.Source.IATA, it.Destination.IATA, it.Criterion)
	s.printf("%s\n\n", it.Describe())
	s.printf("Total %s: %s\n", it.Criterion, it.Total())
	s.printf("No. of hops: %d\n", it.Hops)
}

func (s *Shell) airportCommand(args []string) {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		var ok bool
		if code, ok = s.prompt("Enter airport IATA code: "); !ok {
			return
		}
	}

	details, err := s.planner.Airport(code)
	if err != nil {
		s.printf("Error: Airport with IATA code %s not found!\n", code)
		return
	}

	s.printf("\nAirport Details:\n")
	s.printf("ID: %d\n", details.ID)
	s.printf("Name: %s\n", details.Name)
	s.printf("City: %s\n", details.City)
	s.printf("Country: %s\n", details.Country)
	s.printf("IATA: %s\n", details.IATA)
	s.printf("Latitude: %g\n", details.Latitude)
	s.printf("Longitude: %g\n", details.Longitude)
	s.printf("Outgoing routes: %d\n", details.OutgoingRoutes)
	s.printf("Connections: %d\n", details.Traffic)
}

func (s *Shell) showBusiest() {
	s.printf("Top 5 Busiest Airports:\n\n")
	for _, r := range s.planner.Busiest() {
		s.printf("%s - Connections: %d\n", planner.Label(r.Airport), r.Connections)
	}
}

func (s *Shell) reachCommand(args []string) {
	if len(args) == 0 {
		s.printf("Usage: reach <code> [hops]\n")
		return
	}
	hops := s.reachHops
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			s.printf("Error: hops must be a number\n")
			return
		}
		hops = n
	}

	reach, err := s.planner.Reachable(args[0], hops)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}

	s.printf("%d airports reachable from %s within %d flights\n", reach.Total, planner.Label(reach.Source), hops)
	for _, level := range reach.Levels {
		codes := make([]string, len(level.Airports))
		for i, a := range level.Airports {
			codes[i] = a.IATA
			if codes[i] == "" {
				codes[i] = planner.Label(a)
			}
		}
		s.printf("  %d hop(s): %s\n", level.Hops, strings.Join(codes, " "))
	}
}

func (s *Shell) showStats() {
	stats := s.planner.Stats()
	s.printf("Airports:            %d\n", stats.AirportCount)
	s.printf("Routes:              %d\n", stats.RouteCount)
	s.printf("Indexed IATA codes:  %d\n", stats.IndexedCodes)
	s.printf("Airports with routes: %d\n", stats.SourceAirports)
	s.printf("Duplicates ignored:  %d\n", stats.DuplicatesIgnored)
}

func (s *Shell) runGraphQL(query string) {
	if query == "" {
		s.printf("Usage: gql <query>\n")
		return
	}
	result := graphql.ExecuteQuery(query, s.schema)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("%s\n", data)
}

func (s *Shell) showHelp() {
	s.printf(`
Commands:
  1, path <from> <to> [criterion]   Shortest path (criterion: distance, time, cost, stops, hops)
  2, airport <code>                 Airport details
  3, busiest                        Top 5 busiest airports
  reach <code> [hops]               Airports reachable within N flights
  stats                             Graph statistics
  gql <query>                       Run a GraphQL query, e.g. gql { busiest { rank airport { iata } } }
  4, exit                           Quit
`)
}
