package algorithms

import (
	"errors"
	"fmt"
)

// ErrInvalidHops is returned when a reachability query asks for fewer than one hop.
var ErrInvalidHops = errors.New("max hops must be >= 1")

// ReachOptions configures the reachability traversal.
type ReachOptions struct {
	MaxHops    int  // must be >= 1
	KnownOnly  bool // drop destinations that are not known airports
	MaxResults int  // 0 = unlimited; BFS order gives closer airports priority
}

// ReachResult holds the airports reachable from a source, grouped by the
// minimum number of flights needed.
type ReachResult struct {
	SourceID       int
	ByHop          map[int][]int // hop count -> airport IDs first reached at that hop
	Hops           map[int]int   // airport ID -> minimum hop count
	TotalReachable int
}

// DefaultReachOptions returns sensible defaults.
func DefaultReachOptions() ReachOptions {
	return ReachOptions{
		MaxHops:   2,
		KnownOnly: true,
	}
}

type bfsEntry struct {
	airportID int
	hop       int
}

// Reachable performs a BFS over outgoing routes from sourceID up to MaxHops
// levels. The source itself is never included. Airports are listed per hop in
// discovery order, which follows adjacency insertion order.
func Reachable(graph Graph, sourceID int, opts ReachOptions) (*ReachResult, error) {
	if opts.MaxHops < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHops, opts.MaxHops)
	}

	result := &ReachResult{
		SourceID: sourceID,
		ByHop:    make(map[int][]int),
		Hops:     make(map[int]int),
	}
	if !graph.HasAirport(sourceID) {
		return result, nil
	}

	visited := map[int]bool{sourceID: true}
	queue := []bfsEntry{{airportID: sourceID, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= opts.MaxHops {
			continue
		}
		nextHop := current.hop + 1

		for _, edge := range graph.OutgoingEdges(current.airportID) {
			if visited[edge.To] {
				continue
			}
			visited[edge.To] = true
			if opts.KnownOnly && !graph.HasAirport(edge.To) {
				continue
			}

			result.Hops[edge.To] = nextHop
			result.ByHop[nextHop] = append(result.ByHop[nextHop], edge.To)
			result.TotalReachable++

			if opts.MaxResults > 0 && result.TotalReachable >= opts.MaxResults {
				return result, nil
			}

			queue = append(queue, bfsEntry{airportID: edge.To, hop: nextHop})
		}
	}

	return result, nil
}
