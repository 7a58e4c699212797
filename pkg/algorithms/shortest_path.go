package algorithms

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// PathResult is the outcome of a shortest-path query.
type PathResult struct {
	Path        []int   `json:"path"`
	TotalWeight float64 `json:"total_weight"`
	Hops        int     `json:"hops"`
}

// Found reports whether a path was returned.
func (r PathResult) Found() bool {
	return len(r.Path) > 0
}

// Graph is the read access Dijkstra needs from the store.
type Graph interface {
	HasAirport(id int) bool
	OutgoingEdges(airportID int) []storage.Edge
}

// Dijkstra finds the least-cost path from sourceID to destinationID, weighting
// edges by the named criterion ("distance", "time", "cost", "stops"; anything
// else weighs every edge as 1).
//
// Unknown identities on either side, and unreachable destinations, produce an
// empty result. Edges are relaxed in adjacency insertion order with a strict
// comparison, so equal-cost ties resolve to the first path discovered.
// Routes into identities without an airport record are never followed.
// Negative edge weights, which the route data carries as negative stop
// counts, count as 0; a path over such an edge reports a total below the
// sum of its raw fields.
func Dijkstra(graph Graph, sourceID, destinationID int, criterion string) PathResult {
	return ShortestPath(graph, sourceID, destinationID, ParseCriterion(criterion))
}

// ShortestPath is Dijkstra with an already-parsed criterion.
func ShortestPath(graph Graph, sourceID, destinationID int, criterion Criterion) PathResult {
	if !graph.HasAirport(sourceID) || !graph.HasAirport(destinationID) {
		return PathResult{}
	}

	distances := map[int]float64{sourceID: 0}
	parent := make(map[int]int)

	pq := &distanceQueue{{airportID: sourceID, distance: 0}}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)

		if current.distance > distanceOf(distances, current.airportID) {
			continue // stale entry
		}
		if current.airportID == destinationID {
			break
		}

		for _, edge := range graph.OutgoingEdges(current.airportID) {
			// Routes to identities without an airport record are unreachable.
			if !graph.HasAirport(edge.To) {
				continue
			}
			weight := criterion.Weight(edge.Route)
			if weight < 0 {
				weight = 0
			}
			candidate := current.distance + weight
			if candidate < distanceOf(distances, edge.To) {
				distances[edge.To] = candidate
				parent[edge.To] = current.airportID
				heap.Push(pq, pqItem{airportID: edge.To, distance: candidate})
			}
		}
	}

	path := reconstructPath(parent, sourceID, destinationID)
	if path == nil {
		return PathResult{}
	}

	total := distances[destinationID]
	if math.IsInf(total, 0) || math.IsNaN(total) {
		total = 0
	}

	return PathResult{
		Path:        path,
		TotalWeight: total,
		Hops:        len(path) - 1,
	}
}

// distanceOf returns the recorded tentative distance, +Inf when unvisited.
func distanceOf(distances map[int]float64, id int) float64 {
	if d, ok := distances[id]; ok {
		return d
	}
	return math.Inf(1)
}

// reconstructPath walks parents back from destinationID and returns the path
// in source-to-destination order, or nil when the chain never reaches
// sourceID.
func reconstructPath(parent map[int]int, sourceID, destinationID int) []int {
	path := []int{destinationID}
	node := destinationID
	for node != sourceID {
		if len(path) > len(parent)+1 {
			return nil
		}
		prev, ok := parent[node]
		if !ok {
			return nil
		}
		path = append(path, prev)
		node = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
