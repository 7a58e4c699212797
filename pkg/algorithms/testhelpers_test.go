package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// setupTestGraph creates an empty store with the given airport identities.
func setupTestGraph(t *testing.T, ids ...int) *storage.GraphStorage {
	t.Helper()
	gs := storage.NewGraphStorage()
	for _, id := range ids {
		gs.AddAirport(storage.Airport{ID: id})
	}
	return gs
}
