package storage

import (
	"testing"
)

// testGraphStorage creates an empty GraphStorage for a test.
func testGraphStorage(t *testing.T, config ...StorageConfig) *GraphStorage {
	t.Helper()

	var cfg StorageConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	return NewGraphStorageWithConfig(cfg)
}

// seedTriangle loads A(1) B(2) C(3) with routes A->B, B->C and A->C.
func seedTriangle(t *testing.T, gs *GraphStorage) {
	t.Helper()

	gs.AddAirport(Airport{ID: 1, Name: "Alpha", IATA: "AAA", Latitude: 0, Longitude: 0})
	gs.AddAirport(Airport{ID: 2, Name: "Bravo", IATA: "BBB", Latitude: 0, Longitude: 1})
	gs.AddAirport(Airport{ID: 3, Name: "Charlie", IATA: "CCC", Latitude: 1, Longitude: 1})

	gs.AddRoute(NewRoute(1, 2, WithDistance(500)))
	gs.AddRoute(NewRoute(2, 3, WithDistance(300)))
	gs.AddRoute(NewRoute(1, 3, WithDistance(1000)))
}
