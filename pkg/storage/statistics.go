package storage

// GetStatistics returns current graph statistics
func (gs *GraphStorage) GetStatistics() Statistics {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return Statistics{
		AirportCount:      len(gs.airports),
		RouteCount:        len(gs.routes),
		IndexedCodes:      gs.codes.Len(),
		SourceAirports:    len(gs.adjacency),
		DuplicatesIgnored: gs.duplicates,
		TrafficComputed:   gs.trafficComputed,
	}
}
