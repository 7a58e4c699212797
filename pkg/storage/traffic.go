package storage

import "sort"

// TopBusiestLimit is the size of the busiest-airport ranking.
const TopBusiestLimit = 5

// ComputeTraffic rebuilds the traffic snapshot from the current route set.
// Each route counts once for its source and once for its destination; the
// unknown identity 0 is never counted. The ranking orders by descending count
// and breaks ties by ascending airport identity.
func (gs *GraphStorage) ComputeTraffic() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.traffic = make(map[int]int)
	for _, r := range gs.routes {
		if r.SourceID != 0 {
			gs.traffic[r.SourceID]++
		}
		if r.DestinationID != 0 {
			gs.traffic[r.DestinationID]++
		}
	}

	ranked := make([]TrafficEntry, 0, len(gs.traffic))
	for id, count := range gs.traffic {
		ranked = append(ranked, TrafficEntry{AirportID: id, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].AirportID < ranked[j].AirportID
	})

	if len(ranked) > TopBusiestLimit {
		ranked = ranked[:TopBusiestLimit]
	}
	gs.topBusiest = ranked
	gs.trafficComputed = true

	if gs.metricsRegistry != nil {
		gs.metricsRegistry.TrafficComputeRuns.Inc()
	}
}

// GetTopBusiestAirports returns up to TopBusiestLimit entries from the last
// snapshot. It is empty until ComputeTraffic has run.
func (gs *GraphStorage) GetTopBusiestAirports() []TrafficEntry {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	out := make([]TrafficEntry, len(gs.topBusiest))
	copy(out, gs.topBusiest)
	return out
}

// TrafficFor returns the snapshot count for airportID (0 if absent or if no
// snapshot exists).
func (gs *GraphStorage) TrafficFor(airportID int) int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.traffic[airportID]
}
