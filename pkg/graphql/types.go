package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

var airportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Airport",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":           &graphql.Field{Type: graphql.String},
		"city":           &graphql.Field{Type: graphql.String},
		"country":        &graphql.Field{Type: graphql.String},
		"iata":           &graphql.Field{Type: graphql.String},
		"latitude":       &graphql.Field{Type: graphql.Float},
		"longitude":      &graphql.Field{Type: graphql.Float},
		"label":          &graphql.Field{Type: graphql.String},
		"outgoingRoutes": &graphql.Field{Type: graphql.Int},
		"traffic":        &graphql.Field{Type: graphql.Int},
	},
})

var itineraryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Itinerary",
	Fields: graphql.Fields{
		"queryId":     &graphql.Field{Type: graphql.String},
		"found":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"criterion":   &graphql.Field{Type: graphql.String},
		"unit":        &graphql.Field{Type: graphql.String},
		"totalWeight": &graphql.Field{Type: graphql.Float},
		"hops":        &graphql.Field{Type: graphql.Int},
		"description": &graphql.Field{Type: graphql.String},
		"airports":    &graphql.Field{Type: graphql.NewList(airportType)},
	},
})

var rankedAirportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RankedAirport",
	Fields: graphql.Fields{
		"rank":        &graphql.Field{Type: graphql.Int},
		"connections": &graphql.Field{Type: graphql.Int},
		"airport":     &graphql.Field{Type: airportType},
	},
})

var reachLevelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ReachLevel",
	Fields: graphql.Fields{
		"hops":     &graphql.Field{Type: graphql.Int},
		"airports": &graphql.Field{Type: graphql.NewList(airportType)},
	},
})

var reachabilityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Reachability",
	Fields: graphql.Fields{
		"source":  &graphql.Field{Type: airportType},
		"maxHops": &graphql.Field{Type: graphql.Int},
		"total":   &graphql.Field{Type: graphql.Int},
		"levels":  &graphql.Field{Type: graphql.NewList(reachLevelType)},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"airports":          &graphql.Field{Type: graphql.Int},
		"routes":            &graphql.Field{Type: graphql.Int},
		"indexedCodes":      &graphql.Field{Type: graphql.Int},
		"sourceAirports":    &graphql.Field{Type: graphql.Int},
		"duplicatesIgnored": &graphql.Field{Type: graphql.Int},
		"trafficComputed":   &graphql.Field{Type: graphql.Boolean},
	},
})

// Resolvers hand maps to the default field resolver.

func airportMap(a storage.Airport) map[string]any {
	return map[string]any{
		"id":        a.ID,
		"name":      a.Name,
		"city":      a.City,
		"country":   a.Country,
		"iata":      a.IATA,
		"latitude":  a.Latitude,
		"longitude": a.Longitude,
		"label":     planner.Label(a),
	}
}

func airportList(airports []storage.Airport) []map[string]any {
	out := make([]map[string]any, len(airports))
	for i, a := range airports {
		out[i] = airportMap(a)
	}
	return out
}

func detailsMap(d planner.AirportDetails) map[string]any {
	m := airportMap(d.Airport)
	m["outgoingRoutes"] = d.OutgoingRoutes
	m["traffic"] = d.Traffic
	return m
}

func itineraryMap(it planner.Itinerary) map[string]any {
	return map[string]any{
		"queryId":     it.QueryID,
		"found":       it.Found,
		"criterion":   it.Criterion,
		"unit":        it.Unit,
		"totalWeight": it.TotalWeight,
		"hops":        it.Hops,
		"description": it.Describe(),
		"airports":    airportList(it.Airports),
	}
}

func rankedList(ranked []planner.RankedAirport) []map[string]any {
	out := make([]map[string]any, len(ranked))
	for i, r := range ranked {
		out[i] = map[string]any{
			"rank":        r.Rank,
			"connections": r.Connections,
			"airport":     airportMap(r.Airport),
		}
	}
	return out
}

func reachabilityMap(r planner.Reachability) map[string]any {
	levels := make([]map[string]any, len(r.Levels))
	for i, level := range r.Levels {
		levels[i] = map[string]any{
			"hops":     level.Hops,
			"airports": airportList(level.Airports),
		}
	}
	return map[string]any{
		"source":  airportMap(r.Source),
		"maxHops": r.MaxHops,
		"total":   r.Total,
		"levels":  levels,
	}
}

func statsMap(s storage.Statistics) map[string]any {
	return map[string]any{
		"airports":          s.AirportCount,
		"routes":            s.RouteCount,
		"indexedCodes":      s.IndexedCodes,
		"sourceAirports":    s.SourceAirports,
		"duplicatesIgnored": s.DuplicatesIgnored,
		"trafficComputed":   s.TrafficComputed,
	}
}
