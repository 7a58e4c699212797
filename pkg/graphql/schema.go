package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-flightgraph/pkg/planner"
)

// DefaultReachHops is used when the reachable query omits maxHops.
const DefaultReachHops = 2

// GenerateSchema builds the query schema over a planner. Queries run
// synchronously in the caller's goroutine.
func GenerateSchema(p *planner.Planner) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"airport": &graphql.Field{
				Type: airportType,
				Args: graphql.FieldConfigArgument{
					"iata": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(params graphql.ResolveParams) (any, error) {
					code, _ := params.Args["iata"].(string)
					details, err := p.Airport(code)
					if err != nil {
						return nil, err
					}
					return detailsMap(details), nil
				},
			},
			"path": &graphql.Field{
				Type: itineraryType,
				Args: graphql.FieldConfigArgument{
					"from":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"criterion": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(params graphql.ResolveParams) (any, error) {
					req := planner.PathRequest{}
					req.Source, _ = params.Args["from"].(string)
					req.Destination, _ = params.Args["to"].(string)
					req.Criterion, _ = params.Args["criterion"].(string)

					it, err := p.FindPath(req)
					if err != nil {
						return nil, err
					}
					return itineraryMap(it), nil
				},
			},
			"busiest": &graphql.Field{
				Type: graphql.NewList(rankedAirportType),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return rankedList(p.Busiest()), nil
				},
			},
			"reachable": &graphql.Field{
				Type: reachabilityType,
				Args: graphql.FieldConfigArgument{
					"from":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"maxHops": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: DefaultReachHops},
				},
				Resolve: func(params graphql.ResolveParams) (any, error) {
					code, _ := params.Args["from"].(string)
					hops, _ := params.Args["maxHops"].(int)
					reach, err := p.Reachable(code, hops)
					if err != nil {
						return nil, err
					}
					return reachabilityMap(reach), nil
				},
			},
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(graphql.ResolveParams) (any, error) {
					return statsMap(p.Stats()), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}

	return schema, nil
}
