package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
)

// ExecuteQuery executes a GraphQL query against a schema
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return ExecuteQueryWithVariables(query, schema, nil)
}

// ExecuteQueryWithVariables executes a GraphQL query with variables. Queries
// nested deeper than MaxQueryDepth are rejected before execution.
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	if err := ValidateQueryDepth(query, MaxQueryDepth); err != nil {
		return &graphql.Result{
			Errors: []gqlerrors.FormattedError{gqlerrors.FormatError(err)},
		}
	}

	params := graphql.Params{
		Schema:        schema,
		RequestString: query,
	}
	if variables != nil {
		params.VariableValues = variables
	}

	return graphql.Do(params)
}
