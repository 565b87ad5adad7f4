package handler

import (
	"net/http"

	gqlhandler "github.com/graphql-go/handler"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/graph"
)

// NewGraphQLHandler serves the query schema over GET (query string) and POST (JSON body).
// A nil resolver falls back to the default services.
func NewGraphQLHandler(resolver ...*graph.Resolver) (http.Handler, error) {
	var r *graph.Resolver
	if len(resolver) > 0 && resolver[0] != nil {
		r = resolver[0]
	} else {
		r = graph.NewResolver(nil, nil, nil)
	}

	schema, err := graph.NewSchema(r)
	if err != nil {
		return nil, err
	}

	return gqlhandler.New(&gqlhandler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: config.IsPlaygroundEnabled(),
	}), nil
}
