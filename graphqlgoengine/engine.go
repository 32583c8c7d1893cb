// Package graphqlgoengine exposes the Star Wars schema through github.com/graphql-go/graphql.
//
// Unlike apifuengine, services are bound once at construction time: resolvers close over the
// repositories, so requests carry nothing but the query.
package graphqlgoengine

import (
	"context"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlbench/store"
)

type Engine struct {
	schema  graphql.Schema
	handler *handler.Handler
	logger  logrus.FieldLogger
}

// New builds the schema around the given services. The returned engine is safe for concurrent use.
func New(services *store.Services, logger logrus.FieldLogger) (*Engine, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	b := &schemaBuilder{
		services: services,
	}
	schema, err := b.build()
	if err != nil {
		return nil, errors.Wrap(err, "error building graphql-go schema")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	e := &Engine{
		schema: schema,
		logger: logger,
	}
	e.handler = handler.New(&handler.Config{
		Schema:   &e.schema,
		Pretty:   true,
		GraphiQL: true,
	})
	return e, nil
}

// Execute executes the query. Errors are reported in the result.
func (e *Engine) Execute(ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Context:       ctx,
		Schema:        e.schema,
		RequestString: query,
	})
}

// Handler serves the schema over HTTP, including GraphiQL for browser requests.
func (e *Engine) Handler() http.Handler {
	return e.handler
}
