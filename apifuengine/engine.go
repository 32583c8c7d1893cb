// Package apifuengine exposes the Star Wars schema through github.com/ccbrown/api-fu.
//
// Services are injected per request: every request's context carries the repositories its
// resolvers read from.
package apifuengine

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ccbrown/api-fu/graphql"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlbench/store"
)

type Engine struct {
	schema   *graphql.Schema
	services *store.Services
	logger   logrus.FieldLogger
}

// New builds the schema. The returned engine is safe for concurrent use.
func New(services *store.Services, logger logrus.FieldLogger) (*Engine, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	schema, err := graphql.NewSchema(schemaDefinition())
	if err != nil {
		return nil, errors.Wrap(err, "error building api-fu schema")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{
		schema:   schema,
		services: services,
		logger:   logger,
	}, nil
}

type servicesContextKeyType int

var servicesContextKey servicesContextKeyType

// WithServices returns a context that makes the given services available to resolvers.
func WithServices(ctx context.Context, services *store.Services) context.Context {
	return context.WithValue(ctx, servicesContextKey, services)
}

func ctxServices(ctx context.Context) *store.Services {
	return ctx.Value(servicesContextKey).(*store.Services)
}

// NewRequest builds a request for the given query carrying the engine's services.
func (e *Engine) NewRequest(ctx context.Context, query string) *graphql.Request {
	return &graphql.Request{
		Context: WithServices(ctx, e.services),
		Query:   query,
		Schema:  e.schema,
	}
}

// Execute executes the request. Errors are reported in the response.
func (e *Engine) Execute(r *graphql.Request) *graphql.Response {
	return graphql.Execute(r)
}

func (e *Engine) ServeGraphQL(w http.ResponseWriter, r *http.Request) {
	req, code, err := graphql.NewRequestFromHTTP(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	req.Context = WithServices(r.Context(), e.services)
	req.Schema = e.schema

	body, err := jsoniter.Marshal(e.Execute(req))
	if err != nil {
		e.logger.Error(errors.Wrap(err, "unable to marshal api-fu response"))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}
