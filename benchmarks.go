// Package gqlbench compares query execution in two GraphQL libraries, api-fu and graphql-go, over
// the same schema, data, and queries.
package gqlbench

import (
	"context"

	apifugraphql "github.com/ccbrown/api-fu/graphql"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlbench/apifuengine"
	"github.com/ccbrown/gqlbench/graphqlgoengine"
	"github.com/ccbrown/gqlbench/queries"
	"github.com/ccbrown/gqlbench/store"
)

const (
	EngineAPIFu     = "api-fu"
	EngineGraphQLGo = "graphql-go"
)

// ErrResultHasErrors is returned when an execution result reports one or more errors.
var ErrResultHasErrors = errors.New("result has errors")

// ExecutorBenchmarks holds both engines, built once over a shared set of services.
type ExecutorBenchmarks struct {
	config    *Config
	logger    logrus.FieldLogger
	apifu     *apifuengine.Engine
	graphqlGo *graphqlgoengine.Engine
}

func NewExecutorBenchmarks(cfg *Config) (*ExecutorBenchmarks, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	services := cfg.Services
	if services == nil {
		var err error
		if services, err = store.NewServices(); err != nil {
			return nil, err
		}
	}

	apifu, err := apifuengine.New(services, cfg.Logger)
	if err != nil {
		return nil, err
	}
	graphqlGo, err := graphqlgoengine.New(services, cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &ExecutorBenchmarks{
		config:    cfg,
		logger:    cfg.Logger,
		apifu:     apifu,
		graphqlGo: graphqlGo,
	}, nil
}

// APIFu returns the api-fu engine.
func (b *ExecutorBenchmarks) APIFu() *apifuengine.Engine {
	return b.apifu
}

// GraphQLGo returns the graphql-go engine.
func (b *ExecutorBenchmarks) GraphQLGo() *graphqlgoengine.Engine {
	return b.graphqlGo
}

// ExecuteAPIFu builds a request for the query and executes it with api-fu. If the response reports
// errors, an error wrapping ErrResultHasErrors is returned.
func (b *ExecutorBenchmarks) ExecuteAPIFu(ctx context.Context, query string) (*apifugraphql.Response, error) {
	resp := b.apifu.Execute(b.apifu.NewRequest(ctx, query))
	if len(resp.Errors) > 0 {
		return nil, errors.Wrapf(ErrResultHasErrors, "%v: %v", EngineAPIFu, resp.Errors[0].Message)
	}
	return resp, nil
}

// ExecuteGraphQLGo executes the query with graphql-go. If the result reports errors, an error
// wrapping ErrResultHasErrors is returned.
func (b *ExecutorBenchmarks) ExecuteGraphQLGo(ctx context.Context, query string) (*graphql.Result, error) {
	result := b.graphqlGo.Execute(ctx, query)
	if len(result.Errors) > 0 {
		return nil, errors.Wrapf(ErrResultHasErrors, "%v: %v", EngineGraphQLGo, result.Errors[0].Message)
	}
	return result, nil
}

func (b *ExecutorBenchmarks) APIFuThreeFields(ctx context.Context) (*apifugraphql.Response, error) {
	return b.ExecuteAPIFu(ctx, queries.ThreeFields)
}

func (b *ExecutorBenchmarks) APIFuSmallQueryWithFragments(ctx context.Context) (*apifugraphql.Response, error) {
	return b.ExecuteAPIFu(ctx, queries.SmallQuery)
}

func (b *ExecutorBenchmarks) APIFuMediumQueryWithFragments(ctx context.Context) (*apifugraphql.Response, error) {
	return b.ExecuteAPIFu(ctx, queries.MediumQuery)
}

func (b *ExecutorBenchmarks) APIFuIntrospection(ctx context.Context) (*apifugraphql.Response, error) {
	return b.ExecuteAPIFu(ctx, queries.Introspection)
}

func (b *ExecutorBenchmarks) APIFuMediumQueryPlusIntrospection(ctx context.Context) (*apifugraphql.Response, error) {
	return b.ExecuteAPIFu(ctx, queries.MediumPlusIntrospection)
}

func (b *ExecutorBenchmarks) GraphQLGoThreeFields(ctx context.Context) (*graphql.Result, error) {
	return b.ExecuteGraphQLGo(ctx, queries.ThreeFields)
}

func (b *ExecutorBenchmarks) GraphQLGoSmallQueryWithFragments(ctx context.Context) (*graphql.Result, error) {
	return b.ExecuteGraphQLGo(ctx, queries.SmallQuery)
}

func (b *ExecutorBenchmarks) GraphQLGoMediumQueryWithFragments(ctx context.Context) (*graphql.Result, error) {
	return b.ExecuteGraphQLGo(ctx, queries.MediumQuery)
}

func (b *ExecutorBenchmarks) GraphQLGoIntrospection(ctx context.Context) (*graphql.Result, error) {
	return b.ExecuteGraphQLGo(ctx, queries.Introspection)
}

func (b *ExecutorBenchmarks) GraphQLGoMediumQueryPlusIntrospection(ctx context.Context) (*graphql.Result, error) {
	return b.ExecuteGraphQLGo(ctx, queries.MediumPlusIntrospection)
}

// Case is one engine paired with one query fixture.
type Case struct {
	Name    string
	Engine  string
	Fixture queries.Fixture
	Run     func(ctx context.Context) (interface{}, error)
}

func (b *ExecutorBenchmarks) apifuCase(f queries.Fixture, op func(context.Context) (*apifugraphql.Response, error)) Case {
	return Case{
		Name:    "APIFu_" + f.Name,
		Engine:  EngineAPIFu,
		Fixture: f,
		Run: func(ctx context.Context) (interface{}, error) {
			return op(ctx)
		},
	}
}

func (b *ExecutorBenchmarks) graphqlGoCase(f queries.Fixture, op func(context.Context) (*graphql.Result, error)) Case {
	return Case{
		Name:    "GraphQLGo_" + f.Name,
		Engine:  EngineGraphQLGo,
		Fixture: f,
		Run: func(ctx context.Context) (interface{}, error) {
			return op(ctx)
		},
	}
}

// Cases returns all ten cases. Each fixture's api-fu case immediately precedes its graphql-go case.
func (b *ExecutorBenchmarks) Cases() []Case {
	return []Case{
		b.apifuCase(queries.ThreeFieldsFixture, b.APIFuThreeFields),
		b.graphqlGoCase(queries.ThreeFieldsFixture, b.GraphQLGoThreeFields),
		b.apifuCase(queries.SmallQueryFixture, b.APIFuSmallQueryWithFragments),
		b.graphqlGoCase(queries.SmallQueryFixture, b.GraphQLGoSmallQueryWithFragments),
		b.apifuCase(queries.MediumQueryFixture, b.APIFuMediumQueryWithFragments),
		b.graphqlGoCase(queries.MediumQueryFixture, b.GraphQLGoMediumQueryWithFragments),
		b.apifuCase(queries.IntrospectionFixture, b.APIFuIntrospection),
		b.graphqlGoCase(queries.IntrospectionFixture, b.GraphQLGoIntrospection),
		b.apifuCase(queries.MediumPlusIntrospectionFixture, b.APIFuMediumQueryPlusIntrospection),
		b.graphqlGoCase(queries.MediumPlusIntrospectionFixture, b.GraphQLGoMediumQueryPlusIntrospection),
	}
}
