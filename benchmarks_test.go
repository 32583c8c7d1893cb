package gqlbench

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlbench/queries"
)

var sink interface{}

func newTestBenchmarks(t testing.TB) *ExecutorBenchmarks {
	b, err := NewExecutorBenchmarks(&Config{})
	require.NoError(t, err)
	return b
}

func TestExecutorBenchmarks(t *testing.T) {
	b := newTestBenchmarks(t)
	ctx := context.Background()

	cases := b.Cases()
	require.Len(t, cases, 2*len(queries.All))
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := c.Run(ctx)
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}

	resp, err := b.APIFuThreeFields(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Errors)
	assert.NotNil(t, resp.Data)

	result, err := b.GraphQLGoThreeFields(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Data)
}

func TestCases(t *testing.T) {
	cases := newTestBenchmarks(t).Cases()
	for i, f := range queries.All {
		assert.Equal(t, "APIFu_"+f.Name, cases[2*i].Name)
		assert.Equal(t, EngineAPIFu, cases[2*i].Engine)
		assert.Equal(t, "GraphQLGo_"+f.Name, cases[2*i+1].Name)
		assert.Equal(t, EngineGraphQLGo, cases[2*i+1].Engine)
		assert.Equal(t, f.Name, cases[2*i+1].Fixture.Name)
	}
}

func TestResultHasErrors(t *testing.T) {
	b := newTestBenchmarks(t)
	ctx := context.Background()

	for name, query := range map[string]string{
		"Syntax":       `{ hero { name `,
		"UnknownField": `{ hero { nope } }`,
		"MissingArg":   `{ reviews { stars } }`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := b.ExecuteAPIFu(ctx, query)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, ErrResultHasErrors))
			assert.Contains(t, err.Error(), EngineAPIFu)

			result, err := b.ExecuteGraphQLGo(ctx, query)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrResultHasErrors))
			assert.Contains(t, err.Error(), EngineGraphQLGo)
		})
	}
}

func TestNewExecutorBenchmarks_InvalidConfig(t *testing.T) {
	_, err := NewExecutorBenchmarks(&Config{
		WarmupIterations: -1,
	})
	assert.Error(t, err)
}

func benchmarkCase(b *testing.B, run func(context.Context) (interface{}, error)) {
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result, err := run(ctx)
		if err != nil {
			b.Fatal(err)
		}
		sink = result
	}
}

func BenchmarkAPIFuThreeFields(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.APIFuThreeFields(ctx) })
}

func BenchmarkAPIFuSmallQueryWithFragments(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.APIFuSmallQueryWithFragments(ctx) })
}

func BenchmarkAPIFuMediumQueryWithFragments(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.APIFuMediumQueryWithFragments(ctx) })
}

func BenchmarkAPIFuIntrospection(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.APIFuIntrospection(ctx) })
}

func BenchmarkAPIFuMediumQueryPlusIntrospection(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.APIFuMediumQueryPlusIntrospection(ctx) })
}

func BenchmarkGraphQLGoThreeFields(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.GraphQLGoThreeFields(ctx) })
}

func BenchmarkGraphQLGoSmallQueryWithFragments(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.GraphQLGoSmallQueryWithFragments(ctx) })
}

func BenchmarkGraphQLGoMediumQueryWithFragments(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.GraphQLGoMediumQueryWithFragments(ctx) })
}

func BenchmarkGraphQLGoIntrospection(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.GraphQLGoIntrospection(ctx) })
}

func BenchmarkGraphQLGoMediumQueryPlusIntrospection(b *testing.B) {
	bm := newTestBenchmarks(b)
	benchmarkCase(b, func(ctx context.Context) (interface{}, error) { return bm.GraphQLGoMediumQueryPlusIntrospection(ctx) })
}
