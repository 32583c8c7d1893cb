package gqlbench

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gqlbench/queries"
)

func TestRun(t *testing.T) {
	var observed []string
	b, err := NewExecutorBenchmarks(&Config{
		BenchTime:     time.Millisecond,
		MinIterations: 2,
		Filter:        regexp.MustCompile(`ThreeFields|SmallQuery`),
		Observer: func(m *Measurement) {
			observed = append(observed, m.Case)
		},
	})
	require.NoError(t, err)

	report, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunId.String())
	assert.Empty(t, report.Failed())

	require.Len(t, report.Measurements, 4)
	assert.Equal(t, []string{
		"APIFu_ThreeFields",
		"GraphQLGo_ThreeFields",
		"APIFu_SmallQueryWithFragments",
		"GraphQLGo_SmallQueryWithFragments",
	}, observed)

	for _, m := range report.Measurements {
		assert.GreaterOrEqual(t, m.Iterations, 2)
		assert.True(t, m.Mean > 0)
		assert.True(t, m.P99 >= m.Median)
		assert.NotZero(t, m.AllocsPerOp)
		assert.Contains(t, []int{1, 2}, m.Rank)
	}
	assert.Equal(t, queries.ThreeFieldsFixture.Name, report.Measurements[0].Category)
}

func TestRun_Canceled(t *testing.T) {
	b := newTestBenchmarks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestMeasure_Failure(t *testing.T) {
	b, err := NewExecutorBenchmarks(&Config{
		BenchTime:        time.Millisecond,
		WarmupIterations: 1,
	})
	require.NoError(t, err)

	m, err := b.measure(context.Background(), Case{
		Name:    "APIFu_Broken",
		Engine:  EngineAPIFu,
		Fixture: queries.Fixture{Name: "Broken"},
		Run: func(ctx context.Context) (interface{}, error) {
			return b.ExecuteAPIFu(ctx, `{ nope }`)
		},
	})
	require.NoError(t, err)
	assert.Contains(t, m.Error, "result has errors")
	assert.Zero(t, m.Iterations)
}

func TestAssignRanks(t *testing.T) {
	ms := []*Measurement{
		{Case: "a", Category: "x", Mean: 30},
		{Case: "b", Category: "x", Mean: 10},
		{Case: "c", Category: "x", Mean: 10},
		{Case: "d", Category: "x", Mean: 5, Error: "boom"},
		{Case: "e", Category: "y", Mean: 50},
	}
	assignRanks(ms)
	assert.Equal(t, 3, ms[0].Rank)
	assert.Equal(t, 1, ms[1].Rank)
	assert.Equal(t, 1, ms[2].Rank)
	assert.Equal(t, 0, ms[3].Rank)
	assert.Equal(t, 1, ms[4].Rank)
}
