package gqlbench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	assert.NoError(t, newTestBenchmarks(t).Verify(context.Background()))
}

func TestNormalize(t *testing.T) {
	a, err := normalize(map[string]interface{}{"a": []int{1, 2}, "b": nil})
	require.NoError(t, err)
	b, err := normalize(map[string]interface{}{"b": nil, "a": []interface{}{1.0, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
