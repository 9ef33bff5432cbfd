package components_test

import (
	"testing"

	"github.com/katalvlaran/dsu/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromPairs_Basic covers the worked five-element scenario: two merges
// and two leftover singletons, output fully ordered.
func TestFromPairs_Basic(t *testing.T) {
	comps, err := components.FromPairs(5, [][2]int{{1, 3}, {0, 4}})
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 4},
		{1, 3},
		{2},
	}, comps)
}

// TestFromPairs_NoPairs yields all singletons, in order.
func TestFromPairs_NoPairs(t *testing.T) {
	comps, err := components.FromPairs(3, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, comps)
}

// TestFromPairs_Empty is the degenerate zero-element universe.
func TestFromPairs_Empty(t *testing.T) {
	comps, err := components.FromPairs(0, nil)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

// TestFromPairs_Chain collapses a whole chain into one component.
func TestFromPairs_Chain(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	comps, err := components.FromPairs(5, pairs)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, comps)
}

// TestFromPairs_Deterministic re-runs the same shuffled batch and demands
// byte-identical output.
func TestFromPairs_Deterministic(t *testing.T) {
	pairs := [][2]int{{7, 2}, {5, 5}, {3, 7}, {0, 6}, {2, 3}}
	a, err := components.FromPairs(8, pairs)
	require.NoError(t, err)
	b, err := components.FromPairs(8, pairs)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, [][]int{
		{0, 6},
		{1},
		{2, 3, 7},
		{4},
		{5},
	}, a)
}

// TestFromPairs_Errors rejects bad sizes and out-of-range endpoints.
func TestFromPairs_Errors(t *testing.T) {
	_, err := components.FromPairs(-1, nil)
	assert.ErrorIs(t, err, components.ErrNegativeSize)

	_, err = components.FromPairs(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, components.ErrIndexRange)

	_, err = components.FromPairs(3, [][2]int{{-1, 0}})
	assert.ErrorIs(t, err, components.ErrIndexRange)
}

// TestCount matches FromPairs without materializing members.
func TestCount(t *testing.T) {
	pairs := [][2]int{{1, 3}, {0, 4}}
	n, err := components.Count(5, pairs)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	comps, err := components.FromPairs(5, pairs)
	require.NoError(t, err)
	assert.Len(t, comps, n)
}

// TestSame answers single connectivity queries.
func TestSame(t *testing.T) {
	pairs := [][2]int{{0, 1}, {2, 3}}

	ok, err := components.Same(4, pairs, 0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = components.Same(4, pairs, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = components.Same(4, pairs, 0, 4)
	assert.ErrorIs(t, err, components.ErrIndexRange)
}
