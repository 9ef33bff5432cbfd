// Package components computes connected components over batches of index
// pairs, using the ufind partition table as its engine.
package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsu/ufind"
)

// Sentinel errors for component computation.
var (
	// ErrNegativeSize indicates a negative universe size.
	ErrNegativeSize = errors.New("components: size must be non-negative")
	// ErrIndexRange indicates a pair endpoint outside [0, n).
	ErrIndexRange = errors.New("components: pair index out of range")
)

// merge validates every pair and folds it into a fresh n-element
// partition. Shared by all entry points.
func merge(n int, pairs [][2]int) (*ufind.UF, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	u, err := ufind.New(n)
	if err != nil {
		return nil, err
	}
	for k, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return nil, fmt.Errorf("%w: pair %d = (%d,%d), n = %d", ErrIndexRange, k, p[0], p[1], n)
		}
		u.Unite(p[0], p[1])
	}

	return u, nil
}

// FromPairs returns the connected components of the relation generated by
// pairs over the universe {0, …, n−1}: one slice per component, members
// in increasing order, components ordered by their smallest member.
// Unrelated elements form singleton components.
//
// Deterministic: identical inputs yield identical output, element for
// element, thanks to ufind's union-by-smallest-index rule.
//
// Returns ErrNegativeSize when n < 0 and ErrIndexRange (with the
// offending pair) when an endpoint falls outside the universe.
//
// Complexity: O(n + |pairs| · h) time, O(n) memory
// (h = longest parent chain formed by the merges).
func FromPairs(n int, pairs [][2]int) ([][]int, error) {
	u, err := merge(n, pairs)
	if err != nil {
		return nil, err
	}

	// Harvest in representative order: each block's smallest member is
	// its representative, and NextRep walks them in increasing order.
	blocks := u.Blocks()
	out := make([][]int, 0, u.NumBlocks())
	u.ResetNextRep()
	for {
		rep, ok := u.NextRep()
		if !ok {
			break
		}
		out = append(out, blocks[rep])
	}

	return out, nil
}

// Count returns the number of connected components of the relation
// generated by pairs over {0, …, n−1}, without materializing any of them.
//
// Complexity: O(n + |pairs| · h) time, O(n) memory.
func Count(n int, pairs [][2]int) (int, error) {
	u, err := merge(n, pairs)
	if err != nil {
		return 0, err
	}

	return u.NumBlocks(), nil
}

// Same reports whether i and j land in the same component under the
// relation generated by pairs over {0, …, n−1}.
//
// Returns ErrIndexRange when i, j or any pair endpoint falls outside the
// universe.
//
// Complexity: O(n + |pairs| · h) time, O(n) memory.
func Same(n int, pairs [][2]int, i, j int) (bool, error) {
	if i < 0 || i >= n || j < 0 || j >= n {
		return false, fmt.Errorf("%w: query (%d,%d), n = %d", ErrIndexRange, i, j, n)
	}
	u, err := merge(n, pairs)
	if err != nil {
		return false, err
	}

	return u.Find(i) == u.Find(j), nil
}
