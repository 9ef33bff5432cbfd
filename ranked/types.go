// Package ranked defines sentinel errors for the rank-based union-find
// structure.
package ranked

import "errors"

// Sentinel errors for ranked operations.
var (
	// ErrNegativeSize is returned by New when the requested universe size
	// is negative.
	ErrNegativeSize = errors.New("ranked: size must be non-negative")

	// ErrTableEntry is returned by NewFromTable when some entry does not
	// point inside the table, i.e. falls outside [0, len(table)).
	ErrTableEntry = errors.New("ranked: table entry out of range")

	// ErrSizeMismatch is returned by Join, Contains and Equal when the two
	// partitions track different numbers of elements.
	ErrSizeMismatch = errors.New("ranked: partitions have different sizes")
)
