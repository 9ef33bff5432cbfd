// Package ufind defines sentinel errors and shared contracts for the
// partition-table union-find structure.
package ufind

import "errors"

// Sentinel errors for ufind operations.
var (
	// ErrNegativeSize is returned by New when the requested universe size
	// is negative.
	ErrNegativeSize = errors.New("ufind: size must be non-negative")

	// ErrTableEntry is returned by NewFromTable when some entry does not
	// point inside the table, i.e. falls outside [0, len(table)).
	ErrTableEntry = errors.New("ufind: table entry out of range")

	// ErrSizeMismatch is returned by Join when the two partitions track
	// different numbers of elements.
	ErrSizeMismatch = errors.New("ufind: partitions have different sizes")
)
