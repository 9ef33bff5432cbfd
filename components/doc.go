// Package components is a one-call convenience layer over package ufind:
// feed it a universe size and a batch of index pairs, get back the
// connected components of the generated relation.
//
// What
//
//   - FromPairs: all components, members ascending, components ordered by
//     smallest member — fully deterministic output.
//   - Count: just the number of components.
//   - Same: a single connectivity query.
//
// Why
//
//   - Cluster detection over edge lists without building a graph type.
//   - Orbit merging: unite enumeration results, harvest classes once.
//   - Quick answers in tests and tools where constructing and reusing a
//     ufind.UF by hand is ceremony.
//
// Each call builds a fresh partition from the pair batch; callers that
// interleave many merges and queries should hold a ufind.UF directly
// instead of re-batching.
//
// Complexity: every entry point is O(n + |pairs| · h) time and O(n)
// memory, where h is the longest parent chain the merges create.
//
// Errors
//
//   - ErrNegativeSize  if n < 0.
//   - ErrIndexRange    if a pair endpoint or query index is outside [0, n).
package components
