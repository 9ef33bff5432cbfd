// Package ufind maintains a partition of the integers {0, …, n−1} into
// disjoint blocks using the union-find method, optimized for the
// batch-merge-then-harvest pattern: stream in Unite and AddEntry calls,
// then pull the results once via NumBlocks, Blocks, or the NextRep cursor.
//
// What
//
//   - UF wraps a single parent-pointer table: table[i] points toward
//     another element of i's block, and the fixed point of the chain is
//     the block's canonical representative.
//   - Unite merges two blocks with the union-by-smallest-index rule: the
//     larger-valued representative is pointed at the smaller-valued one.
//     No randomness, no rank bookkeeping — identical call sequences
//     reproduce identical tables, bit for bit.
//   - Find chases pointers without path compression; Flatten is the
//     explicit amortization step that collapses every chain to one hop.
//   - Blocks materializes a representative → member-list map lazily; a
//     dirty flag ensures it is rebuilt only after mutations, and AddEntry
//     extends it in place without invalidating it.
//   - Join folds another equal-sized partition in, computing a common
//     coarsening of the two.
//   - ResetNextRep/NextRep enumerate representatives in increasing order
//     in one pass over the flattened table.
//
// Why
//
//   - Merge orbit/equivalence classes produced by enumeration algorithms,
//     then harvest the classes once.
//   - Connected components over edge batches (see package components).
//   - Kruskal-style cycle detection where reproducible tie-breaking
//     matters more than asymptotic union cost.
//
// Determinism
//
//	Because ties always break toward the smaller index, representatives
//	are exactly the minima of their blocks (when the structure is built
//	through New + Unite), table entries never exceed their own index
//	after Flatten, and all outputs are reproducible across runs.
//
// Mutation discipline
//
//	Find, NumBlocks and Size never modify the structure. Flatten changes
//	the table's representation but not the partition it encodes. Unite,
//	AddEntry and Join invalidate the NextRep cursor; call ResetNextRep
//	again before resuming enumeration.
//
// Complexity (n = Size(), h = longest parent chain)
//
//   - Find:       O(h)            (O(1) right after Flatten)
//   - Unite:      O(h)
//   - Flatten:    O(n·h)
//   - AddEntry:   amortized O(1)
//   - NumBlocks:  O(n), non-mutating
//   - Blocks:     O(n·h) on a dirty cache, O(1) when clean
//   - Join:       O(n·h)
//
// Errors
//
//   - ErrNegativeSize  if New is given n < 0.
//   - ErrTableEntry    if NewFromTable sees an entry outside [0, n).
//   - ErrSizeMismatch  if Join is given a partition of different size.
//   - Out-of-range indices to Find/Unite are programmer errors and panic.
//
// Concurrency
//
//	UF performs direct in-place mutation with no internal locking; wrap
//	it with your own synchronization if shared across goroutines.
package ufind
