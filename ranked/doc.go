// Package ranked is the merge-heavy counterpart to package ufind: a
// union-find structure with union by rank and path halving, trading
// ufind's deterministic smallest-index representatives for effectively
// constant amortized Find/Unite.
//
// What
//
//   - Find walks to the root and halves the path as it goes — every
//     visited element is re-pointed at its grandparent.
//   - Unite attaches the shallower tree under the deeper root; equal
//     ranks break toward the second argument's root.
//   - Compress rewrites the forest into one-hop form; Normalize goes
//     further and relabels each block by its smallest member, producing
//     a canonical table independent of merge order.
//   - Contains / Equal compare partitions in the refinement order of the
//     partition lattice, ignoring forest shape entirely.
//   - Join folds another equal-sized partition in; Resize grows the
//     universe with fresh singletons.
//
// Why two flavours?
//
//	ufind keeps representatives meaningful (block minima) and tables
//	reproducible, which testing and hashing workloads want; ranked keeps
//	merge cost flat, which enumeration workloads with millions of Unite
//	calls want. Normalize bridges the two: after it, ranked's table is
//	exactly the canonical minimum-representative form.
//
// Complexity (n = Size(), α = inverse Ackermann)
//
//   - Find / Unite:       amortized O(α)
//   - NumBlocks / Reps:   O(n), non-mutating
//   - Compress:           O(n·α)
//   - Normalize:          O(n·α) time, O(n) memory
//   - Contains / Equal:   O(n·α) time, O(n) memory
//   - Join:               O(n·α)
//   - Resize:             O(growth)
//
// Errors
//
//   - ErrNegativeSize  if New is given n < 0.
//   - ErrTableEntry    if NewFromTable sees an entry outside [0, n).
//   - ErrSizeMismatch  if Join/Contains/Equal sizes differ.
//   - Out-of-range indices to Find/Unite are programmer errors and panic.
//
// Concurrency
//
//	Find mutates the forest (path halving), so even read-heavy sharing
//	across goroutines needs external synchronization.
package ranked
