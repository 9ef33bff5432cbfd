// Package dsu is a small, dependency-free toolkit for partitioning the
// integers {0, …, n−1} into disjoint blocks — the classic union-find
// (disjoint-set, merge-find) family of data structures.
//
// 🚀 What is dsu?
//
//	A pure-Go library offering two complementary union-find flavours plus
//	a convenience layer on top:
//	  • ufind      — partition table with a lazy block-contents cache,
//	                 deterministic union-by-smallest-index, explicit
//	                 Flatten, and an increasing-order representative
//	                 cursor. Built for batch-merge-then-harvest workloads.
//	  • ranked     — union-by-rank with path halving: near-constant-time
//	                 Find/Unite, plus Compress, Normalize, partition
//	                 comparison (Contains/Equal) and dynamic Resize.
//	  • components — one-call connected-components over a batch of index
//	                 pairs, the way MST and orbit algorithms consume a DSU.
//
// ✨ Why choose dsu?
//
//   - Deterministic – ufind breaks every tie toward the smaller index, so
//     identical merge sequences reproduce identical tables, bit for bit
//   - Harvest-friendly – blocks are materialized lazily, kept consistent
//     across growth, and never rebuilt when nothing changed
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – every precondition is a checked error or a
//     documented panic, never silent corruption
//
// Under the hood, everything is organized under three subpackages:
//
//	ufind/      — partition table, lazy blocks, Join, NextRep cursor
//	ranked/     — rank/path-halving engine with Normalize & comparison
//	components/ — batch pair merging → ordered block lists
//
// Quick ASCII example:
//
//	    {0,4}  {1,3}  {2}  {5}
//
//	a 6-element universe after Unite(1,3), Unite(0,4) and one AddEntry:
//	four blocks, representatives 0, 1, 2 and 5.
//
// Dive into the per-package doc.go files for contracts, complexity
// tables and worked examples.
//
//	go get github.com/katalvlaran/dsu
package dsu
