package ufind

// UF maintains a partition of {0, …, n−1} into disjoint blocks.
//
// Every element i stores, in table[i], a pointer toward another element of
// the same block. Chasing pointers from any element terminates at a fixed
// point r with table[r] == r; that fixed point is the block's canonical
// representative. The zero value is an empty partition; use New or
// NewFromTable to construct a populated one.
//
// UF is not safe for concurrent use; callers must synchronize externally.
type UF struct {
	// table[i] points toward another element of i's block. A fixed point
	// (table[r] == r) marks r as the representative of its block.
	table []int

	// blocks is the lazily materialized representative → members cache.
	// nil until Blocks is first called; see blocks.go.
	blocks map[int][]int

	// dirty records that table changed since blocks was last rebuilt.
	dirty bool

	// cursor drives the NextRep enumeration; see ResetNextRep.
	cursor int
}

// New returns a partition of {0, …, n−1} with every element in its own
// singleton block (table[i] = i).
//
// Returns ErrNegativeSize when n < 0. n == 0 yields a valid empty
// partition that can still grow via AddEntry.
//
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	u := &UF{table: make([]int, n)}
	for i := range u.table {
		u.table[i] = i
	}

	return u, nil
}

// NewFromTable adopts a caller-supplied parent-pointer table. The table is
// deep-copied, so the caller's slice may be reused or discarded freely.
//
// Every entry must point inside the table ([0, len(table))); otherwise
// ErrTableEntry is returned. The caller remains responsible for the table
// describing a valid forest (pointer chains that terminate): cycles other
// than self-loops are not detected here and produce undefined Find
// behavior.
//
// The block cache starts unmaterialized, so the first Blocks call performs
// a full resolution pass.
//
// Complexity: O(n) time and memory.
func NewFromTable(table []int) (*UF, error) {
	for _, v := range table {
		if v < 0 || v >= len(table) {
			return nil, ErrTableEntry
		}
	}
	u := &UF{
		table: make([]int, len(table)),
		dirty: true,
	}
	copy(u.table, table)

	return u, nil
}

// Clone returns an independent deep copy of u: the table is copied, and if
// the block cache has been materialized, the cache (including every member
// list) is copied as well. An unmaterialized cache stays unmaterialized.
//
// Complexity: O(n) time and memory.
func (u *UF) Clone() *UF {
	c := &UF{
		table:  make([]int, len(u.table)),
		dirty:  u.dirty,
		cursor: u.cursor,
	}
	copy(c.table, u.table)
	if u.blocks != nil {
		c.blocks = make(map[int][]int, len(u.blocks))
		for rep, members := range u.blocks {
			dup := make([]int, len(members))
			copy(dup, members)
			c.blocks[rep] = dup
		}
	}

	return c
}

// Size reports the number of tracked elements. It only grows (via
// AddEntry), never shrinks.
func (u *UF) Size() int { return len(u.table) }

// Table returns a copy of the raw parent-pointer table, mainly for
// inspection and testing. Mutating the returned slice does not affect u.
func (u *UF) Table() []int {
	t := make([]int, len(u.table))
	copy(t, u.table)

	return t
}

// Find returns the canonical representative of the block containing i:
// the fixed point reached by chasing table[i] → table[table[i]] → ….
//
// No path compression is performed; the table is left untouched. Call
// Flatten explicitly to collapse chains to single hops.
//
// Panics if i is outside [0, Size()) — an out-of-range index is a
// programmer error, not a recoverable condition.
//
// Complexity: O(chain length); O(1) after Flatten.
func (u *UF) Find(i int) int {
	// Bounds are enforced by the slice access itself; chase pointers
	// until the fixed point.
	for u.table[i] != i {
		i = u.table[i]
	}

	return i
}

// Unite merges the blocks containing i and j.
//
// The representatives ri = Find(i) and rj = Find(j) are computed, and the
// larger-valued one is pointed at the smaller-valued one:
// table[max(ri,rj)] = min(ri,rj). Ties always break toward the smaller
// index, so identical Unite sequences reproduce identical tables across
// runs — load-bearing for reproducible tests.
//
// When ri == rj the table is untouched (the assignment is a self-loop
// write of the value already present); the dirty flag is still set, as in
// every Unite call.
//
// Panics if i or j is outside [0, Size()).
//
// Complexity: two Find calls + O(1).
func (u *UF) Unite(i, j int) {
	ri, rj := u.Find(i), u.Find(j)
	if ri < rj {
		u.table[rj] = ri
	} else {
		u.table[ri] = rj
	}
	u.dirty = true
}

// Flatten rewrites every table entry to its representative, collapsing
// multi-hop parent chains to single hops. The partition itself is
// unchanged: Find(i) returns the same value before and after.
//
// Complexity: O(n · max chain length) time, O(1) extra memory.
func (u *UF) Flatten() {
	for i := range u.table {
		u.table[i] = u.Find(i)
	}
}

// AddEntry appends one new element as its own singleton block: the table
// grows by one with table[Size()] = Size().
//
// If the block cache is materialized, a singleton member list for the new
// element is appended to it, keeping the cache consistent without a
// rebuild. Existing blocks are unaffected, so the dirty flag is left as
// it was.
//
// Complexity: amortized O(1).
func (u *UF) AddEntry() {
	n := len(u.table)
	u.table = append(u.table, n)
	if u.blocks != nil {
		u.blocks[n] = []int{n}
	}
}

// NumBlocks returns the number of distinct blocks in the partition.
//
// Representatives are exactly the fixed points of the table (table[r] ==
// r) regardless of how deep other chains are, so a single non-mutating
// scan suffices. An empty partition has zero blocks.
//
// Complexity: O(n) time, O(1) memory; the table is not modified.
func (u *UF) NumBlocks() int {
	count := 0
	for i, v := range u.table {
		if v == i {
			count++
		}
	}

	return count
}

// Join merges other's partition into u: for every index i, the blocks of
// u.table[i] and other.table[i] are united in u. The result is at least as
// coarse as both inputs — elements related under either partition end up
// related in u.
//
// The raw table entries are used as Unite arguments, not resolved
// representatives; for already-flattened inputs the two coincide. other
// is read-only throughout; u may be joined with itself (a no-op on the
// partition).
//
// Returns ErrSizeMismatch when the two partitions track different numbers
// of elements.
//
// Complexity: n Unite calls, O(n · max chain length) total.
func (u *UF) Join(other *UF) error {
	if len(u.table) != len(other.table) {
		return ErrSizeMismatch
	}
	for i := range u.table {
		u.Unite(u.table[i], other.table[i])
	}

	return nil
}

// ResetNextRep prepares the representative cursor: the table is flattened
// and the cursor rewound to position 0. Must be called before the first
// NextRep and again after any mutation (Unite, AddEntry, Join), which
// invalidates the cursor.
//
// Complexity: one Flatten, O(n).
func (u *UF) ResetNextRep() {
	u.Flatten()
	u.cursor = 0
}

// NextRep returns the next block representative in increasing order, or
// ok == false once all representatives have been enumerated.
//
// Valid only between a ResetNextRep call and the next mutation; calling
// it after an intervening Unite/AddEntry/Join yields unspecified results.
//
// After flattening, table values along the scan never exceed the largest
// representative seen so far except exactly at the next representative,
// so the cursor skips every position whose entry is ≤ the value just
// returned. This walk assumes representatives are their blocks' minima,
// which holds for any structure built through New and Unite; adopted
// tables whose representatives are not block minima do not satisfy the
// enumeration contract.
//
// Complexity: amortized O(1) per call, O(n) for a full enumeration.
func (u *UF) NextRep() (rep int, ok bool) {
	if u.cursor >= len(u.table) {
		return 0, false
	}
	rep = u.cursor
	for u.cursor < len(u.table) && u.table[u.cursor] <= rep {
		u.cursor++
	}

	return rep, true
}
