package ranked

// UF is a disjoint-set structure over {0, …, n−1} built for merge-heavy
// workloads: Unite picks roots by rank and Find halves paths as it walks,
// giving effectively constant amortized cost per operation.
//
// Unlike package ufind, representatives here are an artifact of the merge
// order, not block minima; call Normalize to relabel every block by its
// smallest member when canonical output matters.
//
// UF is not safe for concurrent use; callers must synchronize externally.
type UF struct {
	// parent[i] is i's parent in the forest; parent[r] == r marks a root.
	parent []int

	// rank[i] bounds the height of the subtree rooted at i; meaningful
	// only while i is a root.
	rank []uint8
}

// New returns a partition of {0, …, n−1} with every element in its own
// singleton block. Returns ErrNegativeSize when n < 0.
//
// Complexity: O(n).
func New(n int) (*UF, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	u := &UF{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u, nil
}

// NewFromTable adopts a caller-supplied parent table (deep-copied); all
// ranks start at zero. Entries must fall inside [0, len(table)) or
// ErrTableEntry is returned. As with package ufind, the caller is
// responsible for the table describing a terminating forest.
//
// Complexity: O(n).
func NewFromTable(table []int) (*UF, error) {
	for _, v := range table {
		if v < 0 || v >= len(table) {
			return nil, ErrTableEntry
		}
	}
	u := &UF{
		parent: make([]int, len(table)),
		rank:   make([]uint8, len(table)),
	}
	copy(u.parent, table)

	return u, nil
}

// Clone returns an independent deep copy of u.
func (u *UF) Clone() *UF {
	c := &UF{
		parent: make([]int, len(u.parent)),
		rank:   make([]uint8, len(u.rank)),
	}
	copy(c.parent, u.parent)
	copy(c.rank, u.rank)

	return c
}

// Size reports the number of tracked elements.
func (u *UF) Size() int { return len(u.parent) }

// Empty reports whether the partition tracks no elements at all.
func (u *UF) Empty() bool { return len(u.parent) == 0 }

// Find returns the root of the tree containing i.
//
// As a side effect the walked path is halved: every visited element is
// re-pointed at its grandparent. The partition itself is unchanged, only
// its internal shape; two Find calls on related elements always agree.
//
// Panics if i is outside [0, Size()).
//
// Complexity: amortized near-O(1) (inverse Ackermann).
func (u *UF) Find(i int) int {
	for {
		p := u.parent[i]
		if p == i {
			return i
		}
		g := u.parent[p]
		if g == p {
			return p
		}
		u.parent[i] = g // halve the path
		i = g
	}
}

// Unite merges the blocks containing i and j, attaching the shallower
// tree under the deeper root (union by rank). Equal ranks attach i's root
// under j's and bump j's rank.
//
// Panics if i or j is outside [0, Size()).
//
// Complexity: amortized near-O(1).
func (u *UF) Unite(i, j int) {
	ri, rj := u.Find(i), u.Find(j)
	if ri == rj {
		return
	}
	if u.rank[ri] > u.rank[rj] {
		u.parent[rj] = ri
	} else {
		u.parent[ri] = rj
		if u.rank[ri] == u.rank[rj] {
			u.rank[rj]++
		}
	}
}

// NumBlocks returns the number of distinct blocks: the count of forest
// roots. Non-mutating.
//
// Complexity: O(n).
func (u *UF) NumBlocks() int {
	count := 0
	for i, p := range u.parent {
		if p == i {
			count++
		}
	}

	return count
}

// Reps returns the block representatives (forest roots) in increasing
// order. Non-mutating.
//
// Complexity: O(n).
func (u *UF) Reps() []int {
	var reps []int
	for i, p := range u.parent {
		if p == i {
			reps = append(reps, i)
		}
	}

	return reps
}

// Compress rewrites the forest into one-hop normal form: every element
// points directly at its root, roots keep rank 0 and everything else
// rank 1. The partition is unchanged.
//
// Complexity: O(n · α).
func (u *UF) Compress() {
	for i := range u.parent {
		r := u.Find(u.parent[i])
		u.parent[i] = r
		if r == i {
			u.rank[i] = 0
		} else {
			u.rank[i] = 1
		}
	}
}

// Normalize relabels the partition into its canonical form: each block's
// representative becomes its smallest member, and the table is rewritten
// in one-hop form. Two structures encoding the same partition have
// identical parent tables after Normalize.
//
// Complexity: O(n · α) time, O(n) extra memory.
func (u *UF) Normalize() {
	u.Compress()
	// old representative → smallest member seen so far
	lookup := make(map[int]int, len(u.parent))
	fresh := make([]int, len(u.parent))
	for i := range u.parent {
		r := u.Find(i)
		if canon, ok := lookup[r]; ok {
			fresh[i] = canon
			u.rank[i] = 1
		} else {
			lookup[r] = i
			fresh[i] = i
			u.rank[i] = 0
		}
	}
	u.parent = fresh
}

// Contains reports whether u coarsens other: every block of other lies
// entirely inside some block of u. Returns ErrSizeMismatch when the two
// partitions track different numbers of elements.
//
// Complexity: O(n · α) time, O(n) memory.
func (u *UF) Contains(other *UF) (bool, error) {
	if len(u.parent) != len(other.parent) {
		return false, ErrSizeMismatch
	}
	// other's representative → u's representative for that block
	lookup := make(map[int]int, len(u.parent))
	for i := range u.parent {
		r := other.Find(i)
		if mine, ok := lookup[r]; !ok {
			lookup[r] = u.Find(i)
		} else if mine != u.Find(i) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether u and other encode the same partition, regardless
// of forest shape or representative choice. Returns ErrSizeMismatch when
// sizes differ.
func (u *UF) Equal(other *UF) (bool, error) {
	forward, err := u.Contains(other)
	if err != nil || !forward {
		return false, err
	}

	return other.Contains(u)
}

// Join merges other's partition into u: for every index i, the blocks of
// u's and other's parent entries at i are united in u. other is read-only.
// Returns ErrSizeMismatch when sizes differ.
//
// Complexity: O(n · α).
func (u *UF) Join(other *UF) error {
	if len(u.parent) != len(other.parent) {
		return ErrSizeMismatch
	}
	for i := range u.parent {
		u.Unite(u.parent[i], other.parent[i])
	}

	return nil
}

// Resize grows the universe to n elements, appending fresh singleton
// blocks. A request with n ≤ Size() is a no-op; the structure never
// shrinks.
//
// Complexity: O(n − Size()).
func (u *UF) Resize(n int) {
	for i := len(u.parent); i < n; i++ {
		u.parent = append(u.parent, i)
		u.rank = append(u.rank, 0)
	}
}
