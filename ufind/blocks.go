package ufind

// Blocks returns the representative → ordered-member-list view of the
// partition, materializing it lazily.
//
// The returned map is sparse: a key is present exactly when that index is
// the representative of a block (owns a member list); absorbed and
// non-representative indices carry no entry at all. Every element of
// [0, Size()) appears in exactly one list, and lists hold their members in
// the order the merge pass absorbed them (ascending seeds, absorbed runs
// appended whole).
//
// The map is owned by the structure and stays valid — and consistent —
// until the next Unite or Join; AddEntry extends it in place with a new
// singleton. Callers must treat it as read-only.
//
// Repeated calls with no intervening mutation return the same map without
// recomputation.
//
// Complexity: first call O(n) to seed + O(n · max chain length) to merge;
// clean repeat calls O(1).
func (u *UF) Blocks() map[int][]int {
	// 1. Seed the cache with singletons on first use.
	if u.blocks == nil {
		u.blocks = make(map[int][]int, len(u.table))
		for i := range u.table {
			u.blocks[i] = []int{i}
		}
	}

	// 2. If the table changed since the last build, fold every list into
	//    its owner's representative list. Scanning indices in increasing
	//    order keeps the member ordering deterministic.
	if u.dirty {
		for i := 0; i < len(u.table); i++ {
			members, ok := u.blocks[i]
			if !ok {
				continue // already absorbed into another block
			}
			if r := u.Find(i); r != i {
				u.blocks[r] = append(u.blocks[r], members...)
				delete(u.blocks, i)
			}
		}
		u.dirty = false
	}

	return u.blocks
}
