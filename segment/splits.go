package segment

import "fmt"

// splitTable is the boundary table: groups-1 monotonically non-decreasing
// exclusive end offsets, one per group except the last. Group g's half-open
// range is [start(g), end(g, total)); the last group always ends at the
// total item count, so the table is consistent with it by construction.
type splitTable struct {
	ends []int
}

func newSplitTable(groupCount int) splitTable {
	return splitTable{ends: make([]int, groupCount-1)}
}

// groups returns the fixed number of groups the table partitions.
func (t *splitTable) groups() int {
	return len(t.ends) + 1
}

// start returns the inclusive start offset of group g.
// Group index validation is the caller's responsibility.
func (t *splitTable) start(g int) int {
	if g == 0 {
		return 0
	}

	return t.ends[g-1]
}

// end returns the exclusive end offset of group g, given the total item count.
func (t *splitTable) end(g, total int) int {
	if g == len(t.ends) {
		return total
	}

	return t.ends[g]
}

// shift adds offset to every split owned by a group in [from, to).
// Only splits with index in [from, to-1) exist, so a range covering just the
// last group changes nothing.
//
// The result must keep the table monotonic and inside [0, total]. That is
// verified before anything is written: a violation means the engine itself
// computed an impossible shift, which is a logic defect, so it panics rather
// than returning a recoverable error.
func (t *splitTable) shift(offset, from, to, total int) {
	hi := to - 1
	if hi > len(t.ends) {
		hi = len(t.ends)
	}
	if from >= hi {
		return
	}

	lo := 0
	if from > 0 {
		lo = t.ends[from-1]
	}
	next := total
	if hi < len(t.ends) {
		next = t.ends[hi]
	}
	// The whole range moves by the same offset, so monotonicity inside it is
	// preserved; only the two edges can break the invariant.
	if t.ends[from]+offset < lo || t.ends[hi-1]+offset > next {
		panic(fmt.Sprintf("segment: boundary shift by %d over groups [%d,%d) corrupts split table %v (total %d)",
			offset, from, to, t.ends, total))
	}

	for i := from; i < hi; i++ {
		t.ends[i] += offset
	}
}

// reset zeroes every split, making every group but the first empty.
func (t *splitTable) reset() {
	for i := range t.ends {
		t.ends[i] = 0
	}
}
