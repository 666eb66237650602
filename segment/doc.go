// Package segment implements a segmented contiguous sequence: one backing
// slice logically partitioned into a fixed number of ordered groups whose
// boundaries move as items are added, removed, or relocated.
//
// # Overview
//
// The Array stores every group's items in a single contiguous slice and keeps
// a boundary table of groups-1 monotonically non-decreasing end offsets. This
// lets a caller hold many variable-length sub-sequences (e.g. per-category
// byte runs) without per-group allocation, at the cost of O(n) shifting when
// a group changes length.
//
// # Invariants
//
//   - 0 <= splits[0] <= splits[1] <= ... <= splits[groups-2] <= Len()
//   - the sum of all group lengths always equals Len()
//   - a rejected operation leaves the Array unchanged (all-or-nothing)
//
// # Usage
//
//	arr, _ := segment.New[byte](3)
//	arr.SetGroup(0, []byte("ABCD"))
//	arr.SetGroup(1, []byte("EFGH"))
//	arr.SetGroup(2, []byte("IJKL"))
//
//	idx, ok := arr.FindFirst(func(b byte) bool { return b == 'H' }) // 7, true
//	g, ok := arr.LocateGroup(idx, 0)                                // 1, true
//	arr.MoveItem(idx, 0)                                            // 'H' joins group 0
//
// # Concurrency
//
// An Array is single-threaded: no operation blocks, and none is safe for
// concurrent mutation. Callers needing shared access must serialize with
// their own lock.
//
// For a byte-oriented facade with string helpers and a colored debug
// renderer, see github.com/arloliu/groupbuf/textbuf.
package segment
