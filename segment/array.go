package segment

import (
	"fmt"

	"github.com/arloliu/groupbuf/errs"
)

// Array stores a fixed number of ordered groups of items in one contiguous
// backing slice. Group boundaries are kept in a split table and move as items
// are added, removed, or relocated, so growing one group shifts the groups
// after it instead of allocating per-group storage.
//
// Layout for a 4-group Array[byte] holding "one", "two", "three", "four":
//
//	0         split 0   split 1     split 2   Len()
//	|            |         |           |        |
//	 one          two       three       four
//
// The Array exclusively owns its backing storage: accessors return copies,
// never views, so no mutation can bypass the engine.
//
// An Array is not safe for concurrent use; callers needing shared access must
// serialize externally.
type Array[T any] struct {
	items  []T
	splits splitTable
}

// New creates an Array partitioned into groupCount groups, all initially
// empty. The group count is fixed for the Array's lifetime.
//
// Returns errs.ErrInvalidGroupCount if groupCount is not positive.
func New[T any](groupCount int) (*Array[T], error) {
	if groupCount < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidGroupCount, groupCount)
	}

	return &Array[T]{splits: newSplitTable(groupCount)}, nil
}

// Groups returns the fixed number of groups.
func (a *Array[T]) Groups() int {
	return a.splits.groups()
}

// Len returns the total number of items across all groups.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// GroupStart returns the inclusive start offset of group g in the backing
// sequence.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) GroupStart(g int) (int, error) {
	if err := a.checkGroup(g); err != nil {
		return 0, err
	}

	return a.splits.start(g), nil
}

// GroupEnd returns the exclusive end offset of group g in the backing
// sequence.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) GroupEnd(g int) (int, error) {
	if err := a.checkGroup(g); err != nil {
		return 0, err
	}

	return a.splits.end(g, len(a.items)), nil
}

// GroupLen returns the number of items currently in group g.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) GroupLen(g int) (int, error) {
	if err := a.checkGroup(g); err != nil {
		return 0, err
	}

	return a.splits.end(g, len(a.items)) - a.splits.start(g), nil
}

// SetGroup replaces group g's entire contents with items (possibly empty).
// All other groups' contents are unchanged; the groups after g shift in the
// backing sequence by the length difference.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) SetGroup(g int, items []T) error {
	return a.splice(g, items, true)
}

// AppendGroup inserts items at the end of group g without disturbing the
// group's existing contents.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) AppendGroup(g int, items []T) error {
	return a.splice(g, items, false)
}

// AppendItem appends a single item to group g.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) AppendItem(g int, item T) error {
	return a.splice(g, []T{item}, false)
}

// RemoveGroup empties group g. Removing an already-empty group is a no-op.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) RemoveGroup(g int) error {
	return a.splice(g, nil, true)
}

// MoveItem relocates the single item at itemIndex into targetGroup,
// preserving the relative order of all other items, and returns the item's
// new index. Moving an item into the group that already owns it is a no-op.
//
// The item is rotated toward the nearer edge of the target group, so the
// number of elements touched is the distance between the item and the
// target's boundary, not the whole sequence.
//
// Returns errs.ErrInvalidGroupIndex if targetGroup is outside [0, Groups()),
// or errs.ErrItemIndexOutOfRange if itemIndex is outside [0, Len()).
func (a *Array[T]) MoveItem(itemIndex, targetGroup int) (int, error) {
	if err := a.checkGroup(targetGroup); err != nil {
		return 0, err
	}
	if err := a.checkIndex(itemIndex); err != nil {
		return 0, err
	}

	source, _ := a.LocateGroup(itemIndex, 0)
	if targetGroup == source {
		return itemIndex, nil
	}

	if targetGroup > source {
		// Everything between the source and the target moves one group down,
		// then the item rotates right to the target's new left edge.
		a.splits.shift(-1, source, targetGroup+1, len(a.items))
		dst := a.splits.start(targetGroup)
		moved := a.items[itemIndex]
		copy(a.items[itemIndex:dst], a.items[itemIndex+1:dst+1])
		a.items[dst] = moved

		return dst, nil
	}

	// Symmetric: everything between moves one group up, and the item rotates
	// left to the target's new right edge.
	a.splits.shift(1, targetGroup, source+1, len(a.items))
	dst := a.splits.end(targetGroup, len(a.items)) - 1
	moved := a.items[itemIndex]
	copy(a.items[dst+1:itemIndex+1], a.items[dst:itemIndex])
	a.items[dst] = moved

	return dst, nil
}

// RemoveItem deletes the single item at itemIndex, shifting all subsequent
// items left by one and shrinking the owning group by one.
//
// Returns errs.ErrItemIndexOutOfRange if itemIndex is outside [0, Len()).
func (a *Array[T]) RemoveItem(itemIndex int) error {
	if err := a.checkIndex(itemIndex); err != nil {
		return err
	}

	g, _ := a.LocateGroup(itemIndex, 0)
	a.splits.shift(-1, g, a.splits.groups(), len(a.items))

	copy(a.items[itemIndex:], a.items[itemIndex+1:])
	last := len(a.items) - 1
	clear(a.items[last:]) // drop the stale tail reference
	a.items = a.items[:last]

	return nil
}

// Item returns the item at itemIndex.
//
// Returns errs.ErrItemIndexOutOfRange if itemIndex is outside [0, Len()).
func (a *Array[T]) Item(itemIndex int) (T, error) {
	if err := a.checkIndex(itemIndex); err != nil {
		var zero T
		return zero, err
	}

	return a.items[itemIndex], nil
}

// Group returns a copy of group g's contents. The copy does not alias the
// backing storage; an empty group yields an empty (non-nil) slice.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) Group(g int) ([]T, error) {
	if err := a.checkGroup(g); err != nil {
		return nil, err
	}

	start := a.splits.start(g)
	end := a.splits.end(g, len(a.items))
	out := make([]T, end-start)
	copy(out, a.items[start:end])

	return out, nil
}

// Reset empties every group while retaining the backing capacity.
func (a *Array[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
	a.splits.reset()
}

// splice implements both replace (SetGroup) and append (AppendGroup)
// semantics: it resizes group g's range in place and writes items into the
// freed span. The tail of the sequence is shifted with copy, which is
// overlap-safe in both directions, so growing shifts right and shrinking
// shifts left without corrupting the overlapping range. Precondition checks
// happen before any mutation, so a rejected call leaves the Array unchanged.
func (a *Array[T]) splice(g int, items []T, replace bool) error {
	if err := a.checkGroup(g); err != nil {
		return err
	}

	start := a.splits.start(g)
	end := a.splits.end(g, len(a.items))

	delta := len(items)
	if replace {
		delta = len(items) - (end - start)
	}

	switch {
	case delta > 0:
		a.items = append(a.items, make([]T, delta)...)
		copy(a.items[end+delta:], a.items[end:])
	case delta < 0:
		copy(a.items[end+delta:], a.items[end:])
		tail := len(a.items) + delta
		clear(a.items[tail:]) // drop stale tail references
		a.items = a.items[:tail]
	}

	if replace {
		copy(a.items[start:], items)
	} else {
		copy(a.items[end:], items)
	}

	a.splits.shift(delta, g, a.splits.groups(), len(a.items))

	return nil
}

func (a *Array[T]) checkGroup(g int) error {
	if g < 0 || g >= a.splits.groups() {
		return fmt.Errorf("%w: group %d of %d", errs.ErrInvalidGroupIndex, g, a.splits.groups())
	}

	return nil
}

func (a *Array[T]) checkIndex(itemIndex int) error {
	if itemIndex < 0 || itemIndex >= len(a.items) {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrItemIndexOutOfRange, itemIndex, len(a.items))
	}

	return nil
}
