package segment

import "iter"

// LocateGroup returns the group owning the item at itemIndex, scanning
// forward from hintGroup. Callers iterating the sequence in index order can
// pass the last group they saw as the hint to make repeated lookups
// amortized O(1); pass 0 to scan from the beginning.
//
// Returns false if itemIndex is outside [0, Len()) or no group at or after
// hintGroup contains it. Absence is an expected outcome, not an error.
func (a *Array[T]) LocateGroup(itemIndex, hintGroup int) (int, bool) {
	if itemIndex < 0 || itemIndex >= len(a.items) {
		return 0, false
	}

	g := hintGroup
	if g < 0 {
		g = 0
	}
	for ; g < a.splits.groups(); g++ {
		if itemIndex < a.splits.end(g, len(a.items)) {
			return g, true
		}
	}

	return 0, false
}

// FindFirst returns the lowest index whose item satisfies pred, or false if
// no item does. The scan is linear over the whole sequence in physical order.
func (a *Array[T]) FindFirst(pred func(T) bool) (int, bool) {
	for i, item := range a.items {
		if pred(item) {
			return i, true
		}
	}

	return 0, false
}

// ForEachItem calls visit for every item in physical order.
// visit must not mutate the Array during traversal.
func (a *Array[T]) ForEachItem(visit func(T)) {
	for _, item := range a.items {
		visit(item)
	}
}

// ForEachInGroup calls visit for every item in group g, in physical order.
// visit must not mutate the Array during traversal.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) ForEachInGroup(g int, visit func(T)) error {
	if err := a.checkGroup(g); err != nil {
		return err
	}

	end := a.splits.end(g, len(a.items))
	for i := a.splits.start(g); i < end; i++ {
		visit(a.items[i])
	}

	return nil
}

// All returns an iterator over (index, item) pairs in physical order.
// The Array must not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range a.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// AllInGroup returns an iterator over group g's items in physical order.
// The Array must not be mutated during iteration.
//
// Returns errs.ErrInvalidGroupIndex if g is outside [0, Groups()).
func (a *Array[T]) AllInGroup(g int) (iter.Seq[T], error) {
	if err := a.checkGroup(g); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		end := a.splits.end(g, len(a.items))
		for i := a.splits.start(g); i < end; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}, nil
}
