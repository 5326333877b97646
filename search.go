package fastlist

import (
	"cmp"
	"iter"
)

// ForEach calls f with every element of the list in order. It does
// not use or move the cursor.
func (l *List[T]) ForEach(f func(T)) {
	for v := range l.chain.All() {
		f(v)
	}
}

// All returns an iterator over the indices and elements of the list in
// order. Like ForEach, it leaves the cursor alone.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for v := range l.chain.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements of the list in order.
func (l *List[T]) Values() iter.Seq[T] {
	return l.chain.All()
}

// IndexFunc returns the index of the first element for which pred
// returns true. Elements are read by index, so each step after the
// first costs a single hop from the cursor.
func (l *List[T]) IndexFunc(pred func(T) bool) (int, bool) {
	for i := range l.chain.Len() {
		h, _, _ := l.resolve(i)
		if pred(l.chain.Get(h)) {
			return i, true
		}
	}
	return -1, false
}

// Direction is the result of comparing a candidate element against a
// search target.
type Direction int

const (
	// Match means that the candidate is the target.
	Match Direction = iota

	// Left means that the target is before the candidate.
	Left

	// Right means that the target is after the candidate.
	Right
)

func (d Direction) String() string {
	switch d {
	case Match:
		return "match"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Ordered compares v against target using their natural ordering.
func Ordered[T cmp.Ordered](v, target T) Direction {
	switch c := cmp.Compare(target, v); {
	case c > 0:
		return Right
	case c < 0:
		return Left
	default:
		return Match
	}
}

// BinarySearch searches a list that is sorted with respect to compare
// for target. It returns the matching element and its index, or ok ==
// false and an index of -1 if nothing matched.
//
// Successive midpoints are resolved relative to the previous one, so
// the walks between them shrink along with the search range.
func BinarySearch[T, K any](l *List[T], target K, compare func(v T, target K) Direction) (v T, index int, ok bool) {
	start, end := 0, l.Len()-1
	for start <= end {
		mid := start + (end-start)/2
		h, _, _ := l.resolve(mid)
		cur := l.chain.Get(h)

		switch compare(cur, target) {
		case Match:
			return cur, mid, true
		case Right:
			start = mid + 1
		default:
			end = mid - 1
		}
	}

	return v, -1, false
}
