// Package fastlist provides a doubly-linked list that remembers the
// position of the most recent indexed access. Lookups near that
// position, such as those made by a linear scan or a binary search,
// walk only the few links between the remembered node and the
// requested one instead of starting over from the head.
//
// A List is not safe for concurrent use. Every indexed read moves the
// cursor, so even concurrent calls to Get must be serialized by the
// caller.
package fastlist

import (
	"deedles.dev/fastlist/internal/list"
	"github.com/sirupsen/logrus"
)

// List is a doubly-linked list with a cached cursor. A zero value
// List is empty and ready to use.
type List[T any] struct {
	chain list.Double[T]

	// cursorNode is the node that is exactly cursor hops from the head.
	// It is None only when the list is empty.
	cursor     int
	cursorNode list.Handle

	release func(T)
	log     logrus.Ext1FieldLogger
}

// New returns an empty list configured with opts.
func New[T any](opts ...Option[T]) *List[T] {
	var l List[T]
	for _, opt := range opts {
		opt(&l)
	}
	return &l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.chain.Len()
}

// Cursor returns the index of the most recently resolved element.
func (l *List[T]) Cursor() int {
	return l.cursor
}

// Add appends v to the end of the list. It never moves the cursor of
// a non-empty list.
func (l *List[T]) Add(v T) {
	h := l.chain.PushBack(v)
	if l.chain.Len() == 1 {
		l.cursor = 0
		l.cursorNode = h
	}
}

// Get returns the element at index i. It returns an error wrapping
// ErrInvalidIndex if i is out of range.
func (l *List[T]) Get(i int) (v T, err error) {
	err = l.checkIndex(i)
	if err != nil {
		return v, err
	}

	h, _, _ := l.resolve(i)
	return l.chain.Get(h), nil
}

// InsertAt inserts v so that it becomes the element at index i,
// shifting the element previously at i and everything after it one
// position towards the end. Only existing indices are accepted. The
// exception is the last index, where v is linked after the old tail
// and becomes the new tail.
func (l *List[T]) InsertAt(v T, i int) error {
	err := l.checkIndex(i)
	if err != nil {
		return err
	}

	var n list.Handle
	switch i {
	case 0:
		n = l.chain.PushFront(v)
	case l.chain.Len() - 1:
		// Nothing before the new tail moves, so the cursor stays valid.
		l.chain.PushBack(v)
		return nil
	default:
		at, _, _ := l.resolve(i)
		n = l.chain.InsertBefore(v, at)
	}

	switch {
	case l.cursor == i:
		l.cursorNode = n
	case l.cursor > i:
		l.cursor++
	}
	return nil
}

// RemoveAt removes the element at index i and returns it. The removed
// value is handed back to the caller rather than to the release
// function.
func (l *List[T]) RemoveAt(i int) (v T, err error) {
	err = l.checkIndex(i)
	if err != nil {
		return v, err
	}

	h, _, _ := l.resolve(i)
	next, prev := l.chain.Next(h), l.chain.Prev(h)
	v = l.chain.Remove(h)

	switch {
	case l.chain.Len() == 0:
		l.cursor = 0
		l.cursorNode = list.None
	case next != list.None:
		l.cursorNode = next
	default:
		l.cursor = i - 1
		l.cursorNode = prev
	}
	return v, nil
}

// Clear removes every element from the list, passing each one to the
// release function, if any, in order.
func (l *List[T]) Clear() {
	l.chain.Clear(l.release)
	l.resetCursor()
}

// Delete is like Clear but also frees the storage that the list has
// accumulated. The list remains usable afterwards.
func (l *List[T]) Delete() {
	l.chain.Reset(l.release)
	l.resetCursor()
}

func (l *List[T]) resetCursor() {
	l.cursor = 0
	l.cursorNode = list.None
}
