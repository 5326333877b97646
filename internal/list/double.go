package list

import "iter"

// Handle addresses a node of a [Double]. Handles stay valid until the
// node they refer to is removed, after which the slot may be reused.
type Handle uint32

// None is the handle of no node.
const None Handle = 0

// Double is a doubly-linked list whose nodes live in a single backing
// slice and refer to each other by [Handle] instead of by pointer. A
// zero value Double is an empty list.
type Double[T any] struct {
	nodes      []DoubleNode[T]
	head, tail Handle
	free       Handle
	len        int
}

// DoubleNode is a node of a [Double].
type DoubleNode[T any] struct {
	Val        T
	prev, next Handle
}

// Len returns the number of live nodes in the list.
func (ls *Double[T]) Len() int { return ls.len }

// Head returns the handle of the first node, or None.
func (ls *Double[T]) Head() Handle { return ls.head }

// Tail returns the handle of the last node, or None.
func (ls *Double[T]) Tail() Handle { return ls.tail }

func (ls *Double[T]) node(h Handle) *DoubleNode[T] {
	return &ls.nodes[h-1]
}

// Next returns the handle following h, or None if h is the tail.
func (ls *Double[T]) Next(h Handle) Handle { return ls.node(h).next }

// Prev returns the handle preceding h, or None if h is the head.
func (ls *Double[T]) Prev(h Handle) Handle { return ls.node(h).prev }

// Get returns the value stored at h.
func (ls *Double[T]) Get(h Handle) T { return ls.node(h).Val }

func (ls *Double[T]) alloc(v T, prev, next Handle) Handle {
	ls.len++
	if ls.free != None {
		h := ls.free
		n := ls.node(h)
		ls.free = n.next
		*n = DoubleNode[T]{Val: v, prev: prev, next: next}
		return h
	}

	ls.nodes = append(ls.nodes, DoubleNode[T]{Val: v, prev: prev, next: next})
	return Handle(len(ls.nodes))
}

func (ls *Double[T]) release(h Handle) {
	*ls.node(h) = DoubleNode[T]{next: ls.free}
	ls.free = h
	ls.len--
}

// PushBack adds a new node containing v to the tail of the list.
func (ls *Double[T]) PushBack(v T) Handle {
	h := ls.alloc(v, ls.tail, None)
	if ls.head == None {
		ls.head = h
		ls.tail = h
		return h
	}

	ls.node(ls.tail).next = h
	ls.tail = h
	return h
}

// PushFront adds a new node containing v to the head of the list.
func (ls *Double[T]) PushFront(v T) Handle {
	if ls.head == None {
		return ls.PushBack(v)
	}

	h := ls.alloc(v, None, ls.head)
	ls.node(ls.head).prev = h
	ls.head = h
	return h
}

// InsertBefore adds a new node containing v directly before mark.
func (ls *Double[T]) InsertBefore(v T, mark Handle) Handle {
	prev := ls.node(mark).prev
	if prev == None {
		return ls.PushFront(v)
	}

	h := ls.alloc(v, prev, mark)
	ls.node(prev).next = h
	ls.node(mark).prev = h
	return h
}

// Remove unlinks the node at h from the list and returns its value.
// The slot is recycled by a later insertion.
func (ls *Double[T]) Remove(h Handle) T {
	n := ls.node(h)
	v := n.Val

	switch {
	case n.prev == None && n.next == None:
		ls.head = None
		ls.tail = None
	case n.prev == None:
		ls.head = n.next
		ls.node(n.next).prev = None
	case n.next == None:
		ls.tail = n.prev
		ls.node(n.prev).next = None
	default:
		ls.node(n.next).prev = n.prev
		ls.node(n.prev).next = n.next
	}

	ls.release(h)
	return v
}

// Clear removes every node, calling release, if it is not nil, on
// each value in order from head to tail. The backing storage is kept.
func (ls *Double[T]) Clear(release func(T)) {
	for h := ls.head; h != None; {
		n := ls.node(h)
		next := n.next
		if release != nil {
			release(n.Val)
		}
		h = next
	}

	clear(ls.nodes)
	ls.nodes = ls.nodes[:0]
	ls.head = None
	ls.tail = None
	ls.free = None
	ls.len = 0
}

// Reset is like Clear but also drops the backing storage.
func (ls *Double[T]) Reset(release func(T)) {
	ls.Clear(release)
	ls.nodes = nil
}

// All returns an iterator over the values of the list from head to
// tail.
func (ls *Double[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.head; cur != None; cur = ls.node(cur).next {
			if !yield(ls.node(cur).Val) {
				return
			}
		}
	}
}
