package fastlist

import (
	"deedles.dev/fastlist/internal/list"
	"github.com/sirupsen/logrus"
)

// anchor is a starting point for a walk to an index.
type anchor int

const (
	anchorHead anchor = iota
	anchorTail
	anchorCursor
)

func (a anchor) String() string {
	switch a {
	case anchorHead:
		return "head"
	case anchorTail:
		return "tail"
	case anchorCursor:
		return "cursor"
	default:
		return "invalid"
	}
}

// resolve finds the node at index i, which must be in range, and moves
// the cursor to it. It starts from whichever of the head, the tail, and
// the cursor is the fewest hops away. On a tie the head is preferred to
// both others and the cursor to the tail.
func (l *List[T]) resolve(i int) (h list.Handle, a anchor, hops int) {
	last := l.chain.Len() - 1
	switch i {
	case 0:
		return l.settle(i, l.chain.Head(), anchorHead, 0)
	case last:
		return l.settle(i, l.chain.Tail(), anchorTail, 0)
	case l.cursor:
		return l.settle(i, l.cursorNode, anchorCursor, 0)
	}

	fromHead := i
	fromTail := last - i
	fromCursor := l.cursor - i
	if fromCursor < 0 {
		fromCursor = -fromCursor
	}

	step := l.chain.Next
	switch {
	case fromHead <= fromCursor && fromHead <= fromTail:
		h, a, hops = l.chain.Head(), anchorHead, fromHead
	case fromTail < fromCursor:
		h, a, hops = l.chain.Tail(), anchorTail, fromTail
		step = l.chain.Prev
	default:
		h, a, hops = l.cursorNode, anchorCursor, fromCursor
		if i < l.cursor {
			step = l.chain.Prev
		}
	}

	for range hops {
		h = step(h)
	}
	return l.settle(i, h, a, hops)
}

func (l *List[T]) settle(i int, h list.Handle, a anchor, hops int) (list.Handle, anchor, int) {
	l.cursor = i
	l.cursorNode = h

	if l.log != nil {
		l.log.WithFields(logrus.Fields{
			"index":  i,
			"anchor": a.String(),
			"hops":   hops,
		}).Trace("resolved index")
	}
	return h, a, hops
}
