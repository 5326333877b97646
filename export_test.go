package fastlist

import (
	"deedles.dev/fastlist/internal/list"
	"github.com/pkg/errors"
)

type Anchor = anchor

const (
	AnchorHead   = anchorHead
	AnchorTail   = anchorTail
	AnchorCursor = anchorCursor
)

// Resolve exposes the resolver along with the anchor it chose and the
// number of hops it walked.
func (l *List[T]) Resolve(i int) (v T, a Anchor, hops int, err error) {
	err = l.checkIndex(i)
	if err != nil {
		return v, a, hops, err
	}

	h, a, hops := l.resolve(i)
	return l.chain.Get(h), a, hops, nil
}

// Check verifies the links of the chain and that the cursor names the
// node it claims to.
func (l *List[T]) Check() error {
	size := l.chain.Len()
	if size == 0 {
		if l.chain.Head() != list.None || l.chain.Tail() != list.None || l.cursorNode != list.None {
			return errors.New("empty list has nodes")
		}
		return nil
	}

	h := l.chain.Head()
	for range size - 1 {
		h = l.chain.Next(h)
	}
	if h != l.chain.Tail() || l.chain.Next(h) != list.None {
		return errors.Errorf("head does not reach tail in %d hops", size-1)
	}

	h = l.chain.Tail()
	for range size - 1 {
		h = l.chain.Prev(h)
	}
	if h != l.chain.Head() || l.chain.Prev(h) != list.None {
		return errors.Errorf("tail does not reach head in %d hops", size-1)
	}

	if l.cursor < 0 || l.cursor >= size {
		return errors.Errorf("cursor %d out of range for len %d", l.cursor, size)
	}
	h = l.chain.Head()
	for range l.cursor {
		h = l.chain.Next(h)
	}
	if h != l.cursorNode {
		return errors.Errorf("cursor node is not at index %d", l.cursor)
	}
	return nil
}
