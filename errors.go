package fastlist

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidIndex is returned, possibly wrapped, when an index is
// outside of a list's bounds. Every index is invalid for an empty
// list.
var ErrInvalidIndex = errors.New("invalid index")

func (l *List[T]) checkIndex(i int) error {
	size := l.chain.Len()
	if i >= 0 && i < size {
		return nil
	}

	if l.log != nil {
		l.log.WithFields(logrus.Fields{
			"index": i,
			"len":   size,
		}).Debug("rejected index")
	}
	return errors.Wrapf(ErrInvalidIndex, "index %d, len %d", i, size)
}
