package fastlist

import "github.com/sirupsen/logrus"

// Option configures a List created by New.
type Option[T any] func(*List[T])

// WithRelease sets a function that is called exactly once with each
// value that the list discards during Clear or Delete.
func WithRelease[T any](release func(T)) Option[T] {
	return func(l *List[T]) {
		l.release = release
	}
}

// WithLogger sets a logger that receives a trace entry for every
// resolved index, naming the anchor the walk started from and the
// number of hops it took, and a debug entry for every rejected index.
func WithLogger[T any](log logrus.Ext1FieldLogger) Option[T] {
	return func(l *List[T]) {
		l.log = log
	}
}
