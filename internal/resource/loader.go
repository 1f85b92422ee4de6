// Package resource provides once-per-process lazy initialization for
// heavyweight subsystems such as the OCR engine.
//
// A Loader runs its initializer at most once and memoizes the outcome,
// including a failed outcome: an unrecoverable environment problem (for
// example, a missing native backend) is reported to every caller without
// being silently retried on each request.
package resource

import "sync"

// Loader lazily initializes a value of type T exactly once.
type Loader[T any] struct {
	init func() (T, error)

	once  sync.Once
	value T
	err   error
}

// NewLoader returns a Loader that obtains its value from init on first use.
func NewLoader[T any](init func() (T, error)) *Loader[T] {
	return &Loader[T]{init: init}
}

// Get returns the memoized value, running the initializer on the first
// call. Both the value and any initialization error are cached for the
// lifetime of the process.
func (l *Loader[T]) Get() (T, error) {
	l.once.Do(func() {
		l.value, l.err = l.init()
	})
	return l.value, l.err
}
