package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Lazy holds at most one value of T, constructed on first use.
type Lazy[T any] struct {
	construct func() (T, error)
	val       atomic.Pointer[T]
	mu        sync.Mutex
}

// New returns an empty cell that will build its value with construct.
func New[T any](construct func() (T, error)) *Lazy[T] {
	if construct == nil {
		panic("singleton: nil constructor")
	}
	return &Lazy[T]{construct: construct}
}

// Get returns the cell's value, constructing it on the first call. Concurrent
// first calls run the constructor exactly once; later calls take a lock-free
// path. A constructor error is returned to the caller that triggered it and
// the cell stays empty, so the next Get retries.
func (l *Lazy[T]) Get() (T, error) {
	if p := l.val.Load(); p != nil {
		return *p, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	// Another goroutine may have won the race while we waited.
	if p := l.val.Load(); p != nil {
		return *p, nil
	}
	v, err := l.construct()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("singleton init: %w", err)
	}
	l.val.Store(&v)
	return v, nil
}

// MustGet is Get for constructors that cannot fail. It panics on error.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Initialized reports whether the value has been constructed.
func (l *Lazy[T]) Initialized() bool {
	return l.val.Load() != nil
}
