package singleton

import "sync"

// Registry exposes named singleton slots sharing one value type. The first
// caller of a name installs its constructor; everyone else gets that value.
type Registry[T any] struct {
	mu    sync.Mutex
	slots map[string]*Lazy[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{slots: make(map[string]*Lazy[T])}
}

// Get returns the value for name, constructing it with construct if the slot
// is empty. Constructors passed by later callers for the same name are
// ignored once the slot exists.
func (r *Registry[T]) Get(name string, construct func() (T, error)) (T, error) {
	r.mu.Lock()
	l, ok := r.slots[name]
	if !ok {
		l = New(construct)
		r.slots[name] = l
	}
	r.mu.Unlock()
	return l.Get()
}

// Initialized reports whether the named slot holds a constructed value.
func (r *Registry[T]) Initialized(name string) bool {
	r.mu.Lock()
	l, ok := r.slots[name]
	r.mu.Unlock()
	return ok && l.Initialized()
}
