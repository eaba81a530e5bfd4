package draw

import "sync"

// Lazy holds a value computed on the first call to Get. The computation
// runs exactly once even when Get is called from several goroutines.
type Lazy[T any] struct {
	once  sync.Once
	init  func() T
	value T
}

// NewLazy returns a cell computing its value with init.
func NewLazy[T any](init func() T) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the value, computing it on first use.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.init()
		l.init = nil
	})
	return l.value
}

// Builder is implemented by values that construct a T in a final step.
type Builder[T any] interface {
	Build() T
}

// LazyBuild returns a cell whose value is produced by a builder: on
// first use construct is called and the result of its Build is cached.
func LazyBuild[T any, B Builder[T]](construct func() B) *Lazy[T] {
	return NewLazy(func() T {
		return construct().Build()
	})
}
