// Package pkg provides generic utilities shared by covtrace packages.
package pkg

import (
	"log/slog"
	"sync"
)

// Resetter is implemented by values that can be returned to their initial state.
type Resetter interface {
	Reset()
}

// Pool is a free list of reusable values.
type Pool[T Resetter] interface {
	Get() T
	Put(item T)
	Len() int
	Stats() (created, reused uint64)
}

type poolImpl[T Resetter] struct {
	mu      sync.Mutex
	newFn   func() T
	free    []T
	created uint64
	reused  uint64
}

// NewPool creates a Pool that builds new values with newFn when empty.
func NewPool[T Resetter](newFn func() T) Pool[T] {
	return &poolImpl[T]{newFn: newFn}
}

// Get implements Pool.
func (p *poolImpl[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		item := p.free[n-1]

		var zero T

		p.free[n-1] = zero
		p.free = p.free[:n-1]
		p.reused++

		return item
	}

	p.created++
	slog.Debug("pool allocated item", "created", p.created)

	return p.newFn()
}

// Put implements Pool.
func (p *poolImpl[T]) Put(item T) {
	item.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.free = append(p.free, item)
}

// Len implements Pool.
func (p *poolImpl[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.free)
}

// Stats implements Pool.
func (p *poolImpl[T]) Stats() (uint64, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.created, p.reused
}
