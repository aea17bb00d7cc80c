package domain

import (
	"maps"
	"sync"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// IdentityRegistry hands out small sequential ids for object handles. Id 0 is
// reserved for m.NoObject and is never given to a real object.
type IdentityRegistry struct {
	mu   sync.Mutex
	ids  map[m.ObjectHandle]int
	next int
}

// NewIdentityRegistry creates an empty registry.
func NewIdentityRegistry() *IdentityRegistry {
	return &IdentityRegistry{ids: make(map[m.ObjectHandle]int)}
}

// Register returns the id of h, assigning the next one on first sight.
func (r *IdentityRegistry) Register(h m.ObjectHandle) int {
	if h == m.NoObject {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[h]; ok {
		return id
	}

	r.next++
	r.ids[h] = r.next

	return r.next
}

// Lookup returns the id of a handle without registering it.
func (r *IdentityRegistry) Lookup(h m.ObjectHandle) (int, bool) {
	if h == m.NoObject {
		return 0, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.ids[h]

	return id, ok
}

// Len returns the number of registered objects.
func (r *IdentityRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.ids)
}

// Clone returns an independent copy.
func (r *IdentityRegistry) Clone() *IdentityRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &IdentityRegistry{ids: maps.Clone(r.ids), next: r.next}
}

// Reset forgets every object.
func (r *IdentityRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.ids)
	r.next = 0
}
