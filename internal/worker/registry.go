package worker

import (
	"sort"
	"sync"
)

// Handler computes the result text for one task kind. A returned error
// becomes an error-status envelope; it never escapes the worker loop.
type Handler func(content string) (string, error)

// Registry holds the recognized task kinds, keyed by kind tag.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler for a kind, replacing any previous one.
func (r *Registry) Register(kind string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = h
}

// Get returns the handler for a kind, or nil if the kind is unrecognized.
func (r *Registry) Get(kind string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[kind]
}

// Kinds returns the recognized kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
