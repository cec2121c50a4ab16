package session

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps backend names to Provider instances. It is populated once at
// startup and passed into NewManager, which resolves the configured backend
// through it. Registration mistakes are startup configuration errors, not
// runtime conditions, so Register panics instead of returning an error.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register binds a backend name to a provider. It panics if the provider is
// nil or the name is empty or already bound.
func (r *Registry) Register(name string, provider Provider) {
	if name == "" {
		panic("session: Register backend name is empty")
	}
	if provider == nil {
		panic("session: Register provider is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.providers[name]; dup {
		panic("session: Register called twice for backend " + name)
	}
	r.providers[name] = provider
}

// Resolve returns the provider bound to name, or ErrUnknownBackend.
func (r *Registry) Resolve(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return provider, nil
}

// Backends returns the registered backend names in sorted order.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
