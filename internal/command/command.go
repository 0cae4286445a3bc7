package command

import (
	"fmt"
	"sort"
	"sync"
)

// Handler is a zero-argument command invoked by name from the front end.
// Handlers are synchronous, cannot fail, and must be safe for concurrent use.
type Handler func() string

// Registry maps command names to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a named command to the registry
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if h == nil {
		return fmt.Errorf("command %q: handler must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}

	r.handlers[name] = h
	return nil
}

// Lookup returns the handler registered under name
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// Names returns all registered command names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
