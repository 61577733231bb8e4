package registry

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/autoperm/internal/backend"
)

// Module is the interface that all backend modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds a fresh backend instance for one program.
type Factory func(opts backend.Options) backend.Backend[string]

// RegisteredBackend describes one registered backend.
type RegisteredBackend struct {
	Name        string
	Description string
	// Executable is true when the output runs on the tape machine and can
	// therefore be verified.
	Executable bool
	New        Factory
}

// Registry holds the registered backends of a single application instance.
type Registry struct {
	backends map[string]*RegisteredBackend
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		backends: make(map[string]*RegisteredBackend),
	}
}

// RegisterBackend adds a backend under name. Registering the same name
// twice replaces the earlier entry.
func (r *Registry) RegisterBackend(name string, rb *RegisteredBackend) {
	rb.Name = name
	r.backends[name] = rb
}

// Backend looks up a backend by name.
func (r *Registry) Backend(name string) (*RegisteredBackend, error) {
	rb, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, r.Names())
	}
	return rb, nil
}

// Names returns the registered backend names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
