package testutil

import (
	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/registry"
)

// NoOpModule registers a backend named "noop" whose programs are always
// empty. It is not executable, so it cannot be combined with verification.
type NoOpModule struct{}

// Register registers the "noop" backend.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterBackend("noop", &registry.RegisteredBackend{
		Description: "emits nothing",
		New: func(backend.Options) backend.Backend[string] {
			return noopBackend{}
		},
	})
}

type noopBackend struct{}

func (noopBackend) Start(int)      {}
func (noopBackend) Clear(int)      {}
func (noopBackend) Mov(int, []int) {}
func (noopBackend) Top(int)        {}
func (noopBackend) Finish() string { return "" }
