package tape

import (
	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/registry"
)

// Name is the registry name of this backend.
const Name = "tape"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the tape backend with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBackend(Name, &registry.RegisteredBackend{
		Description: "Brainfuck-compatible tape machine tokens",
		Executable:  true,
		New: func(opts backend.Options) backend.Backend[string] {
			if opts.Settle {
				return New(WithSettle())
			}
			return New()
		},
	})
}
