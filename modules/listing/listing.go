// Package listing renders instructions as a human-readable listing, one
// instruction per line. It is meant for inspecting solutions.
package listing

import (
	"strings"

	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/instr"
	"github.com/specialistvlad/autoperm/internal/registry"
)

// Name is the registry name of this backend.
const Name = "listing"

// Backend writes one line per instruction.
type Backend struct {
	lines []string
}

var _ backend.Backend[string] = (*Backend)(nil)

// New creates an empty listing.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) Start(cell int)         { b.add(instr.Start{Cell: cell}) }
func (b *Backend) Clear(cell int)         { b.add(instr.Clear{Cell: cell}) }
func (b *Backend) Mov(cell int, to []int) { b.add(instr.Mov{Cell: cell, To: to}) }
func (b *Backend) Top(cell int)           { b.add(instr.Top{Cell: cell}) }

func (b *Backend) add(in instr.Instruction) {
	b.lines = append(b.lines, in.String())
}

// Finish joins the lines with newlines, without a trailing newline.
func (b *Backend) Finish() string {
	return strings.Join(b.lines, "\n")
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the listing backend with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBackend(Name, &registry.RegisteredBackend{
		Description: "one instruction per line",
		New: func(backend.Options) backend.Backend[string] {
			return New()
		},
	})
}
