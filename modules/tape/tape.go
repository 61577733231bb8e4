// Package tape is the reference backend: it renders instructions as a
// token stream for a tape machine with a single movable cursor.
//
// Tokens:
//
//	>  move the cursor one cell forward
//	<  move the cursor one cell back
//	+  increment the current cell
//	-  decrement the current cell
//	[  skip past the matching ] if the current cell is zero
//	]  jump back to the matching [ if the current cell is non-zero
//
// The output is a valid Brainfuck program.
package tape

import (
	"strings"

	"github.com/specialistvlad/autoperm/internal/backend"
)

// Backend emits tape-machine tokens. The zero value is not usable; use New.
type Backend struct {
	program strings.Builder
	cursor  int
	settle  bool
}

var _ backend.Backend[string] = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithSettle makes Top emit the cursor shift to the new top of the stack
// instead of only recording it.
func WithSettle() Option {
	return func(b *Backend) {
		b.settle = true
	}
}

// New creates a backend with the cursor at address 0.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// shiftTo moves the cursor to cell, emitting one token per step.
func (b *Backend) shiftTo(cell int) {
	switch diff := cell - b.cursor; {
	case diff > 0:
		b.program.WriteString(strings.Repeat(">", diff))
	case diff < 0:
		b.program.WriteString(strings.Repeat("<", -diff))
	}
	b.cursor = cell
}

// Start sets the cursor position without emitting anything.
func (b *Backend) Start(cell int) {
	b.cursor = cell
}

// Clear zeroes cell with a decrement loop.
func (b *Backend) Clear(cell int) {
	b.shiftTo(cell)
	b.program.WriteString("[-]")
}

// Mov emits a loop that, once per unit of cell, decrements cell and
// increments every destination in order. The cursor ends at cell.
func (b *Backend) Mov(cell int, to []int) {
	b.shiftTo(cell)
	b.program.WriteString("[-")
	for _, dst := range to {
		b.shiftTo(dst)
		b.program.WriteRune('+')
	}
	b.shiftTo(cell)
	b.program.WriteRune(']')
}

// Top records the new top of the stack. With WithSettle it also moves the
// cursor there.
func (b *Backend) Top(cell int) {
	if b.settle {
		b.shiftTo(cell)
		return
	}
	b.cursor = cell
}

// Finish returns the accumulated token stream.
func (b *Backend) Finish() string {
	return b.program.String()
}
