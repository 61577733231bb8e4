// Package generator folds a solver's instructions into a backend.
package generator

import (
	"fmt"

	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/diagram"
	"github.com/specialistvlad/autoperm/internal/instr"
	"github.com/specialistvlad/autoperm/internal/solver"
)

// Generate sends every instruction to b in order and returns the finished
// program.
func Generate[T any](instrs []instr.Instruction, b backend.Backend[T]) T {
	for _, in := range instrs {
		switch in := in.(type) {
		case instr.Clear:
			b.Clear(in.Cell)
		case instr.Mov:
			b.Mov(in.Cell, in.To)
		case instr.Start:
			b.Start(in.Cell)
		case instr.Top:
			b.Top(in.Cell)
		default:
			// Dropping an instruction would silently change the program.
			panic(fmt.Sprintf("generator: unhandled instruction %T", in))
		}
	}
	return b.Finish()
}

// Compile parses notation, solves it and renders the result with b.
func Compile[T any](notation string, b backend.Backend[T]) (T, error) {
	d, err := diagram.Parse(notation)
	if err != nil {
		var zero T
		return zero, err
	}
	return Generate(solver.Solve(d), b), nil
}
