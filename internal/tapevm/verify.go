package tapevm

import (
	"context"
	"fmt"

	"github.com/specialistvlad/autoperm/internal/diagram"
)

// MismatchError reports a cell that holds the wrong value after a
// verification run.
type MismatchError struct {
	Cell int
	Want int
	Got  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cell %d holds %d, want %d", e.Cell, e.Got, e.Want)
}

// base is the tape address of stack cell 0. The cell below it lets a
// settled program with no outputs park the cursor under the stack.
const base = 1

// Verify runs program with input k holding the value k+1 and the cursor at
// the top input, then checks that output i holds the value of input
// d.Mapping[i] and that every other cell is zero. Cells in errors are
// stack addresses; -1 is the cell below the stack.
func Verify(ctx context.Context, d diagram.Diagram, program string) error {
	cells := make([]int, base+max(d.Inputs, len(d.Mapping))+1)
	for k := 0; k < d.Inputs; k++ {
		cells[base+k] = k + 1
	}

	m := New(cells, base+d.Inputs-1)
	if err := m.Run(ctx, program); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	for i, src := range d.Mapping {
		if got := m.Cell(base + i); got != src+1 {
			return &MismatchError{Cell: i, Want: src + 1, Got: got}
		}
	}
	for addr := range m.cells {
		i := addr - base
		if i >= 0 && i < len(d.Mapping) {
			continue
		}
		if got := m.cells[addr]; got != 0 {
			return &MismatchError{Cell: i, Want: 0, Got: got}
		}
	}
	return nil
}
