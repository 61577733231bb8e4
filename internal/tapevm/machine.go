package tapevm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnbalanced is returned when a program's brackets do not match.
	ErrUnbalanced = errors.New("unbalanced brackets")
	// ErrPointerUnderflow is returned when the cursor moves below cell 0.
	ErrPointerUnderflow = errors.New("cursor moved below cell 0")
	// ErrStepLimit is returned when a program runs longer than allowed.
	ErrStepLimit = errors.New("step limit exceeded")
)

// DefaultStepLimit bounds the number of executed tokens.
const DefaultStepLimit = 10_000_000

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 4096

// Machine is a tape with a single cursor.
type Machine struct {
	cells     []int
	pointer   int
	steps     int
	stepLimit int
}

// Option configures a Machine.
type Option func(*Machine)

// WithStepLimit overrides DefaultStepLimit. A limit of 0 disables it.
func WithStepLimit(n int) Option {
	return func(m *Machine) {
		m.stepLimit = n
	}
}

// New creates a machine whose tape starts with a copy of cells and whose
// cursor is at pointer.
func New(cells []int, pointer int, opts ...Option) *Machine {
	m := &Machine{
		cells:     append([]int(nil), cells...),
		pointer:   pointer,
		stepLimit: DefaultStepLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Cells returns a copy of the tape. It is at least as long as the
// initial tape and covers every cell the program touched.
func (m *Machine) Cells() []int {
	return append([]int(nil), m.cells...)
}

// Cell returns the value at addr; cells never touched read as zero.
func (m *Machine) Cell(addr int) int {
	if addr < 0 || addr >= len(m.cells) {
		return 0
	}
	return m.cells[addr]
}

// Pointer returns the cursor position.
func (m *Machine) Pointer() int {
	return m.pointer
}

// Steps returns the number of tokens executed so far.
func (m *Machine) Steps() int {
	return m.steps
}

// Run executes program. The machine keeps its state afterwards, so a
// second Run continues from where the first stopped.
func (m *Machine) Run(ctx context.Context, program string) error {
	code, jumps, err := compile(program)
	if err != nil {
		return err
	}

	for pc := 0; pc < len(code); pc++ {
		m.steps++
		if m.stepLimit > 0 && m.steps > m.stepLimit {
			return fmt.Errorf("%w after %d steps", ErrStepLimit, m.stepLimit)
		}
		if m.steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		switch code[pc] {
		case '>':
			m.pointer++
		case '<':
			m.pointer--
			if m.pointer < 0 {
				return fmt.Errorf("%w at token %d", ErrPointerUnderflow, pc)
			}
		case '+':
			m.grow()
			m.cells[m.pointer]++
		case '-':
			m.grow()
			m.cells[m.pointer]--
		case '[':
			if m.Cell(m.pointer) == 0 {
				pc = jumps[pc]
			}
		case ']':
			if m.Cell(m.pointer) != 0 {
				pc = jumps[pc]
			}
		}
	}
	return nil
}

// grow extends the tape so the cursor addresses a real cell.
func (m *Machine) grow() {
	if m.pointer < 0 {
		return
	}
	for m.pointer >= len(m.cells) {
		m.cells = append(m.cells, 0)
	}
}

// compile strips non-token bytes and pairs up brackets.
func compile(program string) ([]byte, []int, error) {
	code := make([]byte, 0, len(program))
	for i := 0; i < len(program); i++ {
		switch c := program[i]; c {
		case '<', '>', '+', '-', '[', ']':
			code = append(code, c)
		}
	}

	jumps := make([]int, len(code))
	var open []int
	for pc, c := range code {
		switch c {
		case '[':
			open = append(open, pc)
		case ']':
			if len(open) == 0 {
				return nil, nil, fmt.Errorf("%w: unexpected ] at token %d", ErrUnbalanced, pc)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[start] = pc
			jumps[pc] = start
		}
	}
	if len(open) > 0 {
		return nil, nil, fmt.Errorf("%w: unclosed [ at token %d", ErrUnbalanced, open[len(open)-1])
	}
	return code, jumps, nil
}
