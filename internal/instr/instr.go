// Package instr defines the primitive operations the solver emits and every
// backend consumes.
//
// The set of variants is closed: Instruction carries an unexported marker
// method, so only the four types below satisfy it. Code that switches on an
// Instruction must handle all four.
package instr

import (
	"strconv"
	"strings"
)

// Instruction is one of Clear, Mov, Start or Top.
type Instruction interface {
	isInstruction()
	String() string
}

// Clear zeroes a cell.
type Clear struct {
	Cell int
}

// Mov destructively copies the value of Cell into every cell listed in To,
// leaving Cell at zero. To is never empty and never contains Cell.
type Mov struct {
	Cell int
	To   []int
}

// Start declares the assumed initial cursor position. It has no data effect.
type Start struct {
	Cell int
}

// Top declares the intended final cursor position, the new top of the
// stack. It has no data effect.
type Top struct {
	Cell int
}

func (Clear) isInstruction() {}
func (Mov) isInstruction()   {}
func (Start) isInstruction() {}
func (Top) isInstruction()   {}

func (c Clear) String() string { return "clear " + strconv.Itoa(c.Cell) }
func (s Start) String() string { return "start " + strconv.Itoa(s.Cell) }
func (t Top) String() string   { return "top " + strconv.Itoa(t.Cell) }

func (m Mov) String() string {
	var sb strings.Builder
	sb.WriteString("mov ")
	sb.WriteString(strconv.Itoa(m.Cell))
	sb.WriteString(" ->")
	for _, to := range m.To {
		sb.WriteRune(' ')
		sb.WriteString(strconv.Itoa(to))
	}
	return sb.String()
}

// Counts reports how many data-moving instructions a sequence holds.
// Start and Top are bookkeeping only and are not counted.
func Counts(instrs []Instruction) (movs, clears int) {
	for _, in := range instrs {
		switch in.(type) {
		case Mov:
			movs++
		case Clear:
			clears++
		}
	}
	return movs, clears
}
