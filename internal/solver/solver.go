// Package solver compiles a stack effect diagram into a sequence of
// primitive cell operations using exactly one scratch cell.
package solver

import (
	"slices"

	"github.com/specialistvlad/autoperm/internal/diagram"
	"github.com/specialistvlad/autoperm/internal/graph"
	"github.com/specialistvlad/autoperm/internal/instr"
)

// ScratchCell returns the address of the one temporary cell the solution of
// d uses. It lies above every input and every output cell.
func ScratchCell(d diagram.Diagram) int {
	return max(d.Inputs, len(d.Mapping))
}

// Solve returns the instructions that apply d.
//
// Starting from cell k holding input k (k < d.Inputs) and every other cell
// at zero, executing the result leaves cell i holding input d.Mapping[i]
// for every output i, and every input cell that no output reads at zero.
// The sequence is framed by Start{d.Inputs-1} and Top{len(d.Mapping)-1}.
//
// d must satisfy the diagram invariant (every mapping element is a valid
// input index); Solve does not validate it.
func Solve(d diagram.Diagram) []instr.Instruction {
	s := &solution{
		inputs:  d.Inputs,
		scratch: ScratchCell(d),
		graph:   graph.FromMapping(ScratchCell(d), d.Mapping),
	}

	s.emit(instr.Start{Cell: d.Inputs - 1})
	for _, component := range s.graph.Components() {
		if len(component) == 1 {
			s.single(component[0])
		} else {
			s.cycle(component)
		}
	}
	s.emit(instr.Top{Cell: len(d.Mapping) - 1})

	return s.instrs
}

// solution accumulates the instructions for one Solve call.
type solution struct {
	inputs  int
	scratch int
	graph   *graph.Graph
	instrs  []instr.Instruction
}

func (s *solution) emit(in instr.Instruction) {
	s.instrs = append(s.instrs, in)
}

// readers returns the destinations v flows into, farthest address first.
func (s *solution) readers(v int) []int {
	to := slices.Clone(s.graph.Successors(v))
	slices.SortFunc(to, func(a, b int) int { return b - a })
	return to
}

// single handles a component of one node.
func (s *solution) single(v int) {
	to := s.readers(v)

	switch {
	case len(to) == 0:
		// Cells at or above the input count start at zero already.
		if v < s.inputs {
			s.emit(instr.Clear{Cell: v})
		}
	case !s.graph.HasSelfLoop(v):
		s.emit(instr.Mov{Cell: v, To: to})
	case len(to) == 1:
		// Only reader is the cell itself: already in place.
	default:
		// A move empties its source as it writes, so v cannot be one of its
		// own destinations. Go through the scratch cell.
		s.emit(instr.Mov{Cell: v, To: []int{s.scratch}})
		s.emit(instr.Mov{Cell: s.scratch, To: to})
	}
}

// cycle rotates a simple cycle through the scratch cell. The first member
// is parked in scratch; then each predecessor, walking against the edges,
// moves into the cell just vacated; finally scratch is distributed to the
// readers of the first member.
func (s *solution) cycle(component []int) {
	first := component[0]
	s.emit(instr.Mov{Cell: first, To: []int{s.scratch}})

	for v, _ := s.graph.Predecessor(first); v != first; v, _ = s.graph.Predecessor(v) {
		s.emit(instr.Mov{Cell: v, To: s.readers(v)})
	}

	s.emit(instr.Mov{Cell: s.scratch, To: s.readers(first)})
}
