package graph

import (
	"fmt"
)

// Graph is a directed graph over the nodes 0..Len()-1 in which every node
// has at most one predecessor.
type Graph struct {
	// succ holds the outgoing edges of each node in insertion order.
	succ [][]int
	// pred holds the single predecessor of each node, or -1.
	pred []int
}

// New creates a graph with n isolated nodes.
func New(n int) *Graph {
	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}
	return &Graph{
		succ: make([][]int, n),
		pred: pred,
	}
}

// FromMapping builds the graph of a rearrangement: for every position i
// of mapping, an edge mapping[i] -> i. The graph has n nodes, which must
// cover every index of mapping and every value in it.
//
// A mapping that violates this is a programmer error and panics.
func FromMapping(n int, mapping []int) *Graph {
	g := New(n)
	for dst, src := range mapping {
		if err := g.AddEdge(src, dst); err != nil {
			panic(fmt.Errorf("graph: invalid mapping: %w", err))
		}
	}
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.succ)
}

// AddEdge creates a directed edge from `from` to `to`. An error is returned
// if either node does not exist or if `to` already has a predecessor.
// Self-loops are allowed.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || from >= len(g.succ) {
		return fmt.Errorf("source node not found: %d", from)
	}
	if to < 0 || to >= len(g.succ) {
		return fmt.Errorf("destination node not found: %d", to)
	}
	if p := g.pred[to]; p != -1 {
		return fmt.Errorf("node %d already fed by %d, cannot add edge from %d", to, p, from)
	}

	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = from
	return nil
}

// Successors returns the nodes that v flows into, in insertion order.
// The returned slice must not be modified.
func (g *Graph) Successors(v int) []int {
	return g.succ[v]
}

// Predecessor returns the node that flows into v, if any.
func (g *Graph) Predecessor(v int) (int, bool) {
	p := g.pred[v]
	return p, p != -1
}

// HasSelfLoop reports whether v flows into itself.
func (g *Graph) HasSelfLoop(v int) bool {
	return g.pred[v] == v
}
