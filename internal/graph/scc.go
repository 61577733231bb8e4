package graph

// frame is one level of the explicit depth-first search stack.
type frame struct {
	node int
	// next is the index of the next successor of node to visit.
	next int
}

// Components returns the strongly connected components of the graph using
// Tarjan's algorithm with an explicit stack, so depth is bounded by memory
// rather than by the goroutine stack.
//
// Components are returned in reverse topological order of the condensation:
// a component is emitted only after every component it has an edge into.
// Roots are visited in ascending node order and successors in insertion
// order, so the result is deterministic.
//
// The first member of a multi-node component is the node at which the
// search closed the component; the remaining members follow in stack order.
func (g *Graph) Components() [][]int {
	n := len(g.succ)

	// index[v] is the 1-based discovery index of v, 0 while unvisited.
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)

	var (
		stack      []int
		calls      []frame
		components [][]int
		counter    int
	)

	visit := func(v int) {
		counter++
		index[v] = counter
		low[v] = counter
		stack = append(stack, v)
		onStack[v] = true
		calls = append(calls, frame{node: v})
	}

	for root := 0; root < n; root++ {
		if index[root] != 0 {
			continue
		}
		visit(root)

		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			v := top.node

			if top.next < len(g.succ[v]) {
				w := g.succ[v][top.next]
				top.next++
				if index[w] == 0 {
					visit(w)
				} else if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
				continue
			}

			// All successors of v are done.
			if low[v] == index[v] {
				var component []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					component = append(component, w)
					if w == v {
						break
					}
				}
				components = append(components, component)
			}

			calls = calls[:len(calls)-1]
			if len(calls) > 0 {
				parent := calls[len(calls)-1].node
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	return components
}
