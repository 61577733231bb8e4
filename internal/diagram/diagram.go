// internal/diagram/diagram.go
package diagram

import (
	"strconv"
	"strings"
)

// Diagram is the validated, index-based form of a stack effect diagram.
type Diagram struct {
	// Inputs is the number of distinct input symbols.
	Inputs int
	// Mapping holds, for every output position, the index of the input it
	// is copied from. Every element is in [0, Inputs).
	Mapping []int
}

// Outputs returns the number of output positions.
func (d Diagram) Outputs() int {
	return len(d.Mapping)
}

// String renders the diagram with numeric symbols, e.g. `0 1 -- 1 0`.
func (d Diagram) String() string {
	var sb strings.Builder
	for i := 0; i < d.Inputs; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteRune(' ')
	}
	sb.WriteString("--")
	for _, src := range d.Mapping {
		sb.WriteRune(' ')
		sb.WriteString(strconv.Itoa(src))
	}
	return sb.String()
}
