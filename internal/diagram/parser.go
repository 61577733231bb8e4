// internal/diagram/parser.go
package diagram

import (
	"strings"
)

// separator divides input symbols from output symbols.
const separator = "--"

// Parse turns the textual notation into a Diagram. The separator is matched
// as a literal substring, so `a b--b a` is accepted as well.
func Parse(notation string) (Diagram, error) {
	parts := strings.Split(notation, separator)
	switch {
	case len(parts) < 2:
		return Diagram{}, ErrMissingSeparator
	case len(parts) > 2:
		return Diagram{}, ErrExtraSeparator
	}

	positions := make(map[string]int)
	for i, symbol := range strings.Fields(parts[0]) {
		if first, ok := positions[symbol]; ok {
			return Diagram{}, &DefinedTwiceError{Symbol: symbol, First: first, Second: i}
		}
		positions[symbol] = i
	}

	outputs := strings.Fields(parts[1])
	mapping := make([]int, 0, len(outputs))
	for i, symbol := range outputs {
		pos, ok := positions[symbol]
		if !ok {
			return Diagram{}, &NotDefinedError{Symbol: symbol, Position: i}
		}
		mapping = append(mapping, pos)
	}

	return Diagram{Inputs: len(positions), Mapping: mapping}, nil
}

// Notation builds the textual form from symbol lists. It performs no
// validation; pass the result to Parse.
func Notation(inputs, outputs []string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(inputs, " "))
	if len(inputs) > 0 {
		sb.WriteRune(' ')
	}
	sb.WriteString(separator)
	if len(outputs) > 0 {
		sb.WriteRune(' ')
	}
	sb.WriteString(strings.Join(outputs, " "))
	return sb.String()
}
