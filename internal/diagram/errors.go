// internal/diagram/errors.go
package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned when the notation has no `--`.
	ErrMissingSeparator = errors.New("missing --")
	// ErrExtraSeparator is returned when the notation has more than one `--`.
	ErrExtraSeparator = errors.New("additional --")
)

// DefinedTwiceError is returned when an input symbol is declared twice.
// First and Second are the input positions of both occurrences.
type DefinedTwiceError struct {
	Symbol string
	First  int
	Second int
}

func (e *DefinedTwiceError) Error() string {
	return fmt.Sprintf("symbol %s defined twice at %d and %d", e.Symbol, e.First, e.Second)
}

// NotDefinedError is returned when an output symbol names no input.
// Position is the output position of the offending symbol.
type NotDefinedError struct {
	Symbol   string
	Position int
}

func (e *NotDefinedError) Error() string {
	return fmt.Sprintf("symbol %s not defined at %d", e.Symbol, e.Position)
}
