package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/specialistvlad/autoperm/internal/diagram"
)

// Model is the unified, format-agnostic representation of a word library.
type Model struct {
	// Words are kept in declaration order across all loaded files.
	Words []*Word
}

// Word is one named stack effect.
//
// A word either carries its diagram as Effect notation ("a b -- b a") or
// as separate Inputs and Outputs symbol lists. Effect wins when both are
// set.
type Word struct {
	Name        string
	Description string
	Effect      string
	Inputs      []string
	Outputs     []string
	// Source is the file the word was declared in.
	Source string
}

// Notation returns the word's diagram in stack effect notation.
func (w *Word) Notation() string {
	if w.Effect != "" {
		return w.Effect
	}
	return diagram.Notation(w.Inputs, w.Outputs)
}

// Lookup returns the word with the given name.
func (m *Model) Lookup(name string) (*Word, bool) {
	for _, w := range m.Words {
		if w.Name == name {
			return w, true
		}
	}
	return nil, false
}

// ValidateSymbols checks that every element of a symbol list is one
// notation token: non-empty, free of whitespace and not containing the
// `--` separator.
func ValidateSymbols(symbols []string) error {
	for i, s := range symbols {
		switch {
		case s == "":
			return fmt.Errorf("symbol %d is empty", i)
		case strings.Contains(s, "--"):
			return fmt.Errorf("symbol %q at %d contains --", s, i)
		case strings.IndexFunc(s, unicode.IsSpace) >= 0:
			return fmt.Errorf("symbol %q at %d contains whitespace", s, i)
		}
	}
	return nil
}
