package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every file of its format found under paths and translates
	// the words into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// DuplicateWordError is returned when two declarations share a name.
type DuplicateWordError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("word %q declared in %s and again in %s", e.Name, e.First, e.Second)
}

// Merge appends the words of other to m, rejecting duplicate names.
func (m *Model) Merge(other *Model) error {
	for _, w := range other.Words {
		if prev, ok := m.Lookup(w.Name); ok {
			return &DuplicateWordError{Name: w.Name, First: prev.Source, Second: w.Source}
		}
		m.Words = append(m.Words, w)
	}
	return nil
}

type chain []Loader

// Chain returns a Loader that runs every loader over the same paths and
// merges their models in order.
func Chain(loaders ...Loader) Loader {
	return chain(loaders)
}

func (c chain) Load(ctx context.Context, paths ...string) (*Model, error) {
	model := &Model{}
	for _, l := range c {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m); err != nil {
			return nil, err
		}
	}
	return model, nil
}
