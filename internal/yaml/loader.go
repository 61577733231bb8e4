// Package yaml provides a YAML implementation of the config.Loader
// interface.
//
// A word file holds a single document:
//
//	words:
//	  - name: swap
//	    effect: a b -- b a
//	  - name: rot
//	    inputs: [a, b, c]
//	    outputs: b c a
//
// inputs and outputs accept a sequence or a whitespace separated string.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
	"github.com/specialistvlad/autoperm/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions the loader reads.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Words []wordEntry `yaml:"words"`
}

type wordEntry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Effect      string  `yaml:"effect,omitempty"`
	Inputs      symbols `yaml:"inputs,omitempty"`
	Outputs     symbols `yaml:"outputs,omitempty"`
}

// symbols decodes either a sequence of strings or one whitespace separated
// string.
type symbols []string

func (s *symbols) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: symbols must be a string or a list of strings", node.Line)
	}
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .yaml and .yml file under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := decodeKnownFields(data, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for i, entry := range root.Words {
			if entry.Name == "" {
				return nil, fmt.Errorf("in %s: word #%d has no name", file, i+1)
			}
			if entry.Effect != "" && (entry.Inputs != nil || entry.Outputs != nil) {
				return nil, fmt.Errorf("in %s: word %q: effect cannot be combined with inputs or outputs", file, entry.Name)
			}
			if err := config.ValidateSymbols(entry.Inputs); err != nil {
				return nil, fmt.Errorf("in %s: word %q, inputs: %w", file, entry.Name, err)
			}
			if err := config.ValidateSymbols(entry.Outputs); err != nil {
				return nil, fmt.Errorf("in %s: word %q, outputs: %w", file, entry.Name, err)
			}
			word := &config.Word{
				Name:        entry.Name,
				Description: entry.Description,
				Effect:      entry.Effect,
				Inputs:      entry.Inputs,
				Outputs:     entry.Outputs,
				Source:      file,
			}
			if err := model.Merge(&config.Model{Words: []*config.Word{word}}); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("YAML loading complete.", "words", len(model.Words))
	return model, nil
}

// decodeKnownFields decodes a single document, rejecting unknown keys.
func decodeKnownFields(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		// An empty file has no document.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return fmt.Errorf("multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed after first YAML document: %w", err)
	}
	return nil
}
