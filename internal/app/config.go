package app

import (
	"errors"
	"fmt"
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "tape"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Diagram is compiled once when set or when DiagramGiven is true, so a
	// blank diagram given on the command line is still reported as an error.
	Diagram      string
	DiagramGiven bool
	// WordPaths are files or directories holding word libraries.
	WordPaths []string

	Backend     string
	Settle      bool
	Verify      bool
	WorkerCount int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if (cfg.Diagram != "" || cfg.DiagramGiven) && len(cfg.WordPaths) > 0 {
		return nil, errors.New("a diagram and word paths cannot be used together")
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("WorkerCount must not be negative, got %d", cfg.WorkerCount)
	}
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	return &cfg, nil
}
