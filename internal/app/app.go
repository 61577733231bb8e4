package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
	"github.com/specialistvlad/autoperm/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	backend  *registry.RegisteredBackend
	words    *config.Model
}

// NewApp is the constructor for the main application. Programs are written
// to outW and logs to logW. Each App has its own logger and registry; when
// no modules are given the built-in backends are registered.
//
// It panics if the registry fails validation, which indicates a programming
// error rather than bad input.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All backend modules registered.", "count", len(modules), "backends", reg.Names())

	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	rb, err := reg.Backend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if cfg.Verify && !rb.Executable {
		return nil, fmt.Errorf("output of backend %q cannot be verified", rb.Name)
	}

	words := &config.Model{}
	if len(cfg.WordPaths) > 0 {
		if loader == nil {
			return nil, fmt.Errorf("word paths given but no loader configured")
		}
		words, err = loader.Load(ctx, cfg.WordPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load words: %w", err)
		}
		logger.Debug("Word library loaded.", "words", len(words.Words))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		backend:  rb,
		words:    words,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Words returns the loaded word library.
func (a *App) Words() *config.Model {
	return a.words
}
