package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/batch"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
	"github.com/specialistvlad/autoperm/internal/diagram"
	"github.com/specialistvlad/autoperm/internal/generator"
	"github.com/specialistvlad/autoperm/internal/solver"
	"github.com/specialistvlad/autoperm/internal/tapevm"
)

// Run executes the configured mode: the word library when one is loaded,
// otherwise the single diagram, otherwise an interactive session reading
// one diagram per line from in.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "backend", a.backend.Name)

	var err error
	switch {
	case len(a.config.WordPaths) > 0:
		err = a.runWords(ctx)
	case a.config.DiagramGiven || a.config.Diagram != "":
		err = a.runDiagram(ctx)
	default:
		err = a.runInteractive(ctx, in)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) newBackend() backend.Backend[string] {
	return a.backend.New(backend.Options{Settle: a.config.Settle})
}

// compile turns one notation into a program, verifying it when configured.
func (a *App) compile(ctx context.Context, notation string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	d, err := diagram.Parse(notation)
	if err != nil {
		return "", err
	}
	logger.Debug("Diagram parsed.", "diagram", d.String(), "scratch", solver.ScratchCell(d))

	instrs := solver.Solve(d)
	logger.Debug("Diagram solved.", "instructions", len(instrs))

	program := generator.Generate(instrs, a.newBackend())
	if a.config.Verify {
		if err := tapevm.Verify(ctx, d, program); err != nil {
			return "", fmt.Errorf("verification failed: %w", err)
		}
		logger.Debug("Program verified.")
	}
	return program, nil
}

func (a *App) runDiagram(ctx context.Context) error {
	program, err := a.compile(ctx, a.config.Diagram)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.outW, program)
	return err
}

// runInteractive compiles every non-blank line of in, printing each program
// followed by an empty line. The first error ends the session.
func (a *App) runInteractive(ctx context.Context, in io.Reader) error {
	a.logger.Debug("Interactive session started.")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		program, err := a.compile(ctx, line)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "%s\n\n", program); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runWords compiles the word library and prints `name: program` per word in
// declaration order.
func (a *App) runWords(ctx context.Context) error {
	if len(a.words.Words) == 0 {
		a.logger.Warn("No words found in the given paths.", "paths", a.config.WordPaths)
		return nil
	}

	compiler := &batch.Compiler{
		Workers:    a.config.WorkerCount,
		NewBackend: a.newBackend,
		Verify:     a.config.Verify,
	}
	results, err := compiler.Compile(ctx, a.words.Words)
	if err != nil {
		return err
	}

	for _, res := range results {
		if _, err := fmt.Fprintf(a.outW, "%s: %s\n", res.Word.Name, res.Program); err != nil {
			return err
		}
	}
	a.logger.Info("Word library compiled.", "words", len(results))
	return nil
}
