// Package batch compiles a library of words concurrently.
package batch

import (
	"context"
	"fmt"

	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
	"github.com/specialistvlad/autoperm/internal/diagram"
	"github.com/specialistvlad/autoperm/internal/generator"
	"github.com/specialistvlad/autoperm/internal/instr"
	"github.com/specialistvlad/autoperm/internal/solver"
	"github.com/specialistvlad/autoperm/internal/tapevm"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when Compiler.Workers is not positive.
const DefaultWorkers = 4

// Result is the compiled program of one word.
type Result struct {
	Word    *config.Word
	Diagram diagram.Diagram
	Program string
	Moves   int
	Clears  int
}

// Compiler compiles words in parallel. Each word gets a fresh backend from
// NewBackend.
type Compiler struct {
	Workers    int
	NewBackend func() backend.Backend[string]
	// Verify runs every program on the tape interpreter. Only set it for
	// backends whose output the interpreter understands.
	Verify bool
}

// Compile compiles every word and returns the results in input order. The
// first failure cancels the remaining work and is returned.
func (c *Compiler) Compile(ctx context.Context, words []*config.Word) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	workers := c.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger.Debug("Batch compilation started.", "words", len(words), "workers", workers)

	results := make([]Result, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, w := range words {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.compileWord(gctx, w)
			if err != nil {
				return fmt.Errorf("word %q: %w", w.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Debug("Batch compilation failed.", "error", err)
		return nil, err
	}
	// A cancellation that arrived before any worker noticed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Batch compilation finished.", "words", len(results))
	return results, nil
}

func (c *Compiler) compileWord(ctx context.Context, w *config.Word) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("word", w.Name)

	d, err := diagram.Parse(w.Notation())
	if err != nil {
		return Result{}, err
	}

	instrs := solver.Solve(d)
	program := generator.Generate(instrs, c.NewBackend())
	moves, clears := instr.Counts(instrs)
	logger.Debug("Word compiled.", "moves", moves, "clears", clears, "scratch", solver.ScratchCell(d))

	if c.Verify {
		if err := tapevm.Verify(ctx, d, program); err != nil {
			return Result{}, fmt.Errorf("verification failed: %w", err)
		}
	}

	return Result{
		Word:    w,
		Diagram: d,
		Program: program,
		Moves:   moves,
		Clears:  clears,
	}, nil
}
