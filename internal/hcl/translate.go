package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
)

// translateWord converts the HCL-specific word schema into the agnostic model.
func (l *Loader) translateWord(ctx context.Context, b *wordBlock, evalCtx *hcl.EvalContext) (*config.Word, error) {
	logger := ctxlog.FromContext(ctx).With("word", b.Name)

	w := &config.Word{
		Name:        b.Name,
		Description: b.Description,
		Effect:      b.Effect,
	}

	hasSymbols := isExprDefined(b.Inputs) || isExprDefined(b.Outputs)
	switch {
	case w.Effect != "" && hasSymbols:
		return nil, fmt.Errorf("word %q: effect cannot be combined with inputs or outputs", b.Name)
	case w.Effect != "":
		logger.Debug("Word declared with effect notation.")
		return w, nil
	}

	var err error
	if isExprDefined(b.Inputs) {
		if w.Inputs, err = decodeSymbols(ctx, b.Inputs, evalCtx); err != nil {
			return nil, fmt.Errorf("word %q, inputs: %w", b.Name, err)
		}
	}
	if isExprDefined(b.Outputs) {
		if w.Outputs, err = decodeSymbols(ctx, b.Outputs, evalCtx); err != nil {
			return nil, fmt.Errorf("word %q, outputs: %w", b.Name, err)
		}
	}

	logger.Debug("Word declared with symbol lists.", "inputs", len(w.Inputs), "outputs", len(w.Outputs))
	return w, nil
}
