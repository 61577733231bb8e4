package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined reports whether expr was written in the source. The decoder
// fills omitted optional expressions with zero-width placeholders, so a nil
// check is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// decodeSymbols evaluates a symbol list expression. A string is split on
// whitespace; anything else must convert to a list of strings whose
// elements are single symbols.
func decodeSymbols(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("symbol list must be known at load time")
	}

	if val.Type() == cty.String {
		symbols := strings.Fields(val.AsString())
		if err := config.ValidateSymbols(symbols); err != nil {
			return nil, err
		}
		return symbols, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to list of strings: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(listVal.Type()) {
		logger.Debug("Implicitly converted symbol list.", "from", val.Type().FriendlyName(), "to", listVal.Type().FriendlyName())
	}

	var symbols []string
	if err := gocty.FromCtyValue(listVal, &symbols); err != nil {
		return nil, err
	}
	if err := config.ValidateSymbols(symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}
