package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext returns the context symbol list expressions are evaluated
// in. It exposes list helpers and no variables.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat":   stdlib.ConcatFunc,
			"reverse":  stdlib.ReverseListFunc,
			"split":    stdlib.SplitFunc,
			"slice":    stdlib.SliceFunc,
			"length":   stdlib.LengthFunc,
			"flatten":  stdlib.FlattenFunc,
			"distinct": stdlib.DistinctFunc,
		},
	}
}
