package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is used to decode a word file. Any other top-level block or
// attribute is reported as unsupported.
type fileRoot struct {
	Words []*wordBlock `hcl:"word,block"`
}

// wordBlock is the HCL schema of a `word` block.
type wordBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Effect      string         `hcl:"effect,optional"`
	Inputs      hcl.Expression `hcl:"inputs,optional"`
	Outputs     hcl.Expression `hcl:"outputs,optional"`
}
