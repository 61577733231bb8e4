// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file parsing, expression evaluation and
// translating `word` blocks into the format-agnostic model.
//
// A word file looks like:
//
//	word "swap" {
//	  description = "exchange the top two items"
//	  effect      = "a b -- b a"
//	}
//
//	word "2swap" {
//	  inputs  = ["a", "b", "c", "d"]
//	  outputs = concat(slice(["a", "b", "c", "d"], 2, 4), ["a", "b"])
//	}
//
// inputs and outputs are expressions; a string is split on whitespace, a
// list or tuple must hold strings.
package hcl
