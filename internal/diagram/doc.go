// internal/diagram/doc.go

/*
Package diagram provides the stack effect diagram: the declarative
description of a stack rearrangement that the solver compiles.

The textual notation is a line of the form

	a b c -- c a b

where the symbols before `--` name the inputs (bottom of the stack first)
and the symbols after it name the outputs. Outputs may repeat an input
(fan-out), omit one (drop), or reorder them arbitrarily.

All validation happens here. A Diagram returned by Parse always satisfies
the solver's precondition: every mapping element is a valid input index.
*/
package diagram
