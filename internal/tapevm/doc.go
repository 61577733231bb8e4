// Package tapevm executes tape-machine programs such as those produced by
// the tape backend.
//
// Cells hold unbounded ints rather than bytes, so any set of distinct
// values can be tracked through a program. Bytes other than the six
// tokens `< > + - [ ]` are ignored.
package tapevm
