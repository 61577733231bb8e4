// Package backend defines the contract between the generator and the code
// emitters for concrete execution models.
package backend

// Backend receives the instructions of one solution, in order, and renders
// them into a program of type T.
//
// Clear and Mov must, once the produced program runs, zero the addressed
// cell and destructively redistribute its value respectively. Start and Top
// only declare cursor positions and carry no data effect.
//
// A Backend instance serves a single program; Finish is called once, last.
type Backend[T any] interface {
	// Start records the assumed initial cursor position.
	Start(cell int)
	// Clear zeroes cell.
	Clear(cell int)
	// Mov moves the value of cell into every cell in to, leaving cell at zero.
	Mov(cell int, to []int)
	// Top records the intended final cursor position.
	Top(cell int)
	// Finish returns the completed program.
	Finish() T
}

// Options are composition-time settings handed to backend factories.
// Backends ignore options that do not apply to them.
type Options struct {
	// Settle makes Top also move the cursor to the new top of the stack, so
	// the physical cursor matches the bookkeeping when programs are
	// concatenated.
	Settle bool
}
