package seqs

import "errors"

// Structural misuse errors. Not-found conditions are never reported through
// these; they surface as a false ok result instead.
var (
	// ErrEmptyReduce is returned by ReduceOp when the input is empty and the
	// operator carries no identity element.
	ErrEmptyReduce = errors.New("seqs: reduce over empty sequence without identity")

	// ErrInfinite is returned by operations that would need to find the end
	// of a provably endless sequence.
	ErrInfinite = errors.New("seqs: operation requires a finite sequence")
)
