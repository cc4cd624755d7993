package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"
)

// Fold aggregates the elements of seq using the reducer function, starting from the initial value.
func Fold[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Reduce left-folds seq with f, seeding the accumulator with the first
// element. A single-element sequence reduces to that element untouched.
// An empty sequence reports ok == false.
func Reduce[T any](seq iter.Seq[T], f func(acc, next T) T) (T, bool) {
	var (
		acc   T
		first = true
	)
	for v := range seq {
		if first {
			acc, first = v, false
			continue
		}
		acc = f(acc, v)
	}
	return acc, !first
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, it is returned immediately.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		var err error
		acc, err = reducer(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// An Op is a binary operator with optional identity metadata. Which operators
// carry an identity is configured per operator, never guessed: the built-in
// constructors below set it where one exists, and NewOp leaves it unset until
// WithIdentity is called.
type Op[T any] struct {
	apply    func(a, b T) T
	identity *T
}

// NewOp wraps a binary function as an identity-less operator.
func NewOp[T any](apply func(a, b T) T) Op[T] {
	return Op[T]{apply: apply}
}

// WithIdentity returns a copy of the operator carrying id as its identity
// element, making ReduceOp total over empty input.
func (o Op[T]) WithIdentity(id T) Op[T] {
	o.identity = &id
	return o
}

// SumOp is addition with identity 0.
func SumOp[T types.Number]() Op[T] {
	return NewOp(func(a, b T) T { return a + b }).WithIdentity(0)
}

// ProdOp is multiplication with identity 1.
func ProdOp[T types.Number]() Op[T] {
	return NewOp(func(a, b T) T { return a * b }).WithIdentity(1)
}

// MinOp picks the smaller operand. It has no identity; reducing an empty
// sequence with it is an error.
func MinOp[T types.Ordered]() Op[T] {
	return NewOp(func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// MaxOp picks the larger operand. Like MinOp it carries no identity.
func MaxOp[T types.Ordered]() Op[T] {
	return NewOp(func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// AllOp is logical AND with identity true.
func AllOp() Op[bool] {
	return NewOp(func(a, b bool) bool { return a && b }).WithIdentity(true)
}

// AnyOp is logical OR with identity false.
func AnyOp() Op[bool] {
	return NewOp(func(a, b bool) bool { return a || b }).WithIdentity(false)
}

// ReduceOp left-folds seq with the operator. Empty input yields the
// operator's identity when it has one and ErrEmptyReduce when it does not.
// A single-element sequence short-circuits to that element.
func ReduceOp[T any](seq iter.Seq[T], op Op[T]) (T, error) {
	acc, ok := Reduce(seq, op.apply)
	if ok {
		return acc, nil
	}
	if op.identity != nil {
		return *op.identity, nil
	}
	var zero T
	return zero, ErrEmptyReduce
}

// Control steers ReduceCtl after each reducer call.
type Control int

const (
	// Next accepts the new accumulator and moves to the next element.
	Next Control = iota
	// Done accepts the new accumulator and stops the fold early.
	Done
	// Redo discards nothing: the reducer is called again with the new
	// accumulator and the same element.
	Redo
)

// ReduceCtl is a left fold whose reducer can break, continue or retry like a
// loop body: return Done to stop, Next to proceed (returning the accumulator
// unchanged skips the element), Redo to re-process the current element with
// the accumulator just produced.
func ReduceCtl[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, Control)) R {
	acc := initial
	for v := range seq {
		for {
			next, ctl := reducer(acc, v)
			acc = next
			if ctl == Redo {
				continue
			}
			if ctl == Done {
				return acc
			}
			break
		}
	}
	return acc
}

// Scan is similar to Fold, but it yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
