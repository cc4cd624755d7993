package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"
)

// FlatMap maps each element to a sequence and splices the results into one
// flat output sequence.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// TryFlatMap is FlatMap over error-carrying inner sequences.
func TryFlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for s := range source {
			for t, err := range f(s) {
				if !yield(t, err) {
					return
				}
			}
		}
	}
}

// Flatten splices one level of nesting.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(seq, func(inner iter.Seq[T]) iter.Seq[T] { return inner })
}

// FlattenSlices splices a sequence of slices into a sequence of elements.
func FlattenSlices[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for chunk := range seq {
			for _, v := range chunk {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// An Item marks a nested container as a single opaque value: FlattenDeep
// yields the wrapped value as-is instead of splicing it. Whether a container
// flattens is carried on the container, never inferred from context.
type Item[T any] struct {
	Value T
}

// Itemized wraps v so FlattenDeep will not splice it.
func Itemized[T any](v T) Item[T] {
	return Item[T]{Value: v}
}

// FlattenDeep recursively splices nested sequences and slices of any until
// only scalars and Itemized containers remain. An Item unwraps to its value
// and is not descended into.
func FlattenDeep(seq iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		flattenInto(seq, yield)
	}
}

func flattenInto(seq iter.Seq[any], yield func(any) bool) bool {
	for v := range seq {
		switch e := v.(type) {
		case Item[any]:
			if !yield(e.Value) {
				return false
			}
		case iter.Seq[any]:
			if !flattenInto(e, yield) {
				return false
			}
		case []any:
			if !flattenInto(sliceSeq(e), yield) {
				return false
			}
		default:
			if !yield(v) {
				return false
			}
		}
	}
	return true
}

func sliceSeq[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat yields the sequences one after another.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Zip pairs two sequences element by element, stopping at the shorter one.
func Zip[A, B any](seqA iter.Seq[A], seqB iter.Seq[B]) iter.Seq[types.Pair[A, B]] {
	return func(yield func(types.Pair[A, B]) bool) {
		nextB, stopB := iter.Pull(seqB)
		defer stopB()

		for a := range seqA {
			b, ok := nextB()
			if !ok {
				return
			}
			if !yield(types.Pair[A, B]{Left: a, Right: b}) {
				return
			}
		}
	}
}

// ZipAll pairs any number of same-typed sequences into rows, one element
// pulled from each input per step, stopping when any input runs out.
// Zero inputs yields the empty sequence.
func ZipAll[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// RoundRobin interleaves the sequences, pulling one element from each live
// input per cycle. Exhausted inputs drop out of the rotation; the output
// runs until every input is drained, so no prefix exhaustion stops it.
func RoundRobin[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		live := make([]func() (T, bool), 0, len(seqs))
		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			live = append(live, next)
		}
		for len(live) > 0 {
			kept := live[:0]
			for _, next := range live {
				v, ok := next()
				if !ok {
					continue
				}
				if !yield(v) {
					return
				}
				kept = append(kept, next)
			}
			live = kept
		}
	}
}

// Enumerate adds zero-based positions to a sequence. Positions count from the
// start of the sequence regardless of how much of it the consumer takes.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Pairs is Enumerate materialized into Pair values, for consumers that want
// position and value as a single element.
func Pairs[T any](seq iter.Seq[T]) iter.Seq[types.Pair[int, T]] {
	return func(yield func(types.Pair[int, T]) bool) {
		index := 0
		for v := range seq {
			if !yield(types.Pair[int, T]{Left: index, Right: v}) {
				return
			}
			index++
		}
	}
}
