package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"
)

// Sum adds up the elements. An empty sequence sums to zero.
func Sum[T types.Number](seq iter.Seq[T]) T {
	return Fold(seq, T(0), func(acc, v T) T { return acc + v })
}

// Min returns the smallest element; ok is false for an empty sequence.
func Min[T types.Ordered](seq iter.Seq[T]) (T, bool) {
	return Reduce(seq, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest element; ok is false for an empty sequence.
func Max[T types.Ordered](seq iter.Seq[T]) (T, bool) {
	return Reduce(seq, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}
