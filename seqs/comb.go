package seqs

import (
	"iter"
	"math/big"
	"slices"

	"seqkit/sliceutil"
)

// Combinations enumerates the k-element subsets of seq in lexicographic index
// order: every yielded slice holds elements whose source indexes strictly
// increase. k = 0 yields a single empty combination; k larger than the input
// yields nothing. The source is materialized once, when the first combination
// is pulled.
func Combinations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k < 0 {
			return
		}
		combinationsOf(slices.Collect(seq), k, yield)
	}
}

// CombinationsRange concatenates the enumerations for every subset size from
// lo through hi inclusive, in increasing size order.
func CombinationsRange[T any](seq iter.Seq[T], lo, hi int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src := slices.Collect(seq)
		if lo < 0 {
			lo = 0
		}
		for k := lo; k <= hi && k <= len(src); k++ {
			if !combinationsOf(src, k, yield) {
				return
			}
		}
	}
}

func combinationsOf[T any](src []T, k int, yield func([]T) bool) bool {
	n := len(src)
	if k == 0 {
		return yield([]T{})
	}
	if k > n {
		return true
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out := make([]T, k)
		for i, j := range idx {
			out[i] = src[j]
		}
		if !yield(out) {
			return false
		}
		if !sliceutil.NextCombination(idx, n) {
			return true
		}
	}
}

// Permutations enumerates every ordering of seq in lexicographic
// index-permutation order. Elements are positionally distinct: repeated
// values still produce repeated orderings, and an n-element input always
// yields exactly n! permutations. The source is materialized once.
func Permutations[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src := slices.Collect(seq)
		n := len(src)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		for {
			out := make([]T, n)
			for i, j := range idx {
				out[i] = src[j]
			}
			if !yield(out) {
				return
			}
			if !sliceutil.NextPermutation(idx) {
				return
			}
		}
	}
}

// CombinationsCount reports C(n, k) as an arbitrary-precision integer.
func CombinationsCount(n, k int) *big.Int {
	if k < 0 || k > n || n < 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// PermutationsCount reports n! as an arbitrary-precision integer.
func PermutationsCount(n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}
	return new(big.Int).MulRange(1, int64(n))
}
