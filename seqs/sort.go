package seqs

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// Sort yields the elements of seq in ascending order. The input is
// materialized when the first element is pulled.
func Sort[T types.Ordered](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := slices.Collect(seq)
		slices.Sort(s)
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// SortWith sorts with a caller-supplied three-way comparator. The sort is
// stable: elements the comparator considers equal keep their input order.
func SortWith[T any](seq iter.Seq[T], compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := slices.Collect(seq)
		slices.SortStableFunc(s, compare)
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// SortBy sorts on a key extracted from each element. The extractor runs
// exactly once per element; keys are computed up front and cached for the
// duration of the sort. Ties keep their input order.
func SortBy[T any, K types.Ordered](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	type keyed struct {
		k K
		v T
	}
	return func(yield func(T) bool) {
		s := slices.Collect(Map(seq, func(v T) keyed {
			return keyed{k: key(v), v: v}
		}))
		slices.SortStableFunc(s, func(a, b keyed) int {
			return cmp.Compare(a.k, b.k)
		})
		for _, kv := range s {
			if !yield(kv.v) {
				return
			}
		}
	}
}
