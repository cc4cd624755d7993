package seqs

import (
	"iter"
	"slices"
)

// Any reports whether some element satisfies the predicate. It stops pulling
// at the first hit.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate. It stops pulling
// at the first miss.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count drains the sequence and reports how many elements it yielded.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Reverse yields the elements of seq in reverse order. The input is
// materialized when the first element is pulled.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := slices.Collect(seq)
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Tail yields the last n elements of seq, in order. The whole input is
// consumed but only a ring of n elements is retained.
func Tail[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		ring := make([]T, n)
		total := 0
		for v := range seq {
			ring[total%n] = v
			total++
		}
		size := min(total, n)
		for i := 0; i < size; i++ {
			if !yield(ring[(total-size+i)%n]) {
				return
			}
		}
	}
}
