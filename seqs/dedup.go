package seqs

import "iter"

// Unique yields only the first occurrence of each element, preserving order.
// It maintains a set of seen elements, so memory usage is proportional to the
// number of distinct elements.
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueBy(seq, func(v T) T { return v })
}

// UniqueBy deduplicates on key(v) instead of the element itself, still
// yielding the original elements. The first element producing each key wins.
func UniqueBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueWith deduplicates with a caller-supplied equality test. Every kept
// element is compared against all previously kept elements, so this is
// quadratic; prefer UniqueBy when the equality can be expressed as a key.
func UniqueWith[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var kept []T
	next:
		for v := range seq {
			for _, k := range kept {
				if eq(k, v) {
					continue next
				}
			}
			kept = append(kept, v)
			if !yield(v) {
				return
			}
		}
	}
}

// Squish drops only adjacent duplicates, keeping a single lookback element.
// Non-adjacent duplicates survive: [a b b c c b a] squishes to [a b c b a].
func Squish[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return SquishBy(seq, func(v T) T { return v })
}

// SquishBy is Squish comparing key(v) instead of the element itself.
func SquishBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			prev  K
			first = true
		)
		for v := range seq {
			k := key(v)
			if !first && k == prev {
				continue
			}
			prev, first = k, false
			if !yield(v) {
				return
			}
		}
	}
}

// Repeated is the dual of Unique: an element is yielded from its second
// occurrence onward. [a b a a b] yields [a a b].
func Repeated[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return RepeatedBy(seq, func(v T) T { return v })
}

// RepeatedBy is Repeated comparing key(v) instead of the element itself.
func RepeatedBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				if !yield(v) {
					return
				}
				continue
			}
			seen[k] = struct{}{}
		}
	}
}

// RepeatedWith is Repeated with a caller-supplied equality test, with the
// same quadratic cost as UniqueWith.
func RepeatedWith[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range seq {
			dup := false
			for _, s := range seen {
				if eq(s, v) {
					dup = true
					break
				}
			}
			if dup {
				if !yield(v) {
					return
				}
				continue
			}
			seen = append(seen, v)
		}
	}
}
