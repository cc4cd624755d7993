package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
// A nested sequence or slice element is a single opaque unit to Map; it is
// never spliced into the output. Use FlatMap or Flatten for that.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// MapN pulls n consecutive elements per call to transform, yielding one
// result per full group. n elements consumed means the output is roughly
// len/n long. A final group of fewer than n elements is dropped.
//
// This is the explicit form of arity-dependent mapping: the group size is a
// parameter, not a property of the callback.
func MapN[T, R any](seq iter.Seq[T], n int, transform func([]T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if n <= 0 {
			return
		}
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(transform(group)) {
					return
				}
				// transform may retain its argument
				group = make([]T, 0, n)
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}
