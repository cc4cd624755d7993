package seqs

import "iter"

// First returns the first element accepted by the matcher.
// A sequence with no match reports ok == false; that is not an error.
func First[T any](seq iter.Seq[T], m Matcher[T]) (T, bool) {
	for v := range seq {
		if m.Match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstIndexed is First with the element's zero-based offset from the start
// of the sequence.
func FirstIndexed[T any](seq iter.Seq[T], m Matcher[T]) (int, T, bool) {
	i := 0
	for v := range seq {
		if m.Match(v) {
			return i, v, true
		}
		i++
	}
	var zero T
	return -1, zero, false
}

// Last returns the final element accepted by the matcher. The whole sequence
// is consumed; only a single candidate is retained.
func Last[T any](seq iter.Seq[T], m Matcher[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		if m.Match(v) {
			last = v
			found = true
		}
	}
	return last, found
}

// LastIndexed is Last with the element's offset. The index is counted from
// the start of the sequence, exactly as FirstIndexed counts it; searching
// from the end does not renumber elements.
func LastIndexed[T any](seq iter.Seq[T], m Matcher[T]) (int, T, bool) {
	var (
		last  T
		at    = -1
		found bool
	)
	i := 0
	for v := range seq {
		if m.Match(v) {
			last, at, found = v, i, true
		}
		i++
	}
	return at, last, found
}

// Head returns the first element of the sequence.
func Head[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}
