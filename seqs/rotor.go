package seqs

import "iter"

// A Window describes one step of a rotor specification: collect Size
// elements, then skip Gap elements before the next window starts. A negative
// Gap re-uses the last -Gap elements, producing overlapping windows. Gap must
// stay above -Size or the window could never advance.
type Window struct {
	Size int
	Gap  int
}

// A WindowSpec is cycled over indefinitely while input remains, so a single
// entry gives uniform windows and multiple entries alternate.
type WindowSpec []Window

// Exactly builds a gapless WindowSpec from plain sizes.
func Exactly(sizes ...int) WindowSpec {
	spec := make(WindowSpec, len(sizes))
	for i, n := range sizes {
		spec[i] = Window{Size: n}
	}
	return spec
}

// Rotor partitions seq into consecutive, possibly overlapping windows per the
// cyclic specification. A final undersized window is yielded only when
// partial is set. An empty or invalid specification (a non-positive size, or
// a gap of -size or below) yields nothing.
func Rotor[T any](seq iter.Seq[T], spec WindowSpec, partial bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(spec) == 0 {
			return
		}
		for _, w := range spec {
			if w.Size <= 0 || w.Gap <= -w.Size {
				return
			}
		}

		next, stop := iter.Pull(seq)
		defer stop()

		var carry []T
		for i := 0; ; i++ {
			w := spec[i%len(spec)]
			win := make([]T, 0, w.Size)
			win = append(win, carry...)
			carry = nil

			for len(win) < w.Size {
				v, ok := next()
				if !ok {
					if partial && len(win) > 0 {
						yield(win)
					}
					return
				}
				win = append(win, v)
			}

			if !yield(win) {
				return
			}

			if w.Gap >= 0 {
				for skip := 0; skip < w.Gap; skip++ {
					if _, ok := next(); !ok {
						return
					}
				}
			} else {
				// The yielded window escapes to the consumer; the
				// overlapping suffix must be a fresh slice.
				carry = append([]T(nil), win[w.Size+w.Gap:]...)
			}
		}
	}
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return Rotor(seq, WindowSpec{{Size: size}}, true)
}

// Sliding creates a sliding window over the input sequence.
//
// Scenario 1 (step < size): overlapping windows, e.g. [1,2,3], [2,3,4] (size=3, step=1).
// Scenario 2 (step == size): equivalent to Chunk without the partial tail.
// Scenario 3 (step > size): gapped windows, some elements are skipped in between.
func Sliding[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	if step <= 0 {
		return func(func([]T) bool) {}
	}
	return Rotor(seq, WindowSpec{{Size: size, Gap: step - size}}, false)
}
