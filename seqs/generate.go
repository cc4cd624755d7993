package seqs

import "iter"

// Range yields start, start+step, ... up to but excluding end. A zero step
// yields nothing; a negative step counts down.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times. A non-positive count yields nothing; use
// Forever for the unbounded form.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Forever yields value endlessly.
func Forever[T any](value T) InfiniteSeq[T] {
	return func(yield func(T) bool) {
		for yield(value) {
		}
	}
}

// Iterate yields seed, f(seed), f(f(seed)), ... endlessly.
func Iterate[T any](seed T, f func(T) T) InfiniteSeq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Cycle replays seq from the start each time it is exhausted. The input must
// be restartable (a materialized sequence or a regenerating producer); a
// single-pass input makes Cycle terminate after its only pass. An empty
// input terminates immediately instead of spinning.
func Cycle[T any](seq iter.Seq[T]) InfiniteSeq[T] {
	return func(yield func(T) bool) {
		for {
			yielded := false
			for v := range seq {
				yielded = true
				if !yield(v) {
					return
				}
			}
			if !yielded {
				return
			}
		}
	}
}
