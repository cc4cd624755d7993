package seqs

import "iter"

// An InfiniteSeq is a sequence declared to never terminate on its own. It is
// a distinct type from iter.Seq so that operations needing a finite end
// cannot be handed one by accident; bounded adapters below are the way back
// into the finite world.
type InfiniteSeq[T any] func(yield func(T) bool)

// Infinite declares a sequence endless. Useful for producers built outside
// this package (a channel drain, a polling loop) that should be kept away
// from finite-only operations.
func Infinite[T any](seq iter.Seq[T]) InfiniteSeq[T] {
	return InfiniteSeq[T](seq)
}

// Seq unwraps to a plain iter.Seq. The caller takes over the obligation to
// bound consumption: draining the result never finishes.
func (s InfiniteSeq[T]) Seq() iter.Seq[T] {
	return iter.Seq[T](s)
}

// Take bounds the stream to its first n elements.
func (s InfiniteSeq[T]) Take(n int) iter.Seq[T] {
	return Take(s.Seq(), n)
}

// TakeWhile bounds the stream to its longest prefix satisfying the predicate.
// If no element ever fails the predicate, consumption never finishes.
func (s InfiniteSeq[T]) TakeWhile(predicate func(T) bool) iter.Seq[T] {
	return TakeWhile(s.Seq(), predicate)
}

// Skip drops the first n elements. The result is still endless.
func (s InfiniteSeq[T]) Skip(n int) InfiniteSeq[T] {
	return InfiniteSeq[T](Skip(s.Seq(), n))
}

// Tail cannot find the end of an endless stream; it always returns
// ErrInfinite.
func (s InfiniteSeq[T]) Tail(int) (iter.Seq[T], error) {
	return nil, ErrInfinite
}

// Last cannot find the end of an endless stream; it always returns
// ErrInfinite.
func (s InfiniteSeq[T]) Last() (T, error) {
	var zero T
	return zero, ErrInfinite
}

// Reverse would need the final element first; it always returns ErrInfinite.
func (s InfiniteSeq[T]) Reverse() (iter.Seq[T], error) {
	return nil, ErrInfinite
}
