package parallel

import (
	"context"
	"iter"
	"sync"
)

// Prefetch runs the producer up to n elements ahead of the consumer. The
// result is still a single-cursor lazy sequence; the lookahead buffer is the
// only speculation. Cancelling ctx or abandoning the sequence stops the
// producer goroutine.
func Prefetch[T any](ctx context.Context, seq iter.Seq[T], n int) iter.Seq[T] {
	if n < 1 {
		n = 1
	}
	return func(yield func(T) bool) {
		pctx, cancel := context.WithCancel(ctx)

		ch := make(chan T, n)
		var producer sync.WaitGroup
		producer.Add(1)
		go func() {
			defer producer.Done()
			defer close(ch)
			for v := range seq {
				select {
				case ch <- v:
				case <-pctx.Done():
					return
				}
			}
		}()

		// cancel must fire before the wait or a blocked producer would
		// never exit.
		defer producer.Wait()
		defer cancel()

		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			case <-pctx.Done():
				return
			}
		}
	}
}
