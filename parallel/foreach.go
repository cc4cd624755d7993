package parallel

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// ForEach drains seq through handle on a bounded group of goroutines. The
// first handler error cancels the group's context and stops feeding; that
// error is returned after in-flight handlers finish.
func ForEach[T any](ctx context.Context, seq iter.Seq[T], handle func(context.Context, T) error, opts ...Option) error {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for v := range seq {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return handle(ctx, v)
		})
	}
	return g.Wait()
}
