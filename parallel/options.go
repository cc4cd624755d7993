package parallel

import (
	"context"
	"runtime"
)

const defaultBatchSize = 128

type config struct {
	ctx       context.Context
	workers   int
	batchSize int
	ordered   bool
}

func defaults() config {
	return config{
		ctx:       context.Background(),
		workers:   runtime.GOMAXPROCS(0),
		batchSize: defaultBatchSize,
	}
}

// An Option adjusts how work is distributed.
type Option func(*config)

// WithContext binds evaluation to ctx; cancellation stops feeding and
// discards undelivered results.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		cfg.ctx = ctx
	}
}

// WithWorkers sets the worker count. Below 2 the work runs serially on the
// consumer's goroutine.
func WithWorkers(count int) Option {
	return func(cfg *config) {
		if count < 1 {
			count = 1
		}
		cfg.workers = count
	}
}

// WithBatchSize sets how many elements are bundled into a single task to
// reduce channel overhead.
func WithBatchSize(size int) Option {
	return func(cfg *config) {
		if size < 1 {
			size = 1
		}
		cfg.batchSize = size
	}
}

// WithOrdered makes the output order match the input order, at the cost of
// buffering batches that finish early.
func WithOrdered(ordered bool) Option {
	return func(cfg *config) {
		cfg.ordered = ordered
	}
}
