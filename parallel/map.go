package parallel

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

type result[R any] struct {
	val R
	err error
}

type job[T any] struct {
	idx   int
	items []T
}

type batch[R any] struct {
	idx   int
	items []result[R]
}

// TryMap applies transform to each element of seq on a pool of workers,
// yielding (result, error) pairs. A panic in the transform is recovered and
// surfaced as that element's error. By default results are yielded as they
// complete; WithOrdered(true) restores input order.
//
// The input is pulled by a single feeder goroutine, so single-cursor
// sequences are safe to pass in.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error), opts ...Option) iter.Seq2[R, error] {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(R, error) bool) {
		if cfg.workers < 2 {
			runSerial(cfg.ctx, seq, transform, yield)
			return
		}

		ctx, cancel := context.WithCancel(cfg.ctx)
		defer cancel()

		e := &executor[T, R]{
			ctx:       ctx,
			transform: transform,
			jobs:      make(chan job[T], cfg.workers*2),
			results:   make(chan batch[R], cfg.workers*2),
		}

		var workers sync.WaitGroup
		for range cfg.workers {
			workers.Add(1)
			go func() {
				defer workers.Done()
				for j := range e.jobs {
					e.process(j)
				}
			}()
		}

		var feeder sync.WaitGroup
		feeder.Add(1)
		go func() {
			defer feeder.Done()
			e.feed(seq, cfg.batchSize)
		}()

		go func() {
			workers.Wait()
			close(e.results)
		}()

		// The feeder must be stopped before the closure returns, or it
		// would keep pulling a sequence the caller believes abandoned.
		defer func() {
			cancel()
			e.stopped.Store(true)
			for range e.results {
			}
			feeder.Wait()
		}()

		if cfg.ordered {
			e.collectOrdered(yield)
		} else {
			e.collect(yield)
		}
	}
}

// Map is TryMap for transforms that cannot fail. Errors produced by panics
// are dropped along with their elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R, opts ...Option) iter.Seq[R] {
	return func(yield func(R) bool) {
		mapped := TryMap(seq, func(v T) (R, error) {
			return transform(v), nil
		}, opts...)
		for v, err := range mapped {
			if err != nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

type executor[T, R any] struct {
	ctx       context.Context
	transform func(T) (R, error)
	jobs      chan job[T]
	results   chan batch[R]
	stopped   atomic.Bool
}

func (e *executor[T, R]) feed(seq iter.Seq[T], batchSize int) {
	defer close(e.jobs)
	idx := 0
	items := make([]T, 0, batchSize)
	for v := range seq {
		if e.stopped.Load() || e.ctx.Err() != nil {
			return
		}
		items = append(items, v)
		if len(items) == batchSize {
			if !e.send(idx, items) {
				return
			}
			idx++
			items = make([]T, 0, batchSize)
		}
	}
	if len(items) > 0 {
		e.send(idx, items)
	}
}

func (e *executor[T, R]) send(idx int, items []T) bool {
	select {
	case e.jobs <- job[T]{idx: idx, items: items}:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *executor[T, R]) process(j job[T]) {
	out := make([]result[R], len(j.items))
	for i, v := range j.items {
		if e.stopped.Load() {
			return
		}
		out[i] = e.apply(v)
	}
	select {
	case e.results <- batch[R]{idx: j.idx, items: out}:
	case <-e.ctx.Done():
	}
}

func (e *executor[T, R]) apply(v T) (res result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res.err = errors.Errorf("panic in transform: %v", p)
		}
	}()
	res.val, res.err = e.transform(v)
	return res
}

func (e *executor[T, R]) collect(yield func(R, error) bool) {
	for b := range e.results {
		if !e.yieldBatch(b, yield) {
			return
		}
	}
}

func (e *executor[T, R]) collectOrdered(yield func(R, error) bool) {
	pending := make(map[int]batch[R])
	next := 0
	for b := range e.results {
		pending[b.idx] = b
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if !e.yieldBatch(ready, yield) {
				return
			}
			next++
		}
	}
}

func (e *executor[T, R]) yieldBatch(b batch[R], yield func(R, error) bool) bool {
	for _, r := range b.items {
		if !yield(r.val, r.err) {
			e.stopped.Store(true)
			return false
		}
	}
	return true
}

func runSerial[T, R any](ctx context.Context, seq iter.Seq[T], transform func(T) (R, error), yield func(R, error) bool) {
	for v := range seq {
		if ctx.Err() != nil {
			return
		}
		res, err := transform(v)
		if !yield(res, err) {
			return
		}
	}
}
