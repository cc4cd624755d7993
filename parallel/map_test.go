package parallel_test

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/parallel"
	"seqkit/seqs"
)

func TestTryMap(t *testing.T) {
	t.Run("Ordered", func(t *testing.T) {
		in := seqs.Range(0, 100, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			return v * 2, nil
		}, parallel.WithWorkers(4), parallel.WithBatchSize(8), parallel.WithOrdered(true))

		var got []int
		for v, err := range mapped {
			require.NoError(t, err)
			got = append(got, v)
		}
		want := slices.Collect(seqs.Map(seqs.Range(0, 100, 1), func(v int) int { return v * 2 }))
		assert.Equal(t, want, got)
	})

	t.Run("UnorderedKeepsAllElements", func(t *testing.T) {
		in := seqs.Range(0, 100, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			return v, nil
		}, parallel.WithWorkers(4), parallel.WithBatchSize(3))

		var got []int
		for v, err := range mapped {
			require.NoError(t, err)
			got = append(got, v)
		}
		slices.Sort(got)
		assert.Equal(t, slices.Collect(seqs.Range(0, 100, 1)), got)
	})

	t.Run("TransformError", func(t *testing.T) {
		boom := errors.New("boom")
		in := seqs.Range(0, 10, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			if v == 5 {
				return 0, boom
			}
			return v, nil
		}, parallel.WithWorkers(2), parallel.WithOrdered(true))

		var gotErr error
		for _, err := range mapped {
			if err != nil {
				gotErr = err
			}
		}
		assert.ErrorIs(t, gotErr, boom)
	})

	t.Run("PanicBecomesError", func(t *testing.T) {
		in := seqs.Range(0, 4, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			if v == 2 {
				panic("bad element")
			}
			return v, nil
		}, parallel.WithWorkers(2))

		errCount := 0
		for _, err := range mapped {
			if err != nil {
				errCount++
				assert.Contains(t, err.Error(), "bad element")
			}
		}
		assert.Equal(t, 1, errCount)
	})

	t.Run("SerialFallback", func(t *testing.T) {
		in := seqs.Range(0, 5, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			return v + 1, nil
		}, parallel.WithWorkers(1))

		var got []int
		for v, err := range mapped {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("ConsumerStopsEarly", func(t *testing.T) {
		in := seqs.Range(0, 100000, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			return v, nil
		}, parallel.WithWorkers(4), parallel.WithBatchSize(16))

		count := 0
		for range mapped {
			count++
			if count == 10 {
				break
			}
		}
		// reaching here without deadlock is the point
		assert.Equal(t, 10, count)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		in := seqs.Range(0, 1000, 1)
		mapped := parallel.TryMap(in, func(v int) (int, error) {
			return v, nil
		}, parallel.WithContext(ctx), parallel.WithWorkers(4))

		count := 0
		for range mapped {
			count++
		}
		assert.Less(t, count, 1000)
	})
}

func TestMap(t *testing.T) {
	in := seqs.Range(0, 50, 1)
	got := slices.Collect(parallel.Map(in, func(v int) int {
		return v * v
	}, parallel.WithWorkers(4), parallel.WithOrdered(true)))

	want := slices.Collect(seqs.Map(seqs.Range(0, 50, 1), func(v int) int { return v * v }))
	assert.Equal(t, want, got)
}
