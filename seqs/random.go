package seqs

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/go-softwarelab/common/pkg/to"

	"seqkit/sliceutil"
)

type randConfig struct {
	rng *rand.Rand
}

// A RandOption adjusts the random source used by the sampling operations.
// It is an alias so options apply through to.OptionsWithDefault directly.
type RandOption = func(*randConfig)

// WithRand injects a deterministic random source, mainly for tests.
func WithRand(rng *rand.Rand) RandOption {
	return func(cfg *randConfig) {
		cfg.rng = rng
	}
}

func (cfg randConfig) intN(n int) int {
	if cfg.rng != nil {
		return cfg.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Pick draws up to n elements without replacement, in random order. Asking
// for more elements than the sequence holds returns them all, shuffled. The
// source is materialized for indexed access when the first draw is pulled.
func Pick[T any](seq iter.Seq[T], n int, opts ...RandOption) iter.Seq[T] {
	return func(yield func(T) bool) {
		cfg := to.OptionsWithDefault(randConfig{}, opts...)
		src := slices.Collect(seq)
		for _, v := range sliceutil.PartialShuffle(src, n, cfg.intN) {
			if !yield(v) {
				return
			}
		}
	}
}

// PickAll shuffles the whole sequence.
func PickAll[T any](seq iter.Seq[T], opts ...RandOption) iter.Seq[T] {
	return func(yield func(T) bool) {
		cfg := to.OptionsWithDefault(randConfig{}, opts...)
		for _, v := range sliceutil.Shuffle(slices.Collect(seq), cfg.intN) {
			if !yield(v) {
				return
			}
		}
	}
}

// Roll draws n elements with replacement. An empty source yields nothing.
func Roll[T any](seq iter.Seq[T], n int, opts ...RandOption) iter.Seq[T] {
	return func(yield func(T) bool) {
		cfg := to.OptionsWithDefault(randConfig{}, opts...)
		src := slices.Collect(seq)
		if len(src) == 0 {
			return
		}
		for i := 0; i < n; i++ {
			if !yield(src[cfg.intN(len(src))]) {
				return
			}
		}
	}
}

// RollInf draws with replacement forever, as a provably endless stream.
// An empty source still terminates immediately.
func RollInf[T any](seq iter.Seq[T], opts ...RandOption) InfiniteSeq[T] {
	return func(yield func(T) bool) {
		cfg := to.OptionsWithDefault(randConfig{}, opts...)
		src := slices.Collect(seq)
		if len(src) == 0 {
			return
		}
		for {
			if !yield(src[cfg.intN(len(src))]) {
				return
			}
		}
	}
}
