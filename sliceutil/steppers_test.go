package sliceutil_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"seqkit/sliceutil"
)

func TestNextCombination(t *testing.T) {
	t.Run("EnumeratesAllTuples", func(t *testing.T) {
		idx := []int{0, 1}
		got := [][]int{slices.Clone(idx)}
		for sliceutil.NextCombination(idx, 4) {
			got = append(got, slices.Clone(idx))
		}
		want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
		if !slices.EqualFunc(got, want, slices.Equal) {
			t.Errorf("combination order mismatch: got %v", got)
		}
	})

	t.Run("FinalTupleUnchanged", func(t *testing.T) {
		idx := []int{2, 3}
		if sliceutil.NextCombination(idx, 4) {
			t.Error("expected exhaustion")
		}
		if !slices.Equal(idx, []int{2, 3}) {
			t.Errorf("final tuple was modified: %v", idx)
		}
	})
}

func TestNextPermutation(t *testing.T) {
	idx := []int{0, 1, 2}
	count := 1
	for sliceutil.NextPermutation(idx) {
		count++
	}
	if count != 6 {
		t.Errorf("expected 6 permutations, got %d", count)
	}
	// ends on the descending permutation
	if !slices.Equal(idx, []int{2, 1, 0}) {
		t.Errorf("unexpected final permutation: %v", idx)
	}
}

func TestPartialShuffle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	t.Run("SampleIsSubset", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5, 6}
		sample := sliceutil.PartialShuffle(slices.Clone(s), 3, rng.IntN)
		if len(sample) != 3 {
			t.Fatalf("expected 3 elements, got %v", sample)
		}
		seen := map[int]bool{}
		for _, v := range sample {
			if !slices.Contains(s, v) {
				t.Errorf("sample element %d not in source", v)
			}
			if seen[v] {
				t.Errorf("element %d sampled twice", v)
			}
			seen[v] = true
		}
	})

	t.Run("ClampsToLength", func(t *testing.T) {
		sample := sliceutil.PartialShuffle([]int{1, 2}, 10, rng.IntN)
		if len(sample) != 2 {
			t.Errorf("expected clamp to 2, got %v", sample)
		}
	})
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 9))
	s := []int{1, 2, 3, 4, 5}
	got := sliceutil.Shuffle(slices.Clone(s), rng.IntN)
	slices.Sort(got)
	if !slices.Equal(got, s) {
		t.Errorf("shuffle lost elements: %v", got)
	}
}
