package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func letters() []string {
	return []string{"a", "b", "c", "d", "e", "f", "g", "h"}
}

func TestRotor(t *testing.T) {
	t.Run("PlainWindows", func(t *testing.T) {
		got := slices.Collect(seqs.Rotor(slices.Values(letters()), seqs.Exactly(3), false))
		assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, got)
	})

	t.Run("PartialKeepsTail", func(t *testing.T) {
		got := slices.Collect(seqs.Rotor(slices.Values(letters()), seqs.Exactly(3), true))
		assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g", "h"}}, got)
	})

	t.Run("PositiveGapSkips", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8})
		got := slices.Collect(seqs.Rotor(in, seqs.WindowSpec{{Size: 2, Gap: 1}}, false))
		// collect two, skip one, repeat
		assert.Equal(t, [][]int{{1, 2}, {4, 5}, {7, 8}}, got)
	})

	t.Run("NegativeGapOverlaps", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4, 5})
		got := slices.Collect(seqs.Rotor(in, seqs.WindowSpec{{Size: 3, Gap: -2}}, false))
		assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, got)
	})

	t.Run("CyclicSpec", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
		spec := seqs.WindowSpec{{Size: 1}, {Size: 2}}
		got := slices.Collect(seqs.Rotor(in, spec, true))
		assert.Equal(t, [][]int{{1}, {2, 3}, {4}, {5, 6}, {7}, {8, 9}}, got)
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3})
		assert.Empty(t, slices.Collect(seqs.Rotor(in, seqs.WindowSpec{}, true)))

		in = slices.Values([]int{1, 2, 3})
		assert.Empty(t, slices.Collect(seqs.Rotor(in, seqs.WindowSpec{{Size: 0}}, true)))

		// an overlap of the whole window can never advance
		in = slices.Values([]int{1, 2, 3})
		assert.Empty(t, slices.Collect(seqs.Rotor(in, seqs.WindowSpec{{Size: 2, Gap: -2}}, true)))
	})
}

func TestChunk(t *testing.T) {
	in := slices.Values([]int{1, 2, 3, 4, 5})
	got := slices.Collect(seqs.Chunk(in, 2))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

func TestSliding(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4, 5})
		got := slices.Collect(seqs.Sliding(in, 3, 1))
		assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, got)
	})

	t.Run("StepEqualsSize", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4})
		got := slices.Collect(seqs.Sliding(in, 2, 2))
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, got)
	})

	t.Run("GappedStep", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3, 4, 5, 6, 7})
		got := slices.Collect(seqs.Sliding(in, 2, 3))
		assert.Equal(t, [][]int{{1, 2}, {4, 5}}, got)
	})

	t.Run("InvalidStep", func(t *testing.T) {
		in := slices.Values([]int{1, 2, 3})
		assert.Empty(t, slices.Collect(seqs.Sliding(in, 2, 0)))
	})
}

func TestRotorWindowsAreIndependent(t *testing.T) {
	// overlapping windows must not share backing arrays
	in := slices.Values([]int{1, 2, 3, 4})
	var wins [][]int
	for w := range seqs.Rotor(in, seqs.WindowSpec{{Size: 2, Gap: -1}}, false) {
		wins = append(wins, w)
	}
	wins[0][1] = 99
	assert.Equal(t, []int{2, 3}, wins[1])
}
