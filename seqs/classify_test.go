package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func TestClassify(t *testing.T) {
	in := slices.Values([]int{1, 4, 2, 7, 8, 3})
	c := seqs.Classify(in, func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	})

	t.Run("KeysInFirstSeenOrder", func(t *testing.T) {
		assert.Equal(t, []string{"odd", "even"}, c.Keys())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("GroupsKeepInputOrder", func(t *testing.T) {
		assert.Equal(t, []int{1, 7, 3}, c.Group("odd"))
		assert.Equal(t, []int{4, 2, 8}, c.Group("even"))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		assert.Nil(t, c.Group("prime"))
	})

	t.Run("All", func(t *testing.T) {
		var keys []string
		total := 0
		for k, group := range c.All() {
			keys = append(keys, k)
			total += len(group)
		}
		assert.Equal(t, []string{"odd", "even"}, keys)
		assert.Equal(t, 6, total)
	})
}

func TestClassifyEmpty(t *testing.T) {
	c := seqs.Classify(slices.Values([]int{}), func(v int) int { return v })
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Keys())
}
