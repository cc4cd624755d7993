package seqs

import "iter"

// A Classification maps classifier-derived keys to the elements that
// produced them. Both the key order and the per-key element order follow
// first insertion.
type Classification[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// Classify consumes the whole sequence once, grouping elements by key(v).
func Classify[T any, K comparable](seq iter.Seq[T], key func(T) K) *Classification[K, T] {
	c := &Classification[K, T]{groups: make(map[K][]T)}
	for v := range seq {
		k := key(v)
		if _, ok := c.groups[k]; !ok {
			c.keys = append(c.keys, k)
		}
		c.groups[k] = append(c.groups[k], v)
	}
	return c
}

// Keys returns the distinct keys in first-seen order.
func (c *Classification[K, T]) Keys() []K {
	return c.keys
}

// Group returns the elements classified under k, in input order.
func (c *Classification[K, T]) Group(k K) []T {
	return c.groups[k]
}

// Len reports the number of distinct keys.
func (c *Classification[K, T]) Len() int {
	return len(c.keys)
}

// All iterates the groups in first-seen key order.
func (c *Classification[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range c.keys {
			if !yield(k, c.groups[k]) {
				return
			}
		}
	}
}
