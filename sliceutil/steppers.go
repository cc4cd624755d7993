// Package sliceutil provides eager, in-place slice helpers backing the lazy
// operations in package seqs: combinatorial index stepping and sampling
// shuffles. Everything here mutates its argument and allocates nothing.
package sliceutil

// NextCombination advances idx to the next strictly increasing index tuple
// drawn from [0, n), in lexicographic order. It reports false when idx
// already holds the final tuple; idx is then left unchanged.
func NextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

// NextPermutation rearranges idx into the next permutation in lexicographic
// order, reporting false once idx is the final (descending) permutation.
// This is the classic Narayana Pandita step.
func NextPermutation(idx []int) bool {
	n := len(idx)
	i := n - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
