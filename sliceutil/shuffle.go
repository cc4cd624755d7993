package sliceutil

// PartialShuffle performs the first n steps of a Fisher-Yates shuffle in
// place, so s[:n] becomes a uniform sample of s drawn without replacement.
// intn supplies random indexes, allowing a deterministic source in tests.
// n is clamped to len(s); the sampled prefix is returned.
func PartialShuffle[T any](s []T, n int, intn func(int) int) []T {
	if n > len(s) {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		j := i + intn(len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
	return s[:n]
}

// Shuffle rearranges the whole slice uniformly in place.
func Shuffle[T any](s []T, intn func(int) int) []T {
	return PartialShuffle(s, len(s), intn)
}
