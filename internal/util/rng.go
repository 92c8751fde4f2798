package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// MatchSeed derives the seed of the i-th match in a batch so that each
// match is reproducible on its own.
func MatchSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}

// IntBetween returns a value in [lo, hi].
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
