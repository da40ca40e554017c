package core

import "math/rand"

// RandInt returns a pseudo-random integer in [lo, hi].
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// RandFloat returns a pseudo-random float64 in [lo, hi).
func RandFloat(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
