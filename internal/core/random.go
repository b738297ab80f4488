package core

import "math/rand"

// RandInt returns a uniformly distributed int in [min, max] (inclusive).
// A degenerate range returns min.
func RandInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// RandFloat returns a uniformly distributed float64 in [min, max).
// A degenerate range returns min.
func RandFloat(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandSign returns -1 or +1 with equal probability.
func RandSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
