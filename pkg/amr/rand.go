package amr

import (
	"math"
	"math/rand"
)

// DefaultSeed makes every pipeline stage reproducible unless the caller
// explicitly asks for run-to-run variation.
const DefaultSeed int64 = 1

// newDefaultRand is used whenever a component is constructed without an
// explicit random source.
func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(DefaultSeed))
}

// uniform draws from [lo, hi) and rounds to two decimals, matching the
// precision confidence scores are reported with.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return math.Round((lo+rng.Float64()*(hi-lo))*100) / 100
}

// intBetween draws an integer from [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
