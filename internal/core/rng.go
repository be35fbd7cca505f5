package core

import "math/rand"

// RNG is the seeded random source of a simulation. Every random draw goes
// through one RNG so that a run is reproducible from its seed.
type RNG struct {
	rand *rand.Rand
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness
}

// Intn returns a random int in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rand.Intn(n)
}

// IntRange returns a random int in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// FloatRange returns a random float64 in [lo, hi).
func (r *RNG) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}
