// Package randutil builds the random sources used for predictions and
// simulated histories.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed, so a
// prediction or simulation can be replayed with --seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewRandom returns a generator seeded from the runtime's entropy source.
func NewRandom() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// FromSeed returns New(*seed) when a seed was given and NewRandom otherwise.
func FromSeed(seed *int64) *rand.Rand {
	if seed == nil {
		return NewRandom()
	}
	return New(*seed)
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
