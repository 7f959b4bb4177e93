package sketchbook

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Rand is the uniform random source the update pass draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Noise is a smooth 2D pseudo-random field sampled by position.
type Noise interface {
	// Eval2 returns a value in [0, 1]. Nearby inputs give nearby outputs.
	Eval2(x, y float64) float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewNoise returns an OpenSimplex field normalized to [0, 1].
func NewNoise(seed uint64) Noise {
	return opensimplex.NewNormalized(int64(seed))
}

// RandomIn returns a value in [lo, hi).
func RandomIn(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
