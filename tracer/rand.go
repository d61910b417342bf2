package tracer

import (
	"math/rand/v2"
)

// Rand wraps a random number generator. It is meant to be created once per
// rendering goroutine and reused for the lifetime of that goroutine; it must
// never be shared across goroutines (§5: "RNGs must not be shared between
// threads").
type Rand struct {
	rng *rand.Rand
}

// NewRandomSource creates a Rand seeded from the process-wide crypto-seeded source.
func NewRandomSource() Rand {
	//nolint:gosec // not crypto use.
	return Rand{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewRandSeed creates a Rand deterministically seeded from seed and an index,
// so that per-worker streams are both deterministic (for a fixed seed) and
// distinct (for distinct indices).
func NewRandSeed(idx int, seed uint64) Rand {
	//nolint:gosec // not crypto use.
	return Rand{rng: rand.New(rand.NewPCG(uint64(idx)+1, seed))}
}

// Float64 returns a uniform random float64 in [0,1).
func (r Rand) Float64() float64 { return r.rng.Float64() }

// NormFloat64 returns a normally distributed float64 with mean 0, stddev 1.
func (r Rand) NormFloat64() float64 { return r.rng.NormFloat64() }

// IntN returns a uniform random int in [0,n).
func (r Rand) IntN(n int) int { return r.rng.IntN(n) }

// Bool returns a uniform random boolean.
func (r Rand) Bool() bool { return r.rng.IntN(2) == 0 }

// SampleDisc returns a uniform random point (x,y) within a disc of the given radius,
// via rejection sampling.
func (r Rand) SampleDisc(radius float64) (x, y float64) {
	for {
		x = 2*r.rng.Float64() - 1.0
		y = 2*r.rng.Float64() - 1.0
		if x*x+y*y <= 1 {
			return radius * x, radius * y
		}
	}
}
