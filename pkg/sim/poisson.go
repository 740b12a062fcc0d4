package sim

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces non-negative goal counts for a given expected-goals
// rate. The simulator depends on this capability rather than a concrete
// sampler, so alternative distributions can be swapped in.
type Generator interface {
	Generate(rate float64) int
}

// GeneratorFactory builds a Generator from a seed. The simulator uses it
// to give each parallel worker a private randomness stream.
type GeneratorFactory func(seed int64) Generator

// PoissonGenerator draws goal counts from a Poisson distribution.
// It carries its own randomness source; the source state advances on
// every draw, which is what makes a seeded sequential run reproducible.
// Not safe for concurrent use.
type PoissonGenerator struct {
	rng *rand.Rand
}

// NewPoissonGenerator returns a deterministically seeded generator.
func NewPoissonGenerator(seed int64) *PoissonGenerator {
	return &PoissonGenerator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomPoissonGenerator returns a generator seeded from the clock.
func NewRandomPoissonGenerator() *PoissonGenerator {
	return NewPoissonGenerator(time.Now().UnixNano())
}

// Generate returns a single random number from the Poisson distribution
// with the given rate (lambda). Uses Knuth's algorithm: repeatedly
// multiply uniform draws into p until p drops below e^(-lambda).
// Exact for the small lambdas this simulator accepts; expected
// iteration count is lambda+1.
func (g *PoissonGenerator) Generate(rate float64) int {
	if rate == 0 {
		// Poisson(0) is the constant 0; consume no randomness
		return 0
	}

	L := math.Exp(-rate)
	k := 0
	p := 1.0

	for p > L {
		k++
		p *= g.rng.Float64()
	}

	return k - 1
}
