package tree

import "math/rand/v2"

// A Sampler draws uniformly distributed integers in [low, high].
// Callers guarantee low <= high.
type Sampler interface {
	Index(low, high int) int
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(low, high int) int

func (f SamplerFunc) Index(low, high int) int { return f(low, high) }

// RandSampler is a Sampler backed by a seeded PCG generator.
// It is not safe for concurrent use.
type RandSampler struct {
	rng *rand.Rand
}

func NewRandSampler(seed uint64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *RandSampler) Index(low, high int) int {
	return low + s.rng.IntN(high-low+1)
}
