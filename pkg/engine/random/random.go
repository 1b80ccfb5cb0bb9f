// Package random provides the seeded random source shared by a generation pass.
package random

import "math/rand/v2"

// Source is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// A Source is not safe for concurrent use.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic source from a seed
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Derive creates a deterministic source for one stream of a seed,
// e.g. one floor of a session. Different streams of the same seed are independent.
func Derive(seed int64, stream uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Int64 returns a non-negative random int64
func (s *Source) Int64() int64 {
	return s.r.Int64()
}

// Float64 returns a uniform float64 in [0, 1)
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle pseudo-randomizes the order of n elements using swap
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Rand exposes the underlying rand.Rand for advanced use.
func (s *Source) Rand() *rand.Rand { return s.r }
