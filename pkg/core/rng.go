package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBool sets each cell alive with probability 1/n. n <= 1 fills every cell.
func (r *RNG) FillBool(buf []bool, n int) {
	for i := range buf {
		buf[i] = n <= 1 || r.r.IntN(n) == 0
	}
}
