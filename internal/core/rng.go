package core

import (
	"image/color"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Color returns a random opaque color.
func (r *RNG) Color() color.RGBA {
	return color.RGBA{
		R: uint8(r.r.IntN(256)),
		G: uint8(r.r.IntN(256)),
		B: uint8(r.r.IntN(256)),
		A: 0xff,
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
