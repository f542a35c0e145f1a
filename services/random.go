package services

import (
	"math/rand/v2"
	"time"
)

// Random is the randomness the planner draws from. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
	Perm(n int) []int
}

// NewRandom returns a PCG-backed source. A zero seed picks one from the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intBetween draws uniformly from [lo, hi].
func intBetween(rng Random, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
