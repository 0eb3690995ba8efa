// Package chain - RNG utilities shared by the selection engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: one RNG per Chain, seeded once; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every draw goes through intn,
//     which holds rngMu.
package chain

import "math/rand"

// defaultSeed is used when New receives neither WithSeed nor WithRand.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for seed, used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// intn draws uniformly from [0, n). n must be > 0.
//
// Complexity: O(1).
func (c *Chain[T]) intn(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()

	return c.rng.Intn(n)
}
