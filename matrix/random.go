// SPDX-License-Identifier: MIT

// Package matrix - random streams for Randomize.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package matrix

import "math/rand"

// unitSteps is the number of equal steps the closed unit interval is split
// into; 2^53 keeps every step exactly representable in a float64.
const unitSteps = 1 << 53

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniformClosed draws from [low, high] with both ends reachable.
// rand.Float64 is half-open, so we draw an integer step in [0, 2^53] instead.
//
// Complexity: O(1).
func uniformClosed(rng *rand.Rand, low, high float64) float64 {
	k := rng.Int63n(unitSteps + 1)
	if k == unitSteps {
		return high
	}

	v := low + (high-low)*(float64(k)/unitSteps)
	// Rounding in (high-low) can push v one ulp past the bounds.
	if v > high {
		return high
	}
	if v < low {
		return low
	}

	return v
}
