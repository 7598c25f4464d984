// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for allocation and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No global mutable state: randomness and accounting are injected.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options apply at allocation time. Results of Add/Sub/Mul/Clone inherit
//     the tracker, random stream and numeric policy of their left operand.
//   - Views always share the policy of the matrix they were derived from.
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Fill/Apply.
	DefaultValidateNaNInf = true

	// DefaultSeed is the seed used when no random stream is configured, or
	// when WithSeed(0) is given.
	DefaultSeed int64 = 1

	// DefaultPadding and DefaultPrecision drive Print when callers pass
	// non-positive values.
	DefaultPadding   = 4
	DefaultPrecision = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilRand    = "matrix: WithRand: rng must be non-nil"
	panicNilTracker = "matrix: WithTracker: tracker must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool       // DefaultValidateNaNInf
	rng            *rand.Rand // nil ⇒ lazily seeded from DefaultSeed
	tracker        *Tracker   // nil ⇒ no accounting
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRand injects the random stream used by Randomize.
// Implementation:
//   - Stage 1: reject nil (programmer error ⇒ panic).
//   - Stage 2: return a setter storing rng.
//
// Notes:
//   - math/rand.Rand is NOT goroutine-safe; do not share one stream between
//     matrices used from different goroutines.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
// Policy: seed==0 ⇒ DefaultSeed.
func WithSeed(seed int64) Option {
	return WithRand(rngFromSeed(seed))
}

// WithTracker records every owning allocation and release in t.
func WithTracker(t *Tracker) Option {
	if t == nil {
		panic(panicNilTracker)
	}

	return func(o *Options) { o.tracker = t }
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies setters over the defaults. Nil setters are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// optionsOf reconstructs the Option list that reproduces m's configuration.
// Used by kernels that allocate results on behalf of an operand.
func optionsOf(o Options) []Option {
	out := make([]Option, 0, 3)
	if o.validateNaNInf {
		out = append(out, WithValidateNaNInf())
	} else {
		out = append(out, WithNoValidateNaNInf())
	}
	if o.rng != nil {
		out = append(out, WithRand(o.rng))
	}
	if o.tracker != nil {
		out = append(out, WithTracker(o.tracker))
	}

	return out
}
