// SPDX-License-Identifier: MIT

package matrix

// Numeric is the element contract for Dense: the kinds whose every value
// float64, the canonical storage type, represents exactly. Set followed by
// At therefore returns the value that was set, extremes included.
// int, int64, uint, uint64 and uintptr are excluded: values above 2^53 do
// not survive a float64 round trip.
type Numeric interface {
	~int8 | ~int16 | ~int32 |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// Float narrows Numeric to floating kinds; used where values are fractional
// by construction (network activations).
type Float interface {
	~float32 | ~float64
}

// toStorage converts an element into the canonical storage representation.
func toStorage[T Numeric](v T) float64 { return float64(v) }

// fromStorage converts a stored value back to the element type.
// Computed results (Mul, Sigmoid, ...) are converted with Go semantics:
// integer kinds truncate toward zero.
func fromStorage[T Numeric](v float64) T { return T(v) }
