// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> released -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOverflow is returned when rows*cols cannot be represented as an int.
	ErrOverflow = errors.New("matrix: element count overflows int")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// logical shape. Public indexers (At/Set/RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Copy different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased is returned by any operation on a matrix whose storage was
	// released, including a second Release.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrBorrowed is returned when an owning matrix is released while row
	// views into its storage are still alive.
	ErrBorrowed = errors.New("matrix: storage borrowed by live views")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Fill, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidRange is returned by Randomize when low > high or a bound is
	// not finite.
	ErrInvalidRange = errors.New("matrix: invalid random range")
)

// ErrIndexOutOfBounds is an alias of ErrOutOfRange; errors.Is matches either
// name for the same condition.
var ErrIndexOutOfBounds = ErrOutOfRange
