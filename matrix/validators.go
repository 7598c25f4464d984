// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating liveness/shape checks here.
//  - Return sentinel errors tagged by validator so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (Alive → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAlive ensures m is non-nil and not released.
// Returns ErrNilMatrix or ErrReleased. Complexity: O(1).
func ValidateAlive[T Numeric](m *Dense[T]) error {
	if err := m.alive(); err != nil {
		return validatorErrorf("ValidateAlive", err)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T Numeric](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes ValidateAlive on both operands with
// ValidateSameShape. Used by Add/Sub/Copy.
func ValidateBinarySameShape[T Numeric](a, b *Dense[T]) error {
	if err := ValidateAlive(a); err != nil {
		return err
	}
	if err := ValidateAlive(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks a.Cols() == b.Rows() after liveness checks.
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b *Dense[T]) error {
	if err := ValidateAlive(a); err != nil {
		return err
	}
	if err := ValidateAlive(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}
