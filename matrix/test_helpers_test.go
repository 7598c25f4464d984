// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffnet/matrix"
)

// MustDense ALLOCATES an r×c float64 matrix or fails the test.
// Accepts testing.TB so benchmarks can share it.
func MustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDense[float64](r, c, opts...)
	require.NoError(tb, err)

	return m
}

// NewFilledDense BUILDS r×c float64 matrix from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate and Set(i,j, vals[i*c+j]).
//
// Notes:
//   - Prefer for small exact-equality tests.
func NewFilledDense(tb testing.TB, r, c int, vals []float64, opts ...matrix.Option) *matrix.Dense[float64] {
	tb.Helper()
	require.Len(tb, vals, r*c, "NewFilledDense: value count")
	d := MustDense(tb, r, c, opts...)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(tb, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// MustAt READS m(i,j) or fails the test.
func MustAt[T matrix.Numeric](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireAll asserts every element of m equals want.
func RequireAll[T matrix.Numeric](tb testing.TB, m *matrix.Dense[T], want T) {
	tb.Helper()
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Equalf(tb, want, MustAt(tb, m, i, j), "element (%d,%d)", i, j)
		}
	}
}

// RequireRows asserts m holds exactly the given rows.
func RequireRows[T matrix.Numeric](tb testing.TB, m *matrix.Dense[T], want [][]T) {
	tb.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(tb, err)
	require.Equal(tb, want, got)
}
