// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// NewZeros returns a new zero-initialized owning rows×cols matrix.
// Thin alias of NewDense.
func NewZeros[T Numeric](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewFilled allocates rows×cols and fills it with v.
// The matrix is released again if Fill fails, so nothing leaks.
func NewFilled[T Numeric](rows, cols int, v T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(v); err != nil {
		_ = m.Release()
		return nil, err
	}

	return m, nil
}

// NewFromRows builds an owning matrix from row slices (all of equal length).
// Errors: ErrInvalidDimensions on empty input, ErrDimensionMismatch on
// ragged rows, ErrNaNInf from Set.
func NewFromRows[T Numeric](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			_ = m.Release()
			return nil, matrixErrorf("NewFromRows", ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				_ = m.Release()
				return nil, matrixErrorf("NewFromRows", err)
			}
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape and options as m.
func ZerosLike[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateAlive(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.r, m.c, optionsOf(m.opts)...)
}

// Sum is an alias for Add: element-wise a + b.
func Sum[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// ToRows copies the logical elements of m into fresh row slices.
func ToRows[T Numeric](m *Dense[T]) ([][]T, error) {
	if err := ValidateAlive(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		for j := range out[i] {
			out[i][j] = fromStorage[T](m.at(i, j))
		}
	}

	return out, nil
}
