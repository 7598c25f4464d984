// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ffnet/matrix"
)

// ToGonum copies m into a freshly allocated *mat.Dense. Row views are
// accepted; only their logical elements are copied.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrReleased.
// Complexity: O(r*c).
func ToGonum[T matrix.Numeric](m *matrix.Dense[T]) (*mat.Dense, error) {
	data, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any mat.Matrix into a new owning matrix.Dense[T].
// Values are converted with T(v); opts configure the result as in
// matrix.NewDense (tracker, NaN policy, random stream).
//
// Errors: matrix.ErrNilMatrix for a nil src, matrix.ErrInvalidDimensions
// for an empty src, matrix.ErrNaNInf under the default numeric policy.
func FromGonum[T matrix.Numeric](src mat.Matrix, opts ...matrix.Option) (*matrix.Dense[T], error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	dst, err := matrix.NewDense[T](r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = dst.Set(i, j, T(src.At(i, j))); err != nil {
				_ = dst.Release()
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return dst, nil
}

// flatten returns m's logical elements row-major as float64.
func flatten[T matrix.Numeric](m *matrix.Dense[T]) ([]float64, error) {
	if err := matrix.ValidateAlive(m); err != nil {
		return nil, err
	}
	out := make([]float64, 0, m.Rows()*m.Cols())
	m.Do(func(_, _ int, v T) bool {
		out = append(out, float64(v))
		return true
	})

	return out, nil
}
