// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// sigmoid is the logistic function σ(x) = 1 / (1 + e^-x).
func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// Sigmoid replaces every logical element x with σ(x) in place.
// The computation runs in float64; integer element types truncate the
// result, so they collapse to 0 or 1.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity: O(r*c).
func (m *Dense[T]) Sigmoid() error {
	if err := m.alive(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSigmoid, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.put(i, j, m.quantize(sigmoid(m.at(i, j))))
		}
	}

	return nil
}
