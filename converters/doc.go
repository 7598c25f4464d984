// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between matrix.Dense and
// popular Go numeric libraries:
//   - gonum.org/v1/gonum/mat (mat.Matrix / *mat.Dense)
//   - gorgonia.org/tensor (2-D tensor.Tensor)
//
// Every conversion copies: the result never aliases the source storage, so
// ownership rules of matrix.Dense (views, Release) are unaffected.
package converters
