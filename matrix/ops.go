// SPDX-License-Identifier: MIT

// Package matrix - elementwise and product kernels.
//
// Determinism & Policy:
//   - Fixed loop orders: i→j for elementwise, i→j→k for Mul.
//   - Results are fresh owning matrices that inherit the left operand's
//     options (policy, random stream, tracker). Operands are never mutated.
//   - Every bulk loop either completes or returns an error; nothing is skipped.
package matrix

import "fmt"

// ---------- operation tags ----------

const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opCopy  = "Copy"
	opScale = "Scale"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <underlying>".
// Callers gate with `if err != nil`; wrapping nil is never done.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// contiguous reports whether m's logical elements occupy one unbroken run
// of the buffer, enabling flat loops.
func (m *Dense[T]) contiguous() bool { return m.stride == m.c || m.r == 1 }

// flat returns the logical elements of a contiguous matrix as one slice.
func (m *Dense[T]) flat() []float64 {
	return m.buf.data[m.off : m.off+(m.r-1)*m.stride+m.c]
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: flat loop when both operands are contiguous; strided i→j otherwise.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Numeric](a, b *Dense[T], sign float64, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[T](a.r, a.c, optionsOf(a.opts)...)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: single flat loop 0..n-1.
	if a.contiguous() && b.contiguous() {
		av, bv, out := a.flat(), b.flat(), res.buf.data
		for idx := range out {
			out[idx] = res.quantize(av[idx] + sign*bv[idx])
		}

		return res, nil
	}

	// Strided path (views with stride > cols).
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.put(i, j, res.quantize(a.at(i, j)+sign*b.at(i, j)))
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B into a fresh owning matrix.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh owning matrix.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (alive) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: simple triple loop i→j→k, accumulating from zero in the
//     storage domain and writing C[i,j] once, rounded through T.
//
// Behavior highlights:
//   - The summation order for every C[i,j] is k = 0..n-1, so results are
//     bit-identical across runs for identical inputs.
//   - No zero skipping: 0·Inf propagates NaN as IEEE-754 requires.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense[T](a.r, b.c, optionsOf(a.opts)...)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.at(i, k) * b.at(k, j)
			}
			res.put(i, j, res.quantize(sum))
		}
	}

	return res, nil
}

// Copy writes every logical element of src into dst.
// MAIN DESCRIPTION:
//   - Stride-aware copy: works dense→view, view→dense and view→view.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shapes differ);
//     ErrNaNInf when src holds non-finite values and dst's policy rejects them.
//
// Notes:
//   - On ErrNaNInf dst is left untouched (values are checked before writing).
//   - dst and src may share a buffer; rows are copied with the built-in copy,
//     which handles overlap.
//
// Complexity: Time O(r*c), Space O(1).
func Copy[T Numeric](dst, src *Dense[T]) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	var i, j int
	if dst.opts.validateNaNInf {
		for i = 0; i < src.r; i++ {
			for j = 0; j < src.c; j++ {
				if !dst.finite(src.at(i, j)) {
					return matrixErrorf(opCopy, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
			}
		}
	}
	for i = 0; i < src.r; i++ {
		so := src.off + i*src.stride
		do := dst.off + i*dst.stride
		copy(dst.buf.data[do:do+dst.c], src.buf.data[so:so+src.c])
	}

	return nil
}

// Scale returns alpha*m as a fresh owning matrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Numeric](m *Dense[T], alpha float64) (*Dense[T], error) {
	if err := ValidateAlive(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense[T](m.r, m.c, optionsOf(m.opts)...)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.put(i, j, res.quantize(alpha*m.at(i, j)))
		}
	}

	return res, nil
}
