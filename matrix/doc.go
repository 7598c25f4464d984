// SPDX-License-Identifier: MIT

// Package matrix provides a small dense numeric-matrix runtime.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over a contiguous buffer with an explicit
//     row pitch (stride), generic over any Numeric element type.
//   - Owning matrices (NewDense) and non-owning row views (RowView) that
//     alias another matrix's storage without copying.
//   - Bounds-checked access (At/Set), Fill, Randomize, Sigmoid and the
//     elementwise/product kernels Add, Sub, Mul and Copy.
//   - Deterministic, single-shot Release with allocation accounting (Tracker).
//
// Ownership model:
//
//	owner ──► buffer ◄── view(row 0)
//	            ▲
//	            └─────── view(row 2)
//
// A buffer counts its live views. Releasing the owner while a view is alive
// fails with ErrBorrowed, so a view can never outlive its source. Releasing
// twice fails with ErrReleased; the buffer is freed exactly once.
//
// Storage is float64 regardless of T: At converts the stored value to T and
// Set converts T to float64. All public operations return sentinel errors
// (see errors.go) and never panic on caller mistakes.
//
// Dense is not safe for concurrent use.
package matrix
