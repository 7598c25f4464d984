// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula
//     off + i*stride + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Release storage exactly once; views never release.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Fill/Randomize/Clone: O(r*c);
//     RowView: O(1); Release: O(1).
package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "NewDense"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxFill      = "Fill"
	ctxRandomize = "Randomize"
	ctxApply     = "Apply"
	ctxClone     = "Clone"
	ctxRelease   = "Release"
	ctxRow       = "RowView"
	ctxSigmoid   = "Sigmoid"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over float64 storage, reporting elements as T.
//   - r,c hold the logical shape; every bound check uses them.
//   - stride is the row pitch in buf (== c for owners, == source stride for views).
//   - off is the buffer offset of element (0,0).
//   - owner reports whether this handle is responsible for freeing buf.
type Dense[T Numeric] struct {
	r, c     int     // logical rows and columns (> 0)
	stride   int     // row pitch in elements (>= c)
	off      int     // offset of (0,0) in buf.data
	buf      *buffer // shared storage handle
	owner    bool    // true for NewDense results, false for views
	released bool    // this handle was released (owner: storage freed; view: detached)
	opts     Options // numeric policy, random stream, accounting
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an owning rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - The sole allocation entry point; views reuse an existing buffer.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject rows*cols overflow before allocating; else ErrOverflow.
//   - Stage 3: allocate a zero-filled buffer of exactly rows*cols, stride = cols.
//
// Errors:
//   - ErrInvalidDimensions, ErrOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrOverflow)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:      rows,
		c:      cols,
		stride: cols,
		buf:    newBuffer(rows*cols, o.tracker),
		owner:  true,
		opts:   o,
	}, nil
}

// Rows returns the row count (0 for nil). Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for nil). Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Stride returns the row pitch of the backing buffer.
func (m *Dense[T]) Stride() int {
	if m == nil {
		return 0
	}

	return m.stride
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsView reports whether m borrows another matrix's storage.
func (m *Dense[T]) IsView() bool { return m != nil && !m.owner }

// Released reports whether m can no longer be used. A nil matrix counts
// as released.
func (m *Dense[T]) Released() bool { return m.alive() != nil }

// alive gates every operation: nil and released handles are rejected.
func (m *Dense[T]) alive() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.released || m.buf.released {
		return ErrReleased
	}

	return nil
}

// indexOf bounds-checks (row,col) against the logical shape and returns the
// buffer offset. The stride may reach past c; bounds never do.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.off + row*m.stride + col, nil
}

// at is the unchecked strided read used by kernels after shape validation.
func (m *Dense[T]) at(row, col int) float64 {
	return m.buf.data[m.off+row*m.stride+col]
}

// put is the unchecked strided write used by kernels after validation.
func (m *Dense[T]) put(row, col int, v float64) {
	m.buf.data[m.off+row*m.stride+col] = v
}

// quantize rounds a storage value through T so that raw storage always
// matches what At reports (identity for float64, rounding for float32,
// truncation for integer kinds).
func (m *Dense[T]) quantize(v float64) float64 { return toStorage(fromStorage[T](v)) }

// finite applies the numeric policy to a storage value.
func (m *Dense[T]) finite(v float64) bool {
	return !m.opts.validateNaNInf || (!math.IsNaN(v) && !math.IsInf(v, 0))
}

// At returns the value at (row, col) converted to T.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if err := m.alive(); err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return fromStorage[T](m.buf.data[off]), nil
}

// Set stores v at (row, col) in the storage representation.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange; ErrNaNInf under the numeric policy.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := m.alive(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	sv := toStorage(v)
	if !m.finite(sv) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.buf.data[off] = sv

	return nil
}

// Fill overwrites every logical element with v (converted once).
// Views fill only their own row; neighbouring rows of the source are untouched.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) error {
	if err := m.alive(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxFill, err)
	}
	sv := toStorage(v)
	if !m.finite(sv) {
		return fmt.Errorf("Dense.%s: %w", ctxFill, ErrNaNInf)
	}
	for i := 0; i < m.r; i++ {
		row := m.buf.data[m.off+i*m.stride : m.off+i*m.stride+m.c]
		for j := range row {
			row[j] = sv
		}
	}

	return nil
}

// Randomize draws every logical element independently and uniformly from the
// closed interval [low, high], using the configured random stream.
//
// Errors:
//   - ErrInvalidRange when low > high or either bound is NaN/±Inf.
//
// Notes:
//   - Draw order is row-major, so a seeded stream reproduces the same matrix.
//
// Complexity: O(r*c).
func (m *Dense[T]) Randomize(low, high float64) error {
	if err := m.alive(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxRandomize, err)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return fmt.Errorf("Dense.%s(%g,%g): %w", ctxRandomize, low, high, ErrInvalidRange)
	}
	rng := m.stream()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.put(i, j, m.quantize(uniformClosed(rng, low, high)))
		}
	}

	return nil
}

// stream returns the configured stream, seeding one from DefaultSeed on first use.
// The stream is stored back so views and results share it.
func (m *Dense[T]) stream() *rand.Rand {
	if m.opts.rng == nil {
		m.opts.rng = rngFromSeed(DefaultSeed)
	}

	return m.opts.rng
}

// Clone returns an owning deep copy with a compact stride (== cols).
// Cloning a view yields an independent owner of just the view's elements.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() (*Dense[T], error) {
	if err := m.alive(); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxClone, err)
	}
	cp, err := NewDense[T](m.r, m.c, optionsOf(m.opts)...)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxClone, err)
	}
	for i := 0; i < m.r; i++ {
		copy(cp.buf.data[i*cp.stride:i*cp.stride+cp.c], m.buf.data[m.off+i*m.stride:m.off+i*m.stride+m.c])
	}

	return cp, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. A released matrix is visited as empty.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	if m.alive() != nil {
		return
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !f(i, j, fromStorage[T](m.at(i, j))) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Returns:
//   - error: ErrNaNInf when f produced a non-finite value (if policy ON).
//
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	if err := m.alive(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxApply, err)
	}
	var nv float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			nv = toStorage(f(i, j, fromStorage[T](m.at(i, j))))
			if !m.finite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.put(i, j, nv)
		}
	}

	return nil
}

// Release frees the storage of an owning matrix exactly once, or detaches a
// view from its source without freeing anything.
//
// Errors:
//   - ErrReleased on a second call (nothing is freed twice).
//   - ErrBorrowed when an owner still has live views; the owner stays usable.
//
// Complexity: O(1).
func (m *Dense[T]) Release() error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrNilMatrix)
	}
	if m.released {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrReleased)
	}
	if !m.owner {
		m.released = true
		m.buf.unborrow()

		return nil
	}
	if err := m.buf.free(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, err)
	}
	m.released = true

	return nil
}

// String renders rows as "[a, b]\n" for diagnostics; released matrices
// render as "<released>".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	if m.alive() != nil {
		return "<released>"
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", fromStorage[T](m.at(i, j)))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
