// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// RowView returns a non-owning 1×Cols view of row `row` of m.
// MAIN DESCRIPTION:
//   - Zero-copy window over m's buffer starting at row*stride.
//
// Implementation:
//   - Stage 1: validate m is alive and 0 ≤ row < m.Rows().
//   - Stage 2: register the view on the shared buffer (borrow).
//   - Stage 3: return a Dense with rows=1, cols=m.Cols(), stride=m.Stride().
//
// Behavior highlights:
//   - Writes through the view land in m at that row and nowhere else.
//   - The view holds a borrow: m.Release fails with ErrBorrowed until the
//     view is released, so the view can never outlive its source.
//   - The view inherits m's numeric policy, random stream and tracker; it is
//     never counted as an allocation.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pair every RowView with a deferred Release.
func RowView[T Numeric](m *Dense[T], row int) (*Dense[T], error) {
	if err := m.alive(); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, row, err)
	}
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, row, ErrOutOfRange)
	}
	if err := m.buf.borrow(); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, row, err)
	}

	return &Dense[T]{
		r:      1,
		c:      m.c,
		stride: m.stride,
		off:    m.off + row*m.stride,
		buf:    m.buf,
		owner:  false,
		opts:   m.opts,
	}, nil
}

// Row is the method form of RowView.
func (m *Dense[T]) Row(row int) (*Dense[T], error) { return RowView(m, row) }

// Views returns the number of live views borrowing m's storage.
func (m *Dense[T]) Views() int {
	if m == nil || m.buf == nil {
		return 0
	}

	return m.buf.views
}
