// SPDX-License-Identifier: MIT

// Package matrix - storage ownership and allocation accounting.
//
// Purpose:
//   - Give every owning Dense a single buffer handle that is freed exactly once.
//   - Count live views on that handle so the owner cannot free storage that
//     is still borrowed.
//   - Expose allocation/free counters (Tracker) so callers and tests can
//     observe leaks and double frees.
package matrix

// Tracker counts owning allocations and releases.
// The zero value is ready to use. Not safe for concurrent use.
type Tracker struct {
	allocs   int // owning buffers allocated
	frees    int // owning buffers released
	elements int // elements currently held by live buffers
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Allocs returns the number of owning buffers allocated so far.
func (t *Tracker) Allocs() int { return t.allocs }

// Frees returns the number of owning buffers released so far.
func (t *Tracker) Frees() int { return t.frees }

// Live returns Allocs()-Frees(): buffers allocated and not yet released.
func (t *Tracker) Live() int { return t.allocs - t.frees }

// Elements returns the number of elements held by live buffers.
func (t *Tracker) Elements() int { return t.elements }

func (t *Tracker) recordAlloc(n int) {
	if t == nil {
		return
	}
	t.allocs++
	t.elements += n
}

func (t *Tracker) recordFree(n int) {
	if t == nil {
		return
	}
	t.frees++
	t.elements -= n
}

// buffer is the storage shared between an owning Dense and its views.
type buffer struct {
	data     []float64 // len == rows*cols of the owner; nil after free
	views    int       // live views borrowing data
	released bool      // set once by free
	tracker  *Tracker  // optional accounting sink
}

// newBuffer allocates a zero-filled buffer of n elements and records it.
// Complexity: O(n).
func newBuffer(n int, t *Tracker) *buffer {
	b := &buffer{data: make([]float64, n), tracker: t}
	t.recordAlloc(n)

	return b
}

// borrow registers a new view. Fails when the buffer is already freed.
func (b *buffer) borrow() error {
	if b.released {
		return ErrReleased
	}
	b.views++

	return nil
}

// unborrow drops one view registration.
func (b *buffer) unborrow() {
	if b.views > 0 {
		b.views--
	}
}

// free releases the storage exactly once.
// Errors:
//   - ErrReleased on a second call.
//   - ErrBorrowed while views are alive (storage untouched).
func (b *buffer) free() error {
	if b.released {
		return ErrReleased
	}
	if b.views > 0 {
		return ErrBorrowed
	}
	n := len(b.data)
	b.data = nil
	b.released = true
	b.tracker.recordFree(n)

	return nil
}
