// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ffnet/matrix"
)

// Method tags for error context.
const (
	ctxNew       = "New"
	ctxRandomize = "Randomize"
	ctxForward   = "Forward"
	ctxFeed      = "Feed"
	ctxSetInput  = "SetInput"
	ctxRelease   = "Release"
)

// networkErrorf wraps err with the method name and, when >= 0, the layer.
func networkErrorf(method string, layer int, err error) error {
	if layer < 0 {
		return fmt.Errorf("Network.%s: %w", method, err)
	}

	return fmt.Errorf("Network.%s(layer %d): %w", method, layer, err)
}

// Network is a feed-forward network over element type T.
//
// Invariants (while not released):
//   - len(weights) == len(biases) == count, len(activations) == count+1.
//   - weights[i] is arch[i]×arch[i+1], biases[i] and activations[i+1] are
//     1×arch[i+1], activations[0] is 1×arch[0].
//   - every entry is an owning matrix with its own buffer.
type Network[T matrix.Float] struct {
	count       int
	arch        []int
	weights     []*matrix.Dense[T]
	biases      []*matrix.Dense[T]
	activations []*matrix.Dense[T]
	released    bool
}

// New allocates a zero-initialized network for the given architecture.
//
// Implementation:
//   - Stage 1: reject an empty architecture (ErrInvalidArchitecture).
//   - Stage 2: bind one random stream for the whole network. A seed of
//     matrix.DefaultSeed is used unless opts carries WithRand/WithSeed.
//   - Stage 3: allocate activations[0], then per layer W[i], b[i], a[i+1].
//     On any failure everything allocated so far is released.
//
// Errors:
//   - ErrInvalidArchitecture; matrix.ErrInvalidDimensions for a size <= 0;
//     matrix.ErrOverflow.
//
// Complexity: O(Σ arch[i]·arch[i+1]) memory.
func New[T matrix.Float](arch []int, opts ...matrix.Option) (*Network[T], error) {
	if len(arch) == 0 {
		return nil, networkErrorf(ctxNew, -1, ErrInvalidArchitecture)
	}

	// Later options win, so a caller stream replaces the default one.
	all := make([]matrix.Option, 0, len(opts)+1)
	all = append(all, matrix.WithSeed(matrix.DefaultSeed))
	all = append(all, opts...)

	count := len(arch) - 1
	nn := &Network[T]{
		count:       count,
		arch:        append([]int(nil), arch...),
		weights:     make([]*matrix.Dense[T], 0, count),
		biases:      make([]*matrix.Dense[T], 0, count),
		activations: make([]*matrix.Dense[T], 0, count+1),
	}

	in, err := matrix.NewDense[T](1, arch[0], all...)
	if err != nil {
		return nil, networkErrorf(ctxNew, 0, err)
	}
	nn.activations = append(nn.activations, in)

	for i := 0; i < count; i++ {
		w, err := matrix.NewDense[T](arch[i], arch[i+1], all...)
		if err != nil {
			nn.unwind()
			return nil, networkErrorf(ctxNew, i, err)
		}
		nn.weights = append(nn.weights, w)

		b, err := matrix.NewDense[T](1, arch[i+1], all...)
		if err != nil {
			nn.unwind()
			return nil, networkErrorf(ctxNew, i, err)
		}
		nn.biases = append(nn.biases, b)

		a, err := matrix.NewDense[T](1, arch[i+1], all...)
		if err != nil {
			nn.unwind()
			return nil, networkErrorf(ctxNew, i, err)
		}
		nn.activations = append(nn.activations, a)
	}

	return nn, nil
}

// unwind releases whatever New allocated before failing.
func (nn *Network[T]) unwind() {
	for _, group := range [][]*matrix.Dense[T]{nn.activations, nn.biases, nn.weights} {
		for i := len(group) - 1; i >= 0; i-- {
			_ = group[i].Release()
		}
	}
}

func (nn *Network[T]) alive() error {
	if nn == nil {
		return ErrNilNetwork
	}
	if nn.released {
		return ErrReleased
	}

	return nil
}

// LayerCount returns the number of weighted layers, len(arch)-1 (0 for nil).
func (nn *Network[T]) LayerCount() int {
	if nn == nil {
		return 0
	}

	return nn.count
}

// Arch returns a copy of the architecture vector (nil for a nil network).
func (nn *Network[T]) Arch() []int {
	if nn == nil {
		return nil
	}

	return append([]int(nil), nn.arch...)
}

// Released reports whether Release has completed. A nil network counts as
// released.
func (nn *Network[T]) Released() bool { return nn == nil || nn.released }

// Weights returns the weight matrices in layer order (len LayerCount).
// The slice is fresh; the matrices are owned by nn and must not be released
// by the caller. Returns nil once nn is released.
func (nn *Network[T]) Weights() []*matrix.Dense[T] {
	if nn.alive() != nil {
		return nil
	}

	return append([]*matrix.Dense[T](nil), nn.weights...)
}

// Biases returns the bias rows in layer order (len LayerCount).
// Same ownership rules as Weights.
func (nn *Network[T]) Biases() []*matrix.Dense[T] {
	if nn.alive() != nil {
		return nil
	}

	return append([]*matrix.Dense[T](nil), nn.biases...)
}

// Activations returns the activation rows, input first (len LayerCount+1).
// Forward replaces entries 1..LayerCount, so pointers obtained before a
// Forward call refer to released matrices afterwards.
func (nn *Network[T]) Activations() []*matrix.Dense[T] {
	if nn.alive() != nil {
		return nil
	}

	return append([]*matrix.Dense[T](nil), nn.activations...)
}

// Input returns activations[0], the 1×arch[0] input row.
func (nn *Network[T]) Input() *matrix.Dense[T] {
	if nn.alive() != nil {
		return nil
	}

	return nn.activations[0]
}

// Output returns the last activation row, 1×arch[len(arch)-1].
func (nn *Network[T]) Output() *matrix.Dense[T] {
	if nn.alive() != nil {
		return nil
	}

	return nn.activations[nn.count]
}

// Randomize draws every weight and bias uniformly from [low, high], layer
// by layer (W[i] then b[i]) from the network's single random stream.
// Activations are left untouched.
func (nn *Network[T]) Randomize(low, high float64) error {
	if err := nn.alive(); err != nil {
		return networkErrorf(ctxRandomize, -1, err)
	}
	for i := 0; i < nn.count; i++ {
		if err := nn.weights[i].Randomize(low, high); err != nil {
			return networkErrorf(ctxRandomize, i, err)
		}
		if err := nn.biases[i].Randomize(low, high); err != nil {
			return networkErrorf(ctxRandomize, i, err)
		}
	}

	return nil
}

// Forward propagates activations[0] through every layer.
//
// Implementation, per layer i:
//   - Stage 1: z = a[i] · W[i]            (fresh 1×arch[i+1])
//   - Stage 2: s = z + b[i]; release z    (fresh 1×arch[i+1])
//   - Stage 3: σ(s) in place
//   - Stage 4: release the old a[i+1], store s
//
// The number of live allocations is the same before and after the call.
// Errors abort the pass; temporaries of the failing layer are released.
func (nn *Network[T]) Forward() error {
	if err := nn.alive(); err != nil {
		return networkErrorf(ctxForward, -1, err)
	}
	for i := 0; i < nn.count; i++ {
		z, err := matrix.Mul(nn.activations[i], nn.weights[i])
		if err != nil {
			return networkErrorf(ctxForward, i, err)
		}
		s, err := matrix.Add(z, nn.biases[i])
		_ = z.Release()
		if err != nil {
			return networkErrorf(ctxForward, i, err)
		}
		if err = s.Sigmoid(); err != nil {
			_ = s.Release()
			return networkErrorf(ctxForward, i, err)
		}
		if err = nn.activations[i+1].Release(); err != nil {
			_ = s.Release()
			return networkErrorf(ctxForward, i, err)
		}
		nn.activations[i+1] = s
	}

	return nil
}

// Feed copies row `row` of data into the input layer through a temporary
// row view. data must have exactly arch[0] columns.
//
// Errors: matrix.ErrOutOfRange, matrix.ErrDimensionMismatch, ErrReleased.
func (nn *Network[T]) Feed(data *matrix.Dense[T], row int) error {
	if err := nn.alive(); err != nil {
		return networkErrorf(ctxFeed, -1, err)
	}
	view, err := matrix.RowView(data, row)
	if err != nil {
		return networkErrorf(ctxFeed, -1, err)
	}
	err = matrix.Copy(nn.activations[0], view)
	if rerr := view.Release(); err == nil {
		err = rerr
	}
	if err != nil {
		return networkErrorf(ctxFeed, -1, err)
	}

	return nil
}

// SetInput copies a 1×arch[0] matrix into the input layer.
func (nn *Network[T]) SetInput(src *matrix.Dense[T]) error {
	if err := nn.alive(); err != nil {
		return networkErrorf(ctxSetInput, -1, err)
	}
	if err := matrix.Copy(nn.activations[0], src); err != nil {
		return networkErrorf(ctxSetInput, -1, err)
	}

	return nil
}

// Release frees every owned matrix exactly once, last layer first:
// a[L], b[L-1], W[L-1], ..., a[1], b[0], W[0], a[0].
//
// Implementation:
//   - Stage 1: scan every owned matrix for live row views. If any is
//     borrowed, return matrix.ErrBorrowed: nothing is freed and the network
//     stays usable, so Release can be retried once the views are released.
//   - Stage 2: release all matrices in order and mark the network released.
//
// A second successful call returns ErrReleased.
func (nn *Network[T]) Release() error {
	if err := nn.alive(); err != nil {
		return networkErrorf(ctxRelease, -1, err)
	}
	order := nn.releaseOrder()
	for _, e := range order {
		if e.m.Views() > 0 {
			return networkErrorf(ctxRelease, e.layer, fmt.Errorf("%s: %w", e.role, matrix.ErrBorrowed))
		}
	}

	var errs []error
	for _, e := range order {
		if err := e.m.Release(); err != nil {
			errs = append(errs, networkErrorf(ctxRelease, e.layer, err))
		}
	}
	nn.released = true
	nn.weights, nn.biases, nn.activations = nil, nil, nil

	return errors.Join(errs...)
}

// owned names one matrix held by the network, for release bookkeeping.
type owned[T matrix.Float] struct {
	m     *matrix.Dense[T]
	layer int
	role  string
}

// releaseOrder lists every owned matrix in reverse layer order.
func (nn *Network[T]) releaseOrder() []owned[T] {
	out := make([]owned[T], 0, 3*nn.count+1)
	for i := nn.count - 1; i >= 0; i-- {
		out = append(out,
			owned[T]{nn.activations[i+1], i, "activation"},
			owned[T]{nn.biases[i], i, "bias"},
			owned[T]{nn.weights[i], i, "weights"},
		)
	}

	return append(out, owned[T]{nn.activations[0], 0, "input"})
}
