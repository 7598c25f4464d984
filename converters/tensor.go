// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/ffnet/matrix"
)

// ToTensor copies m into a new 2-D Float64 *tensor.Dense of shape (r, c).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrReleased.
func ToTensor[T matrix.Numeric](m *matrix.Dense[T]) (*tensor.Dense, error) {
	data, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("ToTensor: %w", err)
	}

	return tensor.New(tensor.WithShape(m.Rows(), m.Cols()), tensor.WithBacking(data)), nil
}

// FromTensor copies a 2-D tensor into a new owning matrix.Dense[T].
//
// Implementation:
//   - Stage 1: require exactly two dimensions.
//   - Stage 2: read every element through t.At, so sliced (non-contiguous)
//     tensors are handled the same as dense ones.
//   - Stage 3: map the element to float64; float64, float32 and the Go
//     integer kinds are supported.
//
// Errors: ErrUnsupported (rank != 2 or element type), matrix sentinels from
// allocation and Set.
func FromTensor[T matrix.Numeric](t tensor.Tensor, opts ...matrix.Option) (*matrix.Dense[T], error) {
	if t == nil {
		return nil, fmt.Errorf("FromTensor: %w", matrix.ErrNilMatrix)
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("FromTensor(shape %v): %w", shape, ErrUnsupported)
	}
	r, c := shape[0], shape[1]
	dst, err := matrix.NewDense[T](r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromTensor: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = copyElem(t, dst, i, j); err != nil {
				_ = dst.Release()
				return nil, fmt.Errorf("FromTensor: %w", err)
			}
		}
	}

	return dst, nil
}

func copyElem[T matrix.Numeric](t tensor.Tensor, dst *matrix.Dense[T], i, j int) error {
	raw, err := t.At(i, j)
	if err != nil {
		return err
	}
	v, ok := toFloat(raw)
	if !ok {
		return fmt.Errorf("element %T: %w", raw, ErrUnsupported)
	}

	return dst.Set(i, j, T(v))
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}

	return 0, false
}
