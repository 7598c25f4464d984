package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ffnet/matrix"
)

// ExampleMul multiplies a 2×3 matrix of twos by a 3×2 matrix of threes.
func ExampleMul() {
	a, _ := matrix.NewFilled[float64](2, 3, 2)
	b, _ := matrix.NewFilled[float64](3, 2, 3)

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [18, 18]
	// [18, 18]
}

// ExampleRowView writes through a row view and shows the parent sees it.
func ExampleRowView() {
	m, _ := matrix.NewDense[int32](3, 2)
	row, _ := matrix.RowView(m, 1)
	_ = row.Fill(7)

	// The owner refuses release while the view is live.
	err := m.Release()
	fmt.Println(errors.Is(err, matrix.ErrBorrowed))

	_ = row.Release()
	fmt.Print(m)
	fmt.Println(m.Release() == nil)

	// Output:
	// true
	// [0, 0]
	// [7, 7]
	// [0, 0]
	// true
}

// ExampleDense_Sigmoid squashes values in place.
func ExampleDense_Sigmoid() {
	m, _ := matrix.NewFromRows([][]float64{{0}, {-2}})
	_ = m.Sigmoid()
	fmt.Printf("%.4f %.4f\n", mustAt(m, 0, 0), mustAt(m, 1, 0))

	// Output:
	// 0.5000 0.1192
}

func mustAt(m *matrix.Dense[float64], i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}
