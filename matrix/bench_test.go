// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ffnet/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

// randDense allocates an n×n matrix filled from a seeded stream.
func randDense(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m := MustDense(b, n, n, matrix.WithSeed(seed))
	if err := m.Randomize(-1, 1); err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 1337)
			B := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 11)
			B := randDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Diff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 7)
			B := randDense(b, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkRowViewCopy measures the borrow/copy/detach cycle used when
// feeding one sample row into a network input.
func BenchmarkRowViewCopy(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			data := randDense(b, n, 99)
			dst := MustDense(b, 1, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				row, err := data.Row(i % n)
				if err != nil {
					b.Fatal(err)
				}
				if err = matrix.Copy(dst, row); err != nil {
					b.Fatal(err)
				}
				if err = row.Release(); err != nil {
					b.Fatal(err)
				}
			}
			sinkF, _ = dst.At(0, 0)
		})
	}
}

func BenchmarkSigmoid(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randDense(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.Sigmoid(); err != nil {
					b.Fatal(err)
				}
			}
			sinkF, _ = m.At(0, 0)
		})
	}
}
