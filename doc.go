// Package ffnet is a small dense-matrix runtime with a feed-forward neural
// network built on top of it.
//
// What is in the box?
//
//	• Matrices: owning Dense[T] values and non-owning row views over a
//	  shared, strided buffer; bounds-checked At/Set, Fill, Randomize,
//	  Add/Sub/Mul, Copy, Sigmoid
//	• Ownership: every buffer is released exactly once; an owner cannot be
//	  released while a row view into it is alive
//	• Network: weights, biases and activations per layer, Randomize,
//	  Forward (σ(a·W + b)), deterministic for a fixed seed
//	• Converters: gonum mat.Dense and gorgonia tensor.Tensor adapters
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — Dense[T], RowView, kernels, Tracker, functional options
//	network/    — Network[T], construction, forward pass, release order
//	converters/ — gonum / gorgonia interop (copying)
//	cmd/ffnet/  — command line driver
//
// Quick example:
//
//	nn, _ := network.New[float64]([]int{2, 2, 1}, matrix.WithSeed(7))
//	_ = nn.Randomize(0, 1)
//	_ = nn.Forward()
//	fmt.Print(nn)
//	_ = nn.Release()
//
// Training (backpropagation, losses), GPU/SIMD back ends and concurrency are
// out of scope.
//
//	go get github.com/katalvlaran/ffnet
package ffnet
