// SPDX-License-Identifier: MIT

// Package network implements a fully connected feed-forward network on top
// of the matrix runtime.
//
// An architecture vector arch of length L describes L-1 layers. Layer i maps
// a (1 × arch[i]) row to a (1 × arch[i+1]) row:
//
//	a[i+1] = σ(a[i] · W[i] + b[i])
//
// where W[i] is arch[i] × arch[i+1], b[i] is 1 × arch[i+1] and σ is the
// logistic sigmoid. The network owns every weight, bias and activation
// matrix and releases each of them exactly once (Release, reverse layer
// order).
//
// Typical flow:
//
//	nn, err := network.New[float64]([]int{2, 2, 1}, matrix.WithSeed(42))
//	_ = nn.Randomize(0, 1)
//	_ = nn.Feed(samples, row)     // row view + copy into the input layer
//	_ = nn.Forward()
//	out := nn.Output()
//	_ = nn.Release()
//
// Training, loss functions and batching are out of scope. A Network is not
// safe for concurrent use.
package network
