// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ffnet/matrix"
)

// Print writes every layer's weights and bias using matrix.Dense.Dump,
// bracketed as a whole:
//
//	[
//	    Mat (2 x 2):
//	    ...
//	]
//
// Activations are not printed. Negative padding/precision select the
// matrix defaults.
func (nn *Network[T]) Print(w io.Writer, padding, precision int) error {
	if err := nn.alive(); err != nil {
		return networkErrorf("Print", -1, err)
	}
	_, err := io.WriteString(w, nn.dump(padding, precision))

	return err
}

// String renders the network with the default layout; a released network
// renders as "<released>".
func (nn *Network[T]) String() string {
	if nn.alive() != nil {
		return "<released>"
	}

	return nn.dump(matrix.DefaultPadding, matrix.DefaultPrecision)
}

func (nn *Network[T]) dump(padding, precision int) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i := 0; i < nn.count; i++ {
		b.WriteString(nn.weights[i].Dump(padding, precision))
		b.WriteString(nn.biases[i].Dump(padding, precision))
	}
	b.WriteString("]\n")

	return b.String()
}

// Summary returns "arch=[2 2 1] layers=2" style one-liner for logs; a nil
// network summarizes as "<nil>".
func (nn *Network[T]) Summary() string {
	if nn == nil {
		return "<nil>"
	}

	return fmt.Sprintf("arch=%v layers=%d", nn.arch, nn.count)
}
