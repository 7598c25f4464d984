// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a fixed-width, row-major dump of m to w:
//
//	    Mat (2 x 3):
//	    [
//	        0.0000     1.0000     2.0000
//	        3.0000     4.0000     5.0000
//	    ]
//
// Every column is left-aligned in a cell of digits(cols)+padding+precision
// characters. Negative padding or precision selects DefaultPadding /
// DefaultPrecision. Presentation only: the layout carries no contract.
//
// Errors:
//   - ErrNilMatrix, ErrReleased; any error returned by w.
func (m *Dense[T]) Print(w io.Writer, padding, precision int) error {
	if err := m.alive(); err != nil {
		return fmt.Errorf("Dense.Print: %w", err)
	}
	_, err := io.WriteString(w, m.Dump(padding, precision))

	return err
}

// Dump returns the text Print would write. A released matrix dumps as
// "<released>\n".
func (m *Dense[T]) Dump(padding, precision int) string {
	if m.alive() != nil {
		return "<released>\n"
	}
	if padding < 0 {
		padding = DefaultPadding
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	indent := strings.Repeat(" ", padding)
	width := len(strconv.Itoa(m.c)) + padding + precision

	var b strings.Builder
	kind := "Mat"
	if !m.owner {
		kind = "View"
	}
	fmt.Fprintf(&b, "%s%s (%d x %d):\n", indent, kind, m.r, m.c)
	b.WriteString(indent + "[\n")
	for i := 0; i < m.r; i++ {
		b.WriteString(indent + indent)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%-*.*f", width, precision, m.at(i, j))
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + "]\n")

	return b.String()
}
