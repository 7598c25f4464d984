package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffnet/matrix"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRunDefaults(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[\n"))
	require.Equal(t, 4, strings.Count(out, "Mat ("), "two layers, weights and bias each")
}

func TestRunWithInput(t *testing.T) {
	out, err := execute(t, "--arch", "2,3,1", "--seed", "7", "--input", "0.5, 1", "--precision", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Mat (3 x 1):")
	require.True(t, strings.HasSuffix(out, "]\n"))
	// 2 layers dumped plus the output row.
	require.Equal(t, 5, strings.Count(out, "Mat ("))
}

func TestRunDeterministic(t *testing.T) {
	a, err := execute(t, "--seed", "3", "--input", "1,0")
	require.NoError(t, err)
	b, err := execute(t, "--seed", "3", "--input", "1,0")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "--input", "1,x")
	require.ErrorContains(t, err, "--input")

	_, err = execute(t, "--input", "1,2,3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = execute(t, "--arch", "2,0,1")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = execute(t, "--low", "1", "--high", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidRange)

	_, err = execute(t, "stray")
	require.Error(t, err)
}

func TestParseRow(t *testing.T) {
	v, err := parseRow(" 0.5,1 ,-2")
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, -2}, v)
}

// TestRunNegativeLayout falls back to the default dump layout.
func TestRunNegativeLayout(t *testing.T) {
	var out bytes.Buffer
	cfg := config{arch: []int{1, 1}, high: 1, seed: 1, padding: -1, precision: -1, input: "2"}
	require.NoError(t, run(&out, cfg))
	require.Contains(t, out.String(), "    Mat (1 x 1):")
}
