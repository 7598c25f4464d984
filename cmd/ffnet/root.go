// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ffnet/matrix"
	"github.com/katalvlaran/ffnet/network"
)

// config holds the parsed command line.
type config struct {
	arch      []int
	low, high float64
	seed      int64
	padding   int
	precision int
	input     string
	verbose   bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := config{}

	cmd := &cobra.Command{
		Use:           "ffnet",
		Short:         "Build, randomize and run a feed-forward network",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(out, cfg)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&cfg.arch, "arch", []int{2, 2, 1}, "layer sizes, input first")
	f.Float64Var(&cfg.low, "low", 0, "lower bound for random parameters")
	f.Float64Var(&cfg.high, "high", 1, "upper bound for random parameters")
	f.Int64Var(&cfg.seed, "seed", matrix.DefaultSeed, "random seed (0 selects the default)")
	f.IntVar(&cfg.padding, "padding", matrix.DefaultPadding, "dump column padding")
	f.IntVar(&cfg.precision, "precision", matrix.DefaultPrecision, "dump decimal places")
	f.StringVar(&cfg.input, "input", "", "comma-separated input row; empty skips the forward pass")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log allocation accounting")

	return cmd
}

// run executes one build → randomize → (feed → forward) → dump → release cycle.
func run(out io.Writer, cfg config) error {
	tr := matrix.NewTracker()
	nn, err := network.New[float64](cfg.arch, matrix.WithSeed(cfg.seed), matrix.WithTracker(tr))
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("built %s (%d units, %d matrices)", nn.Summary(), lo.Sum(cfg.arch), tr.Live())
	}

	if err = nn.Randomize(cfg.low, cfg.high); err != nil {
		_ = nn.Release()
		return err
	}
	if err = nn.Print(out, cfg.padding, cfg.precision); err != nil {
		_ = nn.Release()
		return err
	}

	if cfg.input != "" {
		if err = forward(out, nn, cfg); err != nil {
			_ = nn.Release()
			return err
		}
	}

	if err = nn.Release(); err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("released: allocs=%d frees=%d live=%d", tr.Allocs(), tr.Frees(), tr.Live())
	}

	return nil
}

// forward feeds the --input row and prints the output activation.
func forward(out io.Writer, nn *network.Network[float64], cfg config) error {
	values, err := parseRow(cfg.input)
	if err != nil {
		return err
	}
	row, err := matrix.NewFromRows([][]float64{values})
	if err != nil {
		return err
	}
	defer func() { _ = row.Release() }()

	if err = nn.Feed(row, 0); err != nil {
		return err
	}
	if err = nn.Forward(); err != nil {
		return err
	}
	_, err = io.WriteString(out, nn.Output().Dump(cfg.padding, cfg.precision))

	return err
}

// parseRow parses "0.5, 1,2" into []float64.
func parseRow(s string) ([]float64, error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string { return strings.TrimSpace(p) })
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("--input %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
