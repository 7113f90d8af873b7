package main

import (
	"log/slog"

	"github.com/octu0/bwm"
	"github.com/spf13/cobra"
)

type codecFlags struct {
	seed      uint64
	strength1 int
	strength2 int
	workers   int
}

func (f *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "permutation seed, enables seeded mode")
	cmd.Flags().IntVar(&f.strength1, "strength1", bwm.DefaultStrength1, "quantization step of the first singular value")
	cmd.Flags().IntVar(&f.strength2, "strength2", 0, "quantization step of the second singular value, 0 disables (default with --seed: 20)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "per block workers, 0 means GOMAXPROCS")
}

func (f *codecFlags) watermarker(cmd *cobra.Command, logger *slog.Logger) (*bwm.Watermarker, error) {
	opts := []bwm.Option{
		bwm.WithStrength1(f.strength1),
		bwm.WithWorkers(f.workers),
		bwm.WithLogger(logger),
	}
	strength2 := f.strength2
	if cmd.Flags().Changed("seed") {
		opts = append(opts, bwm.WithSeed(f.seed))
		if cmd.Flags().Changed("strength2") != true {
			strength2 = bwm.SeededStrength2
		}
	}
	if 0 < strength2 {
		opts = append(opts, bwm.WithStrength2(strength2))
	}
	return bwm.New(opts...)
}
