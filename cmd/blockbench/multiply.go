package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/blockmat/block"
	"github.com/katalvlaran/blockmat/generator"
	"github.com/katalvlaran/blockmat/multiply"
)

var errResultsDiffer = errors.New("sequential and parallel results differ")

func newMultiplyCmd() *cobra.Command {
	var (
		n, k, workers int
		seed          int64
	)
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply two random n×n matrices both ways and print the timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var mopts []multiply.Option
			if workers > 0 {
				mopts = append(mopts, multiply.WithWorkers(workers))
			}
			mul := multiply.New(mopts...)
			defer mul.Close()

			gen := generator.New(generator.WithSeed(seed))
			first, second := gen.Square(n), gen.Square(n)

			start := time.Now()
			seq, err := mul.Sequential(first, second, k)
			if err != nil {
				return err
			}
			seqElapsed := time.Since(start)

			start = time.Now()
			par, err := mul.Parallel(first, second, k)
			if err != nil {
				return err
			}
			parElapsed := time.Since(start)

			if !block.Equal(seq, par) {
				return errResultsDiffer
			}
			klog.V(1).Infof("n=%d block_size=%d workers=%d", n, k, mul.Workers())
			fmt.Fprintf(cmd.OutOrStdout(), "n=%d block_size=%d sequential=%s parallel=%s\n",
				n, k, seqElapsed, parElapsed)

			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&n, "n", 256, "matrix order")
	fl.IntVar(&k, "block-size", 32, "nominal block size")
	fl.IntVar(&workers, "workers", 0, "parallel workers (default: number of logical CPUs)")
	fl.Int64Var(&seed, "seed", generator.DefaultSeed, "matrix generator seed")

	return cmd
}
