package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/blockmat/bench"
	"github.com/katalvlaran/blockmat/generator"
	"github.com/katalvlaran/blockmat/multiply"
)

var errNoCases = errors.New("no cases: pass --params or a --config with cases")

type runFlags struct {
	params  string
	config  string
	out     string
	workers int
	seed    int64
	verify  bool
	summary bool
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every case of a parameters file or plan and write the results CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := resolvePlan(cmd, f)
			if err != nil {
				return err
			}

			return runPlan(cmd, plan, f.summary)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.params, "params", "", "parameters file (size_of_matrix;block_size per line, header first)")
	fl.StringVar(&f.config, "config", "", "YAML plan file")
	fl.StringVar(&f.out, "out", "", "results CSV path (default "+bench.DefaultOutput+")")
	fl.IntVar(&f.workers, "workers", 0, "parallel workers (default: number of logical CPUs)")
	fl.Int64Var(&f.seed, "seed", generator.DefaultSeed, "matrix generator seed")
	fl.BoolVar(&f.verify, "verify", false, "check that sequential and parallel results agree")
	fl.BoolVar(&f.summary, "summary", true, "print a summary table to stdout")

	return cmd
}

// resolvePlan loads the plan file (if any) and lets explicit flags override it.
func resolvePlan(cmd *cobra.Command, f runFlags) (*bench.Plan, error) {
	plan := &bench.Plan{Seed: generator.DefaultSeed}
	if f.config != "" {
		p, err := bench.LoadPlan(f.config)
		if err != nil {
			return nil, err
		}
		plan = p
	}
	if f.params != "" {
		file, err := os.Open(f.params)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		cases, err := bench.ReadCases(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.params, err)
		}
		plan.Cases = cases
	}

	fl := cmd.Flags()
	if fl.Changed("out") {
		plan.Output = f.out
	}
	if fl.Changed("workers") {
		if f.workers <= 0 {
			return nil, fmt.Errorf("--workers must be > 0, got %d", f.workers)
		}
		plan.Workers = f.workers
	}
	if fl.Changed("seed") {
		plan.Seed = f.seed
	}
	if fl.Changed("verify") {
		plan.Verify = f.verify
	}
	if len(plan.Cases) == 0 {
		return nil, errNoCases
	}

	return plan, nil
}

func runPlan(cmd *cobra.Command, plan *bench.Plan, summary bool) error {
	var mopts []multiply.Option
	if plan.Workers > 0 {
		mopts = append(mopts, multiply.WithWorkers(plan.Workers))
	}
	mul := multiply.New(mopts...)
	defer mul.Close()

	min, max := plan.Range()
	gen := generator.New(generator.WithSeed(plan.Seed), generator.WithUniform(min, max))

	klog.Infof("host: %s", bench.Host())
	klog.Infof("running %d cases with %d workers (seed=%d, verify=%t)",
		len(plan.Cases), mul.Workers(), plan.Seed, plan.Verify)

	rows, err := bench.NewRunner(mul, gen, bench.WithVerify(plan.Verify)).Run(plan.Cases)
	if err != nil {
		return err
	}

	out := plan.OutputPath()
	if err = writeResults(out, rows); err != nil {
		return err
	}
	klog.Infof("wrote %d rows to %s", len(rows), out)

	if summary {
		return bench.Summary(cmd.OutOrStdout(), rows)
	}

	return nil
}

func writeResults(path string, rows []bench.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = bench.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
