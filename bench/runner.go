// SPDX-License-Identifier: MIT

// Package bench times the sequential and parallel block algorithms over a list of
// experiment cases and reports the results.
//
// For every case the Runner generates two n×n matrices, splits both once, then
// times SequentialGrid followed by ParallelGrid on the same pre-split grids, so
// decomposition cost is excluded from both timings.
package bench

import (
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/blockmat/block"
	"github.com/katalvlaran/blockmat/generator"
	"github.com/katalvlaran/blockmat/multiply"
)

// Row is the measurement of one case.
type Row struct {
	N          int
	BlockSize  int
	Sequential time.Duration
	Parallel   time.Duration
}

// SequentialMillis returns the sequential time in whole milliseconds.
func (r Row) SequentialMillis() int64 { return r.Sequential.Milliseconds() }

// ParallelMillis returns the parallel time in whole milliseconds.
func (r Row) ParallelMillis() int64 { return r.Parallel.Milliseconds() }

// Speedup returns Sequential/Parallel, or 0 when the parallel time is zero.
func (r Row) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}

	return float64(r.Sequential) / float64(r.Parallel)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithVerify makes the Runner compare the sequential and parallel results of every case.
func WithVerify(on bool) RunnerOption {
	return func(r *Runner) { r.verify = on }
}

// Runner executes cases. It is not safe for concurrent use (the generator is not).
type Runner struct {
	mul    *multiply.Multiplier
	gen    *generator.Generator
	verify bool
}

// NewRunner creates a Runner over mul and gen. Both must be non-nil.
func NewRunner(mul *multiply.Multiplier, gen *generator.Generator, opts ...RunnerOption) *Runner {
	r := &Runner{mul: mul, gen: gen}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run measures every case in order. It stops at the first failing case.
func (r *Runner) Run(cases []Case) ([]Row, error) {
	rows := make([]Row, 0, len(cases))
	for i, c := range cases {
		row, err := r.RunCase(c)
		if err != nil {
			return nil, fmt.Errorf("Run: case %d: %w", i, err)
		}
		klog.V(1).Infof("case %d/%d: n=%d block_size=%d sequential=%s parallel=%s",
			i+1, len(cases), row.N, row.BlockSize, row.Sequential, row.Parallel)
		rows = append(rows, row)
	}

	return rows, nil
}

// RunCase measures a single case.
func (r *Runner) RunCase(c Case) (Row, error) {
	if err := c.Validate(); err != nil {
		return Row{}, err
	}
	first, err := block.Split(r.gen.Square(c.N), c.BlockSize)
	if err != nil {
		return Row{}, err
	}
	second, err := block.Split(r.gen.Square(c.N), c.BlockSize)
	if err != nil {
		return Row{}, err
	}

	start := time.Now()
	seq, err := r.mul.SequentialGrid(first, second)
	if err != nil {
		return Row{}, err
	}
	seqElapsed := time.Since(start)

	start = time.Now()
	par, err := r.mul.ParallelGrid(first, second)
	if err != nil {
		return Row{}, err
	}
	parElapsed := time.Since(start)

	if r.verify && !seq.Equal(par) {
		return Row{}, fmt.Errorf("n=%d block_size=%d: %w", c.N, c.BlockSize, ErrMismatch)
	}

	return Row{N: c.N, BlockSize: c.BlockSize, Sequential: seqElapsed, Parallel: parElapsed}, nil
}
