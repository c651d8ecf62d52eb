// SPDX-License-Identifier: MIT

// Package dispatch: functional configuration.
//
// Defaults:
//   - workers = runtime.NumCPU(): one concurrently running task per logical core.

package dispatch

import "runtime"

const panicWorkersInvalid = "dispatch: WithWorkers: n must be > 0"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // > 0
}

// DefaultWorkers returns the default concurrency limit: the number of logical CPUs.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// WithWorkers sets the maximum number of concurrently executing tasks.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
