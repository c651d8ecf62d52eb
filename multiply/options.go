// SPDX-License-Identifier: MIT

// Package multiply: functional configuration.
//
// A Multiplier either owns its Dispatcher (created from WithWorkers, closed by
// Multiplier.Close) or borrows one passed with WithDispatcher (never closed by
// the Multiplier). WithDispatcher wins when both are given.

package multiply

import "github.com/katalvlaran/blockmat/dispatch"

const (
	panicWorkersInvalid    = "multiply: WithWorkers: n must be > 0"
	panicDispatcherInvalid = "multiply: WithDispatcher: dispatcher must be non-nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers    int                  // 0 ⇒ dispatch.DefaultWorkers()
	dispatcher *dispatch.Dispatcher // borrowed; nil ⇒ owned one is created
}

// WithWorkers sets the worker count of the Multiplier's own Dispatcher.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithDispatcher makes the Multiplier run parallel work on d.
// The caller keeps ownership of d. Panics if d is nil.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	if d == nil {
		panic(panicDispatcherInvalid)
	}

	return func(o *Options) { o.dispatcher = d }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
