// SPDX-License-Identifier: MIT

// Package dispatch runs batches of independent tasks with bounded concurrency
// and collects their results in submission order.
//
// A Dispatcher is created once by its owner and reused across many batches:
//
//	d := dispatch.New(dispatch.WithWorkers(16))
//	defer d.Close()
//
//	results, err := dispatch.Run(d, tasks)
//
// Ordering:
//   - results[i] is the value returned by tasks[i]; completion order never matters.
//
// Failure:
//   - The first failing task fails the whole batch. Tasks that have not started yet
//     are skipped; tasks already running finish and their results are discarded.
//   - A panicking task is recovered and reported like a failure.
package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Task computes one result. Tasks of a batch must not share mutable state.
type Task[T any] func() (T, error)

// Dispatcher bounds the number of tasks executing at once.
// It is safe for concurrent use. The bound is shared: concurrent batches on the
// same Dispatcher together never run more than Workers() tasks.
type Dispatcher struct {
	workers int
	sem     *semaphore.Weighted // one slot per running task, across all batches
	closed  atomic.Bool
}

// New creates a Dispatcher. Without options it runs DefaultWorkers() tasks at once.
func New(opts ...Option) *Dispatcher {
	o := gatherOptions(opts...)

	return &Dispatcher{
		workers: o.workers,
		sem:     semaphore.NewWeighted(int64(o.workers)),
	}
}

// Workers returns the concurrency limit.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Close marks the Dispatcher closed; later Run calls fail with ErrClosed.
// Batches already running complete normally. Calling Close more than once is safe.
func (d *Dispatcher) Close() {
	d.closed.Store(true)
}

// Closed reports whether Close has been called.
func (d *Dispatcher) Closed() bool {
	return d.closed.Load()
}

// Run executes every task on d and blocks until all of them have finished.
// MAIN DESCRIPTION:
//   - Fan-out: every task holds one of d's Workers() slots while it runs, so
//     concurrent Run calls on the same d share the bound.
//   - Fan-in: results are stored by submission index.
//
// Errors:
//   - ErrClosed if d has been closed.
//   - ErrTaskFailed wrapping the first task error; no partial results are returned.
//
// Complexity:
//   - O(len(tasks)) scheduling overhead plus the tasks themselves.
func Run[T any](d *Dispatcher, tasks []Task[T]) ([]T, error) {
	if d.Closed() {
		return nil, fmt.Errorf("Run: %w", ErrClosed)
	}

	results := make([]T, len(tasks))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(d.workers)
	for i, task := range tasks {
		g.Go(func() error {
			// Acquire fails only once a sibling has failed: the batch is lost, skip the work
			if err := d.sem.Acquire(ctx, 1); err != nil {
				return nil
			}
			defer d.sem.Release(1)
			if ctx.Err() != nil {
				return nil
			}
			v, err := call(task)
			if err != nil {
				return fmt.Errorf("Run: task %d: %w: %w", i, ErrTaskFailed, err)
			}
			results[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// call invokes task, converting a panic into an error.
func call[T any](task Task[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return task()
}
