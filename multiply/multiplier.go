// SPDX-License-Identifier: MIT

// Package multiply - sequential and parallel block matrix multiplication.
//
// Purpose:
//   - Compute C = A·B for square int32 matrices by splitting both operands into
//     block grids, accumulating C[i][j] = Σ_k A[i][k]·B[k][j], and merging C back.
//   - Sequential walks output cells in row-major order on the calling goroutine.
//   - Parallel computes each output cell as one independent dispatch.Task; the
//     k-loop of a cell never leaves its task.
//
// Determinism:
//   - Both algorithms are pure functions of their inputs: Parallel == Sequential
//     element-wise, for every block size.
//
// Concurrency:
//   - Tasks read the shared input grids and write only their own accumulator; the
//     single barrier is dispatch.Run returning.

package multiply

import (
	"github.com/katalvlaran/blockmat/block"
	"github.com/katalvlaran/blockmat/dispatch"
)

const (
	ctxSequential     = "Sequential"
	ctxParallel       = "Parallel"
	ctxSequentialGrid = "SequentialGrid"
	ctxParallelGrid   = "ParallelGrid"
	ctxNaive          = "Naive"
)

// Multiplier runs block multiplications. The zero value is not usable; call New.
type Multiplier struct {
	dispatcher *dispatch.Dispatcher
	owned      bool
}

// New creates a Multiplier. Unless WithDispatcher is given it creates and owns a
// Dispatcher sized by WithWorkers (default dispatch.DefaultWorkers()).
func New(opts ...Option) *Multiplier {
	o := gatherOptions(opts...)
	if o.dispatcher != nil {
		return &Multiplier{dispatcher: o.dispatcher}
	}

	var dopts []dispatch.Option
	if o.workers > 0 {
		dopts = append(dopts, dispatch.WithWorkers(o.workers))
	}

	return &Multiplier{dispatcher: dispatch.New(dopts...), owned: true}
}

// Workers returns the concurrency limit used by the parallel algorithm.
func (m *Multiplier) Workers() int {
	return m.dispatcher.Workers()
}

// Close releases the Multiplier's own Dispatcher. A borrowed Dispatcher is left open.
func (m *Multiplier) Close() {
	if m.owned {
		m.dispatcher.Close()
	}
}

// Sequential multiplies two flat n×n matrices using blocks of nominal size k,
// on the calling goroutine.
//
// Errors:
//   - block.ErrNotSquare if either length is not a perfect square.
//   - ErrShapeMismatch if the orders differ.
//   - block.ErrInvalidBlockSize if k <= 0 or k > n.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Multiplier) Sequential(first, second []int32, k int) ([]int32, error) {
	a, b, err := splitPair(first, second, k)
	if err != nil {
		return nil, multiplyErrorf(ctxSequential, err)
	}
	c, err := m.SequentialGrid(a, b)
	if err != nil {
		return nil, multiplyErrorf(ctxSequential, err)
	}
	out, err := block.Merge(c)
	if err != nil {
		return nil, multiplyErrorf(ctxSequential, err)
	}

	return out, nil
}

// Parallel is Sequential with one dispatched task per output block.
//
// Errors:
//   - everything Sequential returns.
//   - dispatch.ErrTaskFailed (wrapping the cause) if a block task fails.
//   - dispatch.ErrClosed if the Dispatcher has been closed.
func (m *Multiplier) Parallel(first, second []int32, k int) ([]int32, error) {
	a, b, err := splitPair(first, second, k)
	if err != nil {
		return nil, multiplyErrorf(ctxParallel, err)
	}
	c, err := m.ParallelGrid(a, b)
	if err != nil {
		return nil, multiplyErrorf(ctxParallel, err)
	}
	out, err := block.Merge(c)
	if err != nil {
		return nil, multiplyErrorf(ctxParallel, err)
	}

	return out, nil
}

// SequentialGrid multiplies two pre-split grids in row-major output order.
// MAIN DESCRIPTION:
//   - For each (i,j): acc = zero block shaped like first[i][j]; for k: acc += first[i][k]·second[k][j].
//
// Errors:
//   - ErrShapeMismatch if the grids differ in size (or either is nil).
//   - block.ErrDimensionMismatch if the grids were split with incompatible bands.
func (m *Multiplier) SequentialGrid(first, second *block.Grid) (*block.Grid, error) {
	if err := validateGrids(first, second); err != nil {
		return nil, multiplyErrorf(ctxSequentialGrid, err)
	}

	size := first.Size()
	cells := make([]*block.Block, size*size)
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			c, err := cellProduct(first, second, i, j)
			if err != nil {
				return nil, multiplyErrorf(ctxSequentialGrid, err)
			}
			cells[i*size+j] = c
		}
	}

	return block.NewGrid(cells)
}

// ParallelGrid is SequentialGrid with each output cell computed as its own task.
// Results are reassembled by (i,j) submission index, never by completion order.
func (m *Multiplier) ParallelGrid(first, second *block.Grid) (*block.Grid, error) {
	if err := validateGrids(first, second); err != nil {
		return nil, multiplyErrorf(ctxParallelGrid, err)
	}

	size := first.Size()
	tasks := make([]dispatch.Task[*block.Block], size*size)
	for idx := range tasks {
		i, j := idx/size, idx%size
		tasks[idx] = func() (*block.Block, error) {
			return cellProduct(first, second, i, j)
		}
	}

	cells, err := dispatch.Run(m.dispatcher, tasks)
	if err != nil {
		return nil, multiplyErrorf(ctxParallelGrid, err)
	}

	return block.NewGrid(cells)
}

// cellProduct computes output block (i,j) = Σ_k first[i][k]·second[k][j].
// The accumulator takes the shape of first[i][j]; with both operands split at the
// same order and block size that is exactly (row band i) × (column band j).
func cellProduct(first, second *block.Grid, i, j int) (*block.Block, error) {
	rows, cols := first.Shape(i, j)
	acc, err := block.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := 0; k < first.Size(); k++ {
		if err = block.AccumulateProduct(acc, first.At(i, k), second.At(k, j)); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// splitPair validates the flat operands and splits both with block size k.
func splitPair(first, second []int32, k int) (*block.Grid, *block.Grid, error) {
	if err := validateFlat(first, second); err != nil {
		return nil, nil, err
	}
	a, err := block.Split(first, k)
	if err != nil {
		return nil, nil, err
	}
	b, err := block.Split(second, k)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// validateFlat checks both operands are square and of equal order.
func validateFlat(first, second []int32) error {
	na, err := block.Order(first)
	if err != nil {
		return err
	}
	nb, err := block.Order(second)
	if err != nil {
		return err
	}
	if na != nb {
		return ErrShapeMismatch
	}

	return nil
}

func validateGrids(first, second *block.Grid) error {
	if first == nil || second == nil || first.Size() != second.Size() {
		return ErrShapeMismatch
	}

	return nil
}
