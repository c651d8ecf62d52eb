// SPDX-License-Identifier: MIT

// Package block - BlockGrid & the decomposer (Split / Merge).
//
// Purpose:
//   - Split a flat n×n matrix into a ceil(n/k)×ceil(n/k) grid of owned Blocks.
//   - Merge a grid back into a flat matrix; Merge(Split(M, k)) == M for every valid k.
//
// Shape rule:
//   - Band t (row band or column band) starts at t*k and spans k elements, except the
//     last band when n%k != 0, which spans n%k. Edge tiles are ragged, never padded.
//   - A grid position never stores its own offset: offsets are the cumulative sums of
//     the band extents, recovered from each block's Rows/Cols.
//
// Complexity quicksheet:
//   - Split: O(n²) copy; Merge: O(n²) copy + O(size²) validation.

package block

const (
	ctxSplit   = "Split"
	ctxMerge   = "Merge"
	ctxNewGrid = "NewGrid"
)

// Grid is a square, row-major arrangement of Blocks.
// Invariant (checked by Validate): all blocks on grid row i share Rows, all blocks
// on grid column j share Cols.
type Grid struct {
	size  int      // blocks per grid row/column
	cells []*Block // row-major: cell (i,j) at i*size+j
}

// NewGrid arranges cells (row-major) into a square Grid.
// The grid takes over the slice; blocks are not copied.
//
// Errors:
//   - ErrInvalidGrid if len(cells) is zero or not a perfect square.
//   - ErrNilBlock if any cell is nil.
func NewGrid(cells []*Block) (*Grid, error) {
	size, ok := isqrt(len(cells))
	if !ok || size == 0 {
		return nil, blockErrorf(ctxNewGrid, ErrInvalidGrid)
	}
	for _, c := range cells {
		if c == nil {
			return nil, blockErrorf(ctxNewGrid, ErrNilBlock)
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the number of blocks per grid row (and column).
func (g *Grid) Size() int { return g.size }

// Len returns the total number of blocks, Size()².
func (g *Grid) Len() int { return len(g.cells) }

// At returns the block at grid position (i, j).
func (g *Grid) At(i, j int) *Block { return g.cells[i*g.size+j] }

// Shape returns the (rows, cols) of the block at grid position (i, j).
func (g *Grid) Shape(i, j int) (rows, cols int) {
	b := g.At(i, j)

	return b.rows, b.cols
}

// Cells returns the blocks in row-major order. The slice is a copy; the blocks
// are shared.
func (g *Grid) Cells() []*Block {
	out := make([]*Block, len(g.cells))
	copy(out, g.cells)

	return out
}

// Order returns the order n of the matrix the grid tiles: the sum of Cols along
// the first grid row.
func (g *Grid) Order() int {
	n := 0
	for j := 0; j < g.size; j++ {
		n += g.cells[j].cols
	}

	return n
}

// Equal reports whether both grids have the same size and pairwise-equal blocks.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Validate checks the band-homogeneity invariant.
//
// Errors:
//   - ErrInvalidGrid if some block on row band i differs in Rows from (i,0), or some
//     block on column band j differs in Cols from (0,j), or the row extents and the
//     column extents do not sum to the same order.
//
// Complexity:
//   - Time O(size²), Space O(1).
func (g *Grid) Validate() error {
	var i, j, rowsSum, colsSum int
	for i = 0; i < g.size; i++ {
		bandRows := g.At(i, 0).rows
		rowsSum += bandRows
		colsSum += g.At(0, i).cols
		for j = 0; j < g.size; j++ {
			r, c := g.Shape(i, j)
			if r != bandRows || c != g.At(0, j).cols {
				return blockErrorf("Validate", ErrInvalidGrid)
			}
		}
	}
	if rowsSum != colsSum {
		return blockErrorf("Validate", ErrInvalidGrid)
	}

	return nil
}

// Split cuts the flat n×n matrix into a grid of owned blocks of nominal size k.
// MAIN DESCRIPTION:
//   - gridSize = ceil(n/k); band t spans min(k, n-t*k) elements.
//   - Every block receives a fresh copy of its region; the source is never aliased.
//
// Errors:
//   - ErrNotSquare if len(flat) is not a perfect square.
//   - ErrInvalidBlockSize if k <= 0 or k > n.
//
// Determinism:
//   - Equal inputs yield structurally equal grids.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Split(flat []int32, k int) (*Grid, error) {
	n, err := Order(flat)
	if err != nil {
		return nil, blockErrorf(ctxSplit, err)
	}
	if k <= 0 || k > n {
		return nil, blockErrorf(ctxSplit, ErrInvalidBlockSize)
	}

	size := (n + k - 1) / k
	cells := make([]*Block, size*size)
	var bi, bj, r int
	for bi = 0; bi < size; bi++ {
		r0 := bi * k
		rows := bandExtent(n, k, bi)
		for bj = 0; bj < size; bj++ {
			c0 := bj * k
			cols := bandExtent(n, k, bj)
			vals := make([]int32, rows*cols)
			for r = 0; r < rows; r++ {
				src := (r0+r)*n + c0
				copy(vals[r*cols:(r+1)*cols], flat[src:src+cols])
			}
			cells[bi*size+bj] = &Block{rows: rows, cols: cols, values: vals}
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

// Merge writes every block of g back into a fresh flat matrix.
//
// Errors:
//   - ErrInvalidGrid for a nil or empty grid.
//   - ErrInvalidGrid when the band-homogeneity invariant does not hold.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Merge(g *Grid) ([]int32, error) {
	if g == nil || g.size == 0 {
		return nil, blockErrorf(ctxMerge, ErrInvalidGrid)
	}
	if err := g.Validate(); err != nil {
		return nil, blockErrorf(ctxMerge, err)
	}

	n := g.Order()
	out := make([]int32, n*n)
	var bi, bj, r int
	r0 := 0
	for bi = 0; bi < g.size; bi++ {
		c0 := 0
		for bj = 0; bj < g.size; bj++ {
			b := g.At(bi, bj)
			for r = 0; r < b.rows; r++ {
				dst := (r0+r)*n + c0
				copy(out[dst:dst+b.cols], b.values[r*b.cols:(r+1)*b.cols])
			}
			c0 += b.cols
		}
		r0 += g.At(bi, 0).rows
	}

	return out, nil
}

// MergeBlocks is Merge over a row-major slice of blocks.
func MergeBlocks(cells []*Block) ([]int32, error) {
	g, err := NewGrid(cells)
	if err != nil {
		return nil, blockErrorf(ctxMerge, err)
	}

	return Merge(g)
}

// bandExtent returns the length of band t for order n and nominal size k.
func bandExtent(n, k, t int) int {
	if (t+1)*k <= n {
		return k
	}

	return n % k
}
