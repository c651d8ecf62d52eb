// SPDX-License-Identifier: MIT

// Package block - Block storage (row-major) & constructors.
//
// Purpose:
//   - Describe one rectangular tile of a square matrix together with its own storage.
//   - Guarantee that a Block never aliases the storage of another Block or of the
//     flat matrix it was cut from.
//   - Keep the index formula explicit: offset = i*cols + j.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; NewFromValues: O(1); At: O(1); Clone: O(r*c).

package block

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Block is a rows×cols tile of int32 values stored row-major.
//   - rows, cols are positive.
//   - values has length rows*cols and is owned by this Block.
type Block struct {
	rows, cols int     // tile dimensions (>0)
	values     []int32 // contiguous row-major storage (len == rows*cols)
}

var _ fmt.Stringer = (*Block)(nil)

// New allocates a zero-filled rows×cols Block.
// MAIN DESCRIPTION:
//   - Public constructor used by the decomposer and by accumulating algorithms.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Block, error) {
	if rows <= 0 || cols <= 0 {
		return nil, blockErrorf("New", ErrInvalidShape)
	}

	return &Block{rows: rows, cols: cols, values: make([]int32, rows*cols)}, nil
}

// NewFromValues wraps values as a rows×cols Block.
// The slice is taken over by the Block: callers must not retain or mutate it.
//
// Errors:
//   - ErrInvalidShape if rows/cols are not positive or len(values) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewFromValues(rows, cols int, values []int32) (*Block, error) {
	if rows <= 0 || cols <= 0 || len(values) != rows*cols {
		return nil, blockErrorf("NewFromValues", ErrInvalidShape)
	}

	return &Block{rows: rows, cols: cols, values: values}, nil
}

// Rows returns the number of rows in the tile.
func (b *Block) Rows() int { return b.rows }

// Cols returns the number of columns in the tile.
func (b *Block) Cols() int { return b.cols }

// Values returns a copy of the row-major storage.
// Complexity: O(r*c).
func (b *Block) Values() []int32 {
	out := make([]int32, len(b.values))
	copy(out, b.values)

	return out
}

// At returns the element at (i, j). Indices are not bounds-checked beyond the
// runtime's slice check; use it from loops that already respect Rows/Cols.
func (b *Block) At(i, j int) int32 {
	return b.values[i*b.cols+j]
}

// Clone returns a deep copy of the Block.
// Complexity: O(r*c) time and memory.
func (b *Block) Clone() *Block {
	return &Block{rows: b.rows, cols: b.cols, values: b.Values()}
}

// Equal reports whether b and o have the same shape and elements.
// A nil Block only equals another nil Block.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}

	return Equal(b.values, o.values)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (b *Block) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < b.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < b.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", b.values[i*b.cols+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
