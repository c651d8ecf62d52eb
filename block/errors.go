// SPDX-License-Identifier: MIT
// Package block: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Call sites attach context with fmt.Errorf("<Op>: %w", ErrX).
//   - No function in this package panics on user-supplied data.

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a Block's backing storage length does not
	// equal rows*cols, or when rows/cols are not positive.
	ErrInvalidShape = errors.New("block: invalid shape")

	// ErrInvalidBlockSize indicates a block size that is not positive or exceeds
	// the order of the matrix being split.
	ErrInvalidBlockSize = errors.New("block: block size can't be greater than matrix size")

	// ErrDimensionMismatch indicates incompatible operands: a.Cols != b.Rows for
	// Multiply, or different shapes for Add.
	ErrDimensionMismatch = errors.New("block: dimension mismatch")

	// ErrInvalidGrid indicates a grid whose bands are not size-homogeneous, or
	// whose cell count does not form a square grid.
	ErrInvalidGrid = errors.New("block: invalid grid")

	// ErrNotSquare indicates a flat sequence whose length is not a perfect square.
	ErrNotSquare = errors.New("block: flat matrix is not square")

	// ErrNilBlock indicates a nil *Block argument or grid cell.
	ErrNilBlock = errors.New("block: nil block")
)

// blockErrorf attaches an operation tag to a sentinel.
func blockErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
