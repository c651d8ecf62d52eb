// SPDX-License-Identifier: MIT
// Package multiply: sentinel error set.
//
// Errors from the block and dispatch packages (ErrInvalidBlockSize,
// ErrDimensionMismatch, ErrTaskFailed, ...) pass through wrapped, so callers
// match them with errors.Is against their own packages' sentinels.

package multiply

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates operands of different order (flat matrices) or of
// different grid size (block grids).
var ErrShapeMismatch = errors.New("multiply: shape mismatch")

// multiplyErrorf attaches an operation tag to an error.
func multiplyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
