// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import "errors"

var (
	// ErrBadCase indicates a malformed or out-of-range (n, block size) case.
	ErrBadCase = errors.New("bench: invalid case")

	// ErrMismatch indicates that the sequential and parallel results of a verified
	// case differ.
	ErrMismatch = errors.New("bench: sequential and parallel results differ")
)
