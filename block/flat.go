// Package block provides helpers over flat row-major matrices.
package block

import (
	"math"
	"slices"
)

// Order returns n for a flat n×n matrix, or ErrNotSquare when len(flat) is not
// a perfect square.
//
// Time Complexity: O(1)
func Order(flat []int32) (int, error) {
	n, ok := isqrt(len(flat))
	if !ok {
		return 0, blockErrorf("Order", ErrNotSquare)
	}

	return n, nil
}

// isqrt returns floor(sqrt(v)) and whether v is a perfect square.
func isqrt(v int) (int, bool) {
	n := int(math.Sqrt(float64(v)))
	// float rounding may be off by one for large v
	for n*n > v {
		n--
	}
	for (n+1)*(n+1) <= v {
		n++
	}

	return n, n*n == v
}

// ToRows copies a flat m×n row-major matrix into a slice of rows.
// Returns ErrInvalidShape when len(flat) != m*n.
//
// Time Complexity: O(m*n)
func ToRows(flat []int32, m, n int) ([][]int32, error) {
	if m < 0 || n < 0 || len(flat) != m*n {
		return nil, blockErrorf("ToRows", ErrInvalidShape)
	}
	out := make([][]int32, m)
	for i := range out {
		out[i] = make([]int32, n)
		copy(out[i], flat[i*n:(i+1)*n])
	}

	return out, nil
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal(a, b []int32) bool {
	return slices.Equal(a, b)
}
