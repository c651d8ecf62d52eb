package multiply

import "github.com/katalvlaran/blockmat/block"

// Naive returns the unblocked product of two flat n×n matrices with the plain
// O(n³) triple loop. It is the reference the blocked algorithms are checked against.
//
// Errors:
//   - block.ErrNotSquare if either length is not a perfect square.
//   - ErrShapeMismatch if the orders differ.
func Naive(first, second []int32) ([]int32, error) {
	if err := validateFlat(first, second); err != nil {
		return nil, multiplyErrorf(ctxNaive, err)
	}
	n, _ := block.Order(first)

	out := make([]int32, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var sum int32
			for k = 0; k < n; k++ {
				sum += first[i*n+k] * second[k*n+j]
			}
			out[i*n+j] = sum
		}
	}

	return out, nil
}
