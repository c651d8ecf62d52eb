// SPDX-License-Identifier: MIT

// Package block - block-level algebra.
//
// Purpose:
//   - Multiply and Add are pure: they validate shapes and always allocate a fresh result.
//   - AccumulateProduct is the single in-place kernel; it mutates only the accumulator
//     passed by its owner, never an operand.
//
// Numeric policy:
//   - int32 arithmetic wraps on overflow; no overflow checks are performed.
//
// Determinism:
//   - Fixed i-k-j loop order; wrapping int32 sums are order-independent, so results
//     match any other summation order bit for bit.

package block

const (
	ctxMultiply   = "Multiply"
	ctxAdd        = "Add"
	ctxAccumulate = "AccumulateProduct"
)

// Multiply returns the (a.Rows × b.Cols) product a·b.
// MAIN DESCRIPTION:
//   - Standard inner product result[i][j] = Σ_k a[i][k]*b[k][j].
//
// Errors:
//   - ErrNilBlock if a or b is nil.
//   - ErrDimensionMismatch if a.Cols != b.Rows.
//
// Complexity:
//   - Time O(a.Rows*a.Cols*b.Cols), Space O(a.Rows*b.Cols).
func Multiply(a, b *Block) (*Block, error) {
	if a == nil || b == nil {
		return nil, blockErrorf(ctxMultiply, ErrNilBlock)
	}
	if a.cols != b.rows {
		return nil, blockErrorf(ctxMultiply, ErrDimensionMismatch)
	}
	out := &Block{rows: a.rows, cols: b.cols, values: make([]int32, a.rows*b.cols)}
	mulAdd(out, a, b)

	return out, nil
}

// Add returns the element-wise sum a+b as a new Block.
//
// Errors:
//   - ErrNilBlock if a or b is nil.
//   - ErrDimensionMismatch if the shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Block) (*Block, error) {
	if a == nil || b == nil {
		return nil, blockErrorf(ctxAdd, ErrNilBlock)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, blockErrorf(ctxAdd, ErrDimensionMismatch)
	}
	out := make([]int32, len(a.values))
	for i := range out {
		out[i] = a.values[i] + b.values[i]
	}

	return &Block{rows: a.rows, cols: a.cols, values: out}, nil
}

// AccumulateProduct adds a·b into acc in place: acc += a·b.
// It is equivalent to acc = Add(acc, Multiply(a, b)) without the two temporaries.
// The caller must own acc exclusively for the duration of the call.
//
// Errors:
//   - ErrNilBlock if any argument is nil.
//   - ErrDimensionMismatch if a.Cols != b.Rows, or acc is not a.Rows × b.Cols.
//
// Complexity:
//   - Time O(a.Rows*a.Cols*b.Cols), Space O(1).
func AccumulateProduct(acc, a, b *Block) error {
	if acc == nil || a == nil || b == nil {
		return blockErrorf(ctxAccumulate, ErrNilBlock)
	}
	if a.cols != b.rows {
		return blockErrorf(ctxAccumulate, ErrDimensionMismatch)
	}
	if acc.rows != a.rows || acc.cols != b.cols {
		return blockErrorf(ctxAccumulate, ErrDimensionMismatch)
	}
	mulAdd(acc, a, b)

	return nil
}

// mulAdd performs dst += a·b with shapes already validated.
// The i-k-j order walks both b and dst rows contiguously.
func mulAdd(dst, a, b *Block) {
	var i, j, k int
	for i = 0; i < a.rows; i++ {
		dRow := dst.values[i*dst.cols : (i+1)*dst.cols]
		aRow := a.values[i*a.cols : (i+1)*a.cols]
		for k = 0; k < a.cols; k++ {
			aik := aRow[k]
			if aik == 0 {
				continue
			}
			bRow := b.values[k*b.cols : (k+1)*b.cols]
			for j = range dRow {
				dRow[j] += aik * bRow[j]
			}
		}
	}
}
