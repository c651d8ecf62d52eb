package block_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmat/block"
	"github.com/stretchr/testify/require"
)

// mustBlock builds a rows×cols Block from values or fails the test.
func mustBlock(t testing.TB, rows, cols int, values ...int32) *block.Block {
	t.Helper()
	b, err := block.NewFromValues(rows, cols, values)
	require.NoError(t, err)

	return b
}

// TestAddSameShape checks the element-wise sum of two 4×3 blocks.
func TestAddSameShape(t *testing.T) {
	a := mustBlock(t, 4, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	b := mustBlock(t, 4, 3, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)

	sum, err := block.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, sum.Rows())
	require.Equal(t, 3, sum.Cols())
	for _, v := range sum.Values() {
		require.Equal(t, int32(13), v)
	}
	// operands are untouched
	require.Equal(t, int32(1), a.At(0, 0))
}

// TestAddDimensionMismatch checks that a 4×3 and a 3×3 block cannot be added.
func TestAddDimensionMismatch(t *testing.T) {
	a, err := block.New(4, 3)
	require.NoError(t, err)
	b, err := block.New(3, 3)
	require.NoError(t, err)

	_, err = block.Add(a, b)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
}

func TestAddNil(t *testing.T) {
	a, _ := block.New(1, 1)
	_, err := block.Add(a, nil)
	require.ErrorIs(t, err, block.ErrNilBlock)
}

// TestMultiplyRectangular multiplies a 2×3 by a 3×2 block.
func TestMultiplyRectangular(t *testing.T) {
	a := mustBlock(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustBlock(t, 3, 2, 7, 8, 9, 10, 11, 12)

	p, err := block.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	// [1 2 3]·[7 9 11]ᵀ = 58, [1 2 3]·[8 10 12]ᵀ = 64, ...
	require.Equal(t, []int32{58, 64, 139, 154}, p.Values())
}

func TestMultiplyDimensionMismatch(t *testing.T) {
	a, _ := block.New(2, 3)
	b, _ := block.New(2, 3)
	_, err := block.Multiply(a, b)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
}

// TestMultiplyWraps verifies int32 wrap-around instead of overflow detection.
func TestMultiplyWraps(t *testing.T) {
	a := mustBlock(t, 1, 1, math.MaxInt32)
	b := mustBlock(t, 1, 1, 2)

	p, err := block.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, int32(-2), p.At(0, 0))
}

// TestAccumulateProductMatchesAddMultiply checks acc += a·b against Add(acc, Multiply(a, b)).
func TestAccumulateProductMatchesAddMultiply(t *testing.T) {
	acc := mustBlock(t, 2, 2, 1, 1, 1, 1)
	a := mustBlock(t, 2, 3, 1, -2, 3, 0, 4, -1)
	b := mustBlock(t, 3, 2, 2, 0, 1, 5, -3, 2)

	prod, err := block.Multiply(a, b)
	require.NoError(t, err)
	want, err := block.Add(acc, prod)
	require.NoError(t, err)

	require.NoError(t, block.AccumulateProduct(acc, a, b))
	require.True(t, want.Equal(acc), "got\n%s want\n%s", acc, want)
}

func TestAccumulateProductShapeChecks(t *testing.T) {
	a, _ := block.New(2, 3)
	b, _ := block.New(3, 4)

	bad, _ := block.New(2, 3)
	require.ErrorIs(t, block.AccumulateProduct(bad, a, b), block.ErrDimensionMismatch)

	acc, _ := block.New(2, 4)
	require.ErrorIs(t, block.AccumulateProduct(acc, b, a), block.ErrDimensionMismatch)
	require.ErrorIs(t, block.AccumulateProduct(nil, a, b), block.ErrNilBlock)
	require.NoError(t, block.AccumulateProduct(acc, a, b))
}
