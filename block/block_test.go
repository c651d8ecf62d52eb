// Package block_test contains unit tests for Block construction and ownership.
package block_test

import (
	"testing"

	"github.com/katalvlaran/blockmat/block"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidShape ensures New rejects non-positive dimensions.
func TestNewInvalidShape(t *testing.T) {
	_, err := block.New(0, 3)
	require.ErrorIs(t, err, block.ErrInvalidShape)

	_, err = block.New(3, -1)
	require.ErrorIs(t, err, block.ErrInvalidShape)
}

// TestNewZeroFilled verifies the shape and zero fill of a fresh Block.
func TestNewZeroFilled(t *testing.T) {
	b, err := block.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())
	require.Equal(t, []int32{0, 0, 0, 0, 0, 0}, b.Values())
}

// TestNewFromValuesLengthChecked ensures the backing slice length must equal rows*cols.
func TestNewFromValuesLengthChecked(t *testing.T) {
	_, err := block.NewFromValues(2, 2, []int32{1, 2, 3})
	require.ErrorIs(t, err, block.ErrInvalidShape)

	b, err := block.NewFromValues(2, 2, []int32{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, int32(3), b.At(1, 0))
}

// TestValuesIsCopy ensures callers cannot mutate a Block through Values().
func TestValuesIsCopy(t *testing.T) {
	b, err := block.NewFromValues(1, 2, []int32{5, 6})
	require.NoError(t, err)

	v := b.Values()
	v[0] = 99
	require.Equal(t, int32(5), b.At(0, 0))
}

// TestCloneIndependence ensures Clone returns a Block with its own storage.
func TestCloneIndependence(t *testing.T) {
	b, err := block.NewFromValues(1, 1, []int32{7})
	require.NoError(t, err)

	c := b.Clone()
	require.True(t, b.Equal(c))
	require.NotSame(t, b, c)
}

func TestEqual(t *testing.T) {
	a, _ := block.NewFromValues(1, 2, []int32{1, 2})
	b, _ := block.NewFromValues(2, 1, []int32{1, 2})
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	var n *block.Block
	require.True(t, n.Equal(nil))
}

func TestString(t *testing.T) {
	b, err := block.NewFromValues(2, 2, []int32{1, -2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[1, -2]\n[3, 4]\n", b.String())
}

func TestOrder(t *testing.T) {
	n, err := block.Order(make([]int32, 49))
	require.NoError(t, err)
	require.Equal(t, 7, n)

	n, err = block.Order(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = block.Order(make([]int32, 10))
	require.ErrorIs(t, err, block.ErrNotSquare)
}

func TestToRows(t *testing.T) {
	rows, err := block.ToRows([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int32{{1, 2, 3}, {4, 5, 6}}, rows)

	_, err = block.ToRows([]int32{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, block.ErrInvalidShape)
}

func TestEqualFlat(t *testing.T) {
	require.True(t, block.Equal([]int32{1, 2}, []int32{1, 2}))
	require.False(t, block.Equal([]int32{1, 2}, []int32{1, 3}))
	require.False(t, block.Equal([]int32{1}, []int32{1, 2}))
}
