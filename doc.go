// Package blockmat multiplies square integer matrices block by block, either
// sequentially or with one concurrent task per output block, and measures the
// difference.
//
// What is inside:
//
//	block/     — Block tiles, Split/Merge between flat matrices and block grids,
//	             block Multiply/Add
//	dispatch/  — bounded fan-out/fan-in of independent tasks, order-preserving
//	multiply/  — Sequential and Parallel block multiplication, Naive reference
//	generator/ — pluggable, seedable element sources for test matrices
//	bench/     — experiment runner, parameters/results CSV, YAML plans
//	cmd/       — blockbench CLI
//
// Quick ASCII example (n=5, block size 3):
//
//	┌───────┬────┐
//	│ 3×3   │3×2 │
//	├───────┼────┤
//	│ 2×3   │2×2 │
//	└───────┴────┘
//
// Edge tiles are smaller rectangles, never zero-padded squares.
//
//	go get github.com/katalvlaran/blockmat
package blockmat
